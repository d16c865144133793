package models

// InventoryRecord is one row of the remote stock sheet. The wire format uses
// the sheet's Portuguese column names; see the inventory package for decoding.
type InventoryRecord struct {
	Item        string `json:"Item"`
	Category    string `json:"Categoria"`
	Description string `json:"Descrição"`
	Quantity    int    `json:"Quantidade"`
	Unit        string `json:"Unidade"`
}
