package models

import "time"

// Form-facing category labels. These are the values accepted on cart lines;
// the inventory sheet uses slightly different labels (see inventory package).
const (
	CategoryOfficeMaterials = "Materiais de Escritório"
	CategoryOfficeSupplies  = "Suprimentos de Escritório"
	CategoryPeripherals     = "Materiais de Periféricos"
	CategoryInspectionPlate = "Placa Vistoria"
	CategoryTonerExchange   = "Troca Tonner"
)

func Categories() []string {
	return []string{
		CategoryOfficeMaterials,
		CategoryOfficeSupplies,
		CategoryPeripherals,
		CategoryInspectionPlate,
		CategoryTonerExchange,
	}
}

func IsValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// RequisitionLine is a single requested item. Immutable once added to a cart.
type RequisitionLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// Requisition is what leaves the system: the cart snapshot plus the user
// who submitted it.
type Requisition struct {
	User      SessionUser       `json:"user"`
	Lines     []RequisitionLine `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
}
