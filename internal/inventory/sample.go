package inventory

import "github.com/P3RALT/SysEstoque/pkg/models"

// SampleRecords is the built-in dataset installed when no remote source
// answers, so the catalog page never comes up empty.
func SampleRecords() []models.InventoryRecord {
	return []models.InventoryRecord{
		{Item: "Papel A4", Category: "Materiais de Escritório", Description: "Resma 500 folhas", Quantity: 25, Unit: "resma"},
		{Item: "Grampeador", Category: "Materiais de Escritório", Description: "Grampeador de mesa 26/6", Quantity: 8, Unit: "un"},
		{Item: "Pasta Suspensa", Category: "Materiais de Escritório", Description: "Pasta suspensa kraft", Quantity: 40, Unit: "un"},
		{Item: "Caneta", Category: "Suprimentos de Escritório", Description: "Caneta esferográfica azul", Quantity: 120, Unit: "un"},
		{Item: "Lápis", Category: "Suprimentos de Escritório", Description: "Lápis preto nº 2", Quantity: 80, Unit: "un"},
		{Item: "Post-it", Category: "Suprimentos de Escritório", Description: "Bloco adesivo 76x76mm", Quantity: 30, Unit: "bloco"},
		{Item: "Mouse", Category: "Materiais Periféricos", Description: "Mouse óptico USB", Quantity: 3, Unit: "un"},
		{Item: "Teclado", Category: "Materiais Periféricos", Description: "Teclado ABNT2 USB", Quantity: 5, Unit: "un"},
		{Item: "Cabo HDMI", Category: "Materiais Periféricos", Description: "Cabo HDMI 1,5m", Quantity: 10, Unit: "un"},
		{Item: "Placa Vistoria", Category: "Placa Vistoria", Description: "Placa de vistoria padrão", Quantity: 15, Unit: "un"},
		{Item: "Toner HP 85A", Category: "Toners de Impressora", Description: "Cartucho de toner preto", Quantity: 6, Unit: "un"},
		{Item: "Toner Brother TN-1060", Category: "Toners de Impressora", Description: "Cartucho de toner preto", Quantity: 4, Unit: "un"},
	}
}
