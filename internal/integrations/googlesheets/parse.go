package googlesheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// MapHeaders resolves the sheet's column headers to record fields, so the
// parse survives column reordering.
func MapHeaders(headers []interface{}) map[int]string {
	headerMap := make(map[int]string)

	for i, header := range headers {
		headerStr, ok := header.(string)
		if !ok {
			continue
		}

		switch strings.TrimSpace(headerStr) {
		case "Item":
			headerMap[i] = "item"
		case "Categoria":
			headerMap[i] = "category"
		case "Descrição":
			headerMap[i] = "description"
		case "Quantidade":
			headerMap[i] = "quantity"
		case "Unidade":
			headerMap[i] = "unit"
		}
	}

	return headerMap
}

// ParseInventory turns the raw sheet rows into inventory records. The first
// row must be the header row; rows without an item name are skipped.
func ParseInventory(values [][]interface{}) []models.InventoryRecord {
	if len(values) < 2 {
		return []models.InventoryRecord{}
	}

	headerMap := MapHeaders(values[0])

	records := make([]models.InventoryRecord, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := values[i]

		var record models.InventoryRecord
		for j, cell := range row {
			fieldName, exists := headerMap[j]
			if !exists {
				continue
			}

			cellStr := toString(cell)

			switch fieldName {
			case "item":
				record.Item = cellStr
			case "category":
				record.Category = cellStr
			case "description":
				record.Description = cellStr
			case "quantity":
				if q, err := strconv.Atoi(cellStr); err == nil {
					record.Quantity = q
				}
			case "unit":
				record.Unit = cellStr
			}
		}

		if record.Item == "" {
			continue
		}
		records = append(records, record)
	}

	return records
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
