package inventory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

var (
	// ErrBadShape marks a fetch response that is not the expected JSON array.
	ErrBadShape = errors.New("resposta inválida do servidor")

	ErrUnknownCategory = errors.New("categoria sem mapeamento para a planilha")
)

// The form labels differ textually from the sheet's category column. This
// table is total over the form categories; an entry missing here would make
// lookups fail silently, so keep it in sync with pkg/models.
var sheetCategories = map[string]string{
	models.CategoryOfficeMaterials: "Materiais de Escritório",
	models.CategoryOfficeSupplies:  "Suprimentos de Escritório",
	models.CategoryPeripherals:     "Materiais Periféricos",
	models.CategoryInspectionPlate: "Placa Vistoria",
	models.CategoryTonerExchange:   "Toners de Impressora",
}

// SheetCategory maps a form-facing category label to the sheet's label.
func SheetCategory(formCategory string) (string, error) {
	sheet, ok := sheetCategories[formCategory]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, formCategory)
	}
	return sheet, nil
}

// Source fetches the full denormalized stock list from a remote origin.
type Source interface {
	Fetch(ctx context.Context) ([]models.InventoryRecord, error)
	Name() string
}

// Mirror holds the local snapshot of the remote stock sheet. The snapshot
// is replaced wholesale on each refresh; there is no incremental merge and
// no invalidation besides calling Refresh again.
type Mirror struct {
	mu         sync.RWMutex
	records    []models.InventoryRecord
	byCategory map[string][]models.InventoryRecord

	sources []Source
}

func NewMirror(sources ...Source) *Mirror {
	m := &Mirror{sources: sources}
	m.install(nil)
	return m
}

// Refresh replaces the snapshot from the first source that answers. When
// every source fails the built-in sample dataset is installed instead, so
// the catalog never renders empty, and the fetch error is still returned
// for the caller to surface.
func (m *Mirror) Refresh(ctx context.Context) error {
	var lastErr error

	for _, source := range m.sources {
		records, err := source.Fetch(ctx)
		if err != nil {
			log.Printf("Erro ao carregar inventário via %s: %v", source.Name(), err)
			lastErr = err
			continue
		}

		m.install(records)
		log.Printf("Inventário carregado via %s: %d itens", source.Name(), len(records))
		return nil
	}

	m.install(SampleRecords())
	log.Println("Usando dados de exemplo do inventário")

	if lastErr == nil {
		lastErr = errors.New("nenhuma fonte de inventário configurada")
	}
	return fmt.Errorf("falha ao atualizar inventário: %w", lastErr)
}

func (m *Mirror) install(records []models.InventoryRecord) {
	byCategory := make(map[string][]models.InventoryRecord)
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	m.mu.Lock()
	m.records = records
	m.byCategory = byCategory
	m.mu.Unlock()
}

// Records returns a copy of the current snapshot.
func (m *Mirror) Records() []models.InventoryRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.InventoryRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Lookup finds a record by form category and exact item name. The item
// match is case-sensitive, mirroring the sheet.
func (m *Mirror) Lookup(formCategory string, itemName string) (*models.InventoryRecord, bool) {
	sheet, err := SheetCategory(formCategory)
	if err != nil {
		log.Printf("Lookup com categoria desconhecida: %v", err)
		return nil, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.byCategory[sheet] {
		if r.Item == itemName {
			record := r
			return &record, true
		}
	}
	return nil, false
}

// ItemsByCategory returns the snapshot slice for one form category.
func (m *Mirror) ItemsByCategory(formCategory string) ([]models.InventoryRecord, error) {
	sheet, err := SheetCategory(formCategory)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.byCategory[sheet]
	out := make([]models.InventoryRecord, len(items))
	copy(out, items)
	return out, nil
}

// ValidateQuantity reports whether a matching record exists with at least
// the requested quantity in stock.
func (m *Mirror) ValidateQuantity(formCategory string, itemName string, requested int) bool {
	record, ok := m.Lookup(formCategory, itemName)
	if !ok {
		return false
	}
	return requested <= record.Quantity
}

// AvailableQuantity returns the stock on hand, zero when the item is absent.
func (m *Mirror) AvailableQuantity(formCategory string, itemName string) int {
	record, ok := m.Lookup(formCategory, itemName)
	if !ok {
		return 0
	}
	return record.Quantity
}
