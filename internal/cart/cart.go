package cart

import (
	"errors"
	"strings"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

var (
	ErrEmptyItemName   = errors.New("item sem nome")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrInvalidCategory = errors.New("categoria inválida")
)

// Line is a requisition line plus the identity of its rendered row. Two
// identical lines are distinct entries; removal goes by ID, never by value.
type Line struct {
	ID int `json:"id"`
	models.RequisitionLine
}

// Cart is the ordered sequence of lines for one page session. It carries no
// synchronization and no rendering concerns; Store wraps it for concurrent
// handler access.
type Cart struct {
	nextID int
	lines  []Line
}

func New() *Cart {
	return &Cart{nextID: 1}
}

// AddLine appends a validated line. On a validation failure the sequence is
// left untouched and the error describes which rule was violated.
func (c *Cart) AddLine(line models.RequisitionLine) (*Line, error) {
	line.Name = strings.TrimSpace(line.Name)

	if line.Name == "" {
		return nil, ErrEmptyItemName
	}
	if line.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !models.IsValidCategory(line.Category) {
		return nil, ErrInvalidCategory
	}

	entry := Line{ID: c.nextID, RequisitionLine: line}
	c.nextID++
	c.lines = append(c.lines, entry)

	return &entry, nil
}

// RemoveLine removes by row identity. Reports whether anything was removed.
func (c *Cart) RemoveLine(id int) bool {
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns a copy of the displayed rows, insertion order preserved.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Snapshot is the read-only copy handed to submission; it reflects exactly
// what is currently displayed.
func (c *Cart) Snapshot() []models.RequisitionLine {
	out := make([]models.RequisitionLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, line.RequisitionLine)
	}
	return out
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Empty is the distinct "no items added" display state.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
