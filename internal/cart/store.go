package cart

import (
	"strings"
	"sync"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// Store keeps one cart per logged-in user, keyed by lowercased e-mail.
// Carts live in memory only: a requisition that was never sent does not
// survive a server restart, same as the page it replaces.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) cart(email string) *Cart {
	key := strings.ToLower(email)
	c, ok := s.carts[key]
	if !ok {
		c = New()
		s.carts[key] = c
	}
	return c
}

func (s *Store) AddLine(email string, line models.RequisitionLine) (*Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(email).AddLine(line)
}

func (s *Store) RemoveLine(email string, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(email).RemoveLine(id)
}

func (s *Store) Lines(email string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(email).Lines()
}

func (s *Store) Snapshot(email string) []models.RequisitionLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(email).Snapshot()
}

func (s *Store) Clear(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(email).Clear()
}

func (s *Store) Empty(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(email).Empty()
}
