package session

import (
	"slices"
	"sync"

	"github.com/curatebox/boxops/internal/domain/model"
)

// Store holds one dashboard session's view of the backend collections, the
// current box-draft product selection, and an advisory busy flag. Each set
// operation replaces the whole collection; the last replace wins and no
// reconciliation with concurrent sessions is attempted. The store performs
// no validation, it is a plain data container.
//
// The mutex only guards memory safety under concurrent handlers. It is not
// a coordination mechanism and the busy flag is not a lock: the flag exists
// so a UI can disable controls while an external call is in flight.
type Store struct {
	mu        sync.RWMutex
	customers []model.Customer
	products  []model.Product
	orders    []model.Order
	boxes     []model.Box
	selected  map[int64]struct{}
	draft     model.Draft
	busy      bool
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{selected: make(map[int64]struct{})}
}

// Customers returns the current customer snapshot.
func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.customers)
}

// SetCustomers replaces the customer collection.
func (s *Store) SetCustomers(customers []model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = slices.Clone(customers)
}

// Products returns the current product snapshot.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// SetProducts replaces the product collection.
func (s *Store) SetProducts(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.Clone(products)
}

// Orders returns the current order snapshot.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

// SetOrders replaces the order collection.
func (s *Store) SetOrders(orders []model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = slices.Clone(orders)
}

// Boxes returns the current box snapshot.
func (s *Store) Boxes() []model.Box {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.boxes)
}

// SetBoxes replaces the box collection.
func (s *Store) SetBoxes(boxes []model.Box) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes = slices.Clone(boxes)
}

// ToggleSelection adds the product id when absent and removes it when
// present. Reports whether the id is selected after the toggle.
func (s *Store) ToggleSelection(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[productID]; ok {
		delete(s.selected, productID)
		return false
	}
	s.selected[productID] = struct{}{}
	return true
}

// ClearSelection drops all selected product ids.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int64]struct{})
}

// Selection returns the selected product ids in ascending order. Selection
// order is irrelevant, sorting just keeps the output deterministic.
func (s *Store) Selection() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsSelected reports whether the product id is part of the selection.
func (s *Store) IsSelected(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[productID]
	return ok
}

// SelectedProducts filters the product snapshot down to the selected ids,
// preserving catalog order.
func (s *Store) SelectedProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Product
	for _, p := range s.products {
		if _, ok := s.selected[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// HasProduct reports whether the product id exists in the current snapshot.
func (s *Store) HasProduct(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Draft returns the current box draft fields.
func (s *Store) Draft() model.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// SetDraft replaces the box draft fields.
func (s *Store) SetDraft(draft model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = draft
}

// ResetDraft clears the draft fields and the selection unconditionally.
// Used after a successful submission and for explicit "new box" actions.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = model.Draft{}
	s.selected = make(map[int64]struct{})
}

// SetBusy flips the advisory in-flight flag.
func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

// Busy reports whether an external call is in flight.
func (s *Store) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}
