package test

import (
	"context"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
)

// CustomerStatusUpdate records one UpdateStatus invocation.
type CustomerStatusUpdate struct {
	ID     int64
	Status model.CustomerStatus
}

// CustomerRepositoryStub keeps customers in-memory for tests.
type CustomerRepositoryStub struct {
	Items    []model.Customer
	ListFn   func(context.Context) ([]model.Customer, error)
	GetFn    func(context.Context, int64) (*model.Customer, error)
	UpdateFn func(context.Context, int64, model.CustomerStatus) error
	Updates  []CustomerStatusUpdate
	Err      error
}

// List returns stored customers unless overridden.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GetByID fetches a stored customer or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			c := s.Items[i]
			return &c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records the call and mutates the stored customer.
func (s *CustomerRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.CustomerStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Updates = append(s.Updates, CustomerStatusUpdate{ID: id, Status: status})
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// StockUpdate records one UpdateStock invocation.
type StockUpdate struct {
	ID    int64
	Stock int
}

// ProductRepositoryStub keeps catalog products in-memory for tests.
type ProductRepositoryStub struct {
	Items        []model.Product
	ListFn       func(context.Context) ([]model.Product, error)
	GetByIDsFn   func(context.Context, []int64) ([]model.Product, error)
	UpdateFn     func(context.Context, int64, int) error
	StockUpdates []StockUpdate
	Err          error
}

// List returns stored products unless overridden.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GetByIDs filters stored products by id, preserving catalog order.
func (s *ProductRepositoryStub) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.GetByIDsFn != nil {
		return s.GetByIDsFn(ctx, ids)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []model.Product
	for _, p := range s.Items {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateStock records the call and mutates the stored product.
func (s *ProductRepositoryStub) UpdateStock(ctx context.Context, id int64, stock int) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, stock)
	}
	if s.Err != nil {
		return s.Err
	}
	s.StockUpdates = append(s.StockUpdates, StockUpdate{ID: id, Stock: stock})
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Stock = stock
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderStatusUpdate records one UpdateStatus invocation.
type OrderStatusUpdate struct {
	ID     int64
	Status model.OrderStatus
}

// OrderRepositoryStub keeps fulfillment orders in-memory for tests.
type OrderRepositoryStub struct {
	Items    []model.Order
	ListFn   func(context.Context) ([]model.Order, error)
	GetFn    func(context.Context, int64) (*model.Order, error)
	UpdateFn func(context.Context, int64, model.OrderStatus) error
	Updates  []OrderStatusUpdate
	Err      error
}

// List returns stored orders unless overridden.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GetByID fetches a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			o := s.Items[i]
			return &o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records the call and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Updates = append(s.Updates, OrderStatusUpdate{ID: id, Status: status})
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// BoxRepositoryStub keeps curated boxes in-memory for tests.
type BoxRepositoryStub struct {
	Items    []model.Box
	ListFn   func(context.Context) ([]model.Box, error)
	CreateFn func(context.Context, model.Box) (*model.Box, error)
	Err      error
}

// List returns stored boxes unless overridden.
func (s *BoxRepositoryStub) List(ctx context.Context) ([]model.Box, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// Create appends the box and returns it.
func (s *BoxRepositoryStub) Create(ctx context.Context, box model.Box) (*model.Box, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, box)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Items = append(s.Items, box)
	return &box, nil
}
