package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/curatebox/boxops/internal/domain/model"
)

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	CustomersFn func(context.Context) ([]model.Customer, error)
	ToggleFn    func(context.Context, int64) ([]model.Customer, error)
}

// Customers returns configured customers or a default row.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: 1, Name: "Sarah Johnson", Status: model.CustomerStatusActive}}, nil
}

// ToggleCustomerStatus delegates to the configured function or flips the default row.
func (s CustomerFacadeStub) ToggleCustomerStatus(ctx context.Context, id int64) ([]model.Customer, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, id)
	}
	return []model.Customer{{ID: id, Name: "Sarah Johnson", Status: model.CustomerStatusPaused}}, nil
}

// InventoryFacadeStub provides controllable behaviour for inventory endpoints.
type InventoryFacadeStub struct {
	ProductsFn    func(context.Context) ([]model.Product, error)
	UpdateStockFn func(context.Context, int64, int) ([]model.Product, error)
}

// Products returns configured products or a default catalog.
func (s InventoryFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Artisan Coffee Beans", Stock: 156, ReorderPoint: 50, MaxStock: 500}}, nil
}

// UpdateProductStock delegates or returns the default catalog with the new stock.
func (s InventoryFacadeStub) UpdateProductStock(ctx context.Context, id int64, stock int) ([]model.Product, error) {
	if s.UpdateStockFn != nil {
		return s.UpdateStockFn(ctx, id, stock)
	}
	return []model.Product{{ID: id, Name: "Artisan Coffee Beans", Stock: stock, ReorderPoint: 50, MaxStock: 500}}, nil
}

// FulfillmentFacadeStub provides controllable behaviour for order endpoints.
type FulfillmentFacadeStub struct {
	OrdersFn  func(context.Context) ([]model.Order, error)
	AdvanceFn func(context.Context, int64) ([]model.Order, error)
}

// Orders returns configured orders or a default queue.
func (s FulfillmentFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, OrderID: "BO-2024-001", Status: model.OrderStatusPending, Priority: model.PriorityHigh}}, nil
}

// AdvanceOrder delegates or advances the default order.
func (s FulfillmentFacadeStub) AdvanceOrder(ctx context.Context, id int64) ([]model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, id)
	}
	return []model.Order{{ID: id, OrderID: "BO-2024-001", Status: model.OrderStatusInProgress}}, nil
}

// BoxFacadeStub provides controllable behaviour for box and selection endpoints.
type BoxFacadeStub struct {
	BoxesFn      func(context.Context) ([]model.Box, error)
	SubmitFn     func(context.Context, model.Draft) (*model.Box, error)
	ToggleSelFn  func(int64) (bool, error)
	SelectionFn  func() []int64
	EconomicsFn  func() model.BoxEconomics
	BusyFn       func() bool
	ClearedCount int32
}

// Boxes returns configured boxes or an empty list.
func (s *BoxFacadeStub) Boxes(ctx context.Context) ([]model.Box, error) {
	if s.BoxesFn != nil {
		return s.BoxesFn(ctx)
	}
	return nil, nil
}

// SubmitDraft delegates or returns a minimal box.
func (s *BoxFacadeStub) SubmitDraft(ctx context.Context, draft model.Draft) (*model.Box, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, draft)
	}
	return &model.Box{ID: "box-1", Name: draft.Name, CreatedAt: time.Unix(0, 0)}, nil
}

// ToggleSelection delegates or reports the id as newly selected.
func (s *BoxFacadeStub) ToggleSelection(productID int64) (bool, error) {
	if s.ToggleSelFn != nil {
		return s.ToggleSelFn(productID)
	}
	return true, nil
}

// ClearSelection counts invocations.
func (s *BoxFacadeStub) ClearSelection() {
	atomic.AddInt32(&s.ClearedCount, 1)
}

// Selection returns the configured selection.
func (s *BoxFacadeStub) Selection() []int64 {
	if s.SelectionFn != nil {
		return s.SelectionFn()
	}
	return nil
}

// DraftEconomics returns the configured economics.
func (s *BoxFacadeStub) DraftEconomics() model.BoxEconomics {
	if s.EconomicsFn != nil {
		return s.EconomicsFn()
	}
	return model.BoxEconomics{}
}

// Busy reports the configured busy state.
func (s *BoxFacadeStub) Busy() bool {
	if s.BusyFn != nil {
		return s.BusyFn()
	}
	return false
}

// DashboardFacadeStub aggregates every facade stub for router tests.
type DashboardFacadeStub struct {
	CustomerFacadeStub
	InventoryFacadeStub
	FulfillmentFacadeStub
	*BoxFacadeStub
}

// MonitorFacadeStub mimics worker interactions with the dashboard facade.
type MonitorFacadeStub struct {
	Batches     [][]model.Product
	LowStockFn  func(context.Context) ([]model.Product, error)
	mu          sync.Mutex
	listedCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *MonitorFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *MonitorFacadeStub) Unlock() { s.mu.Unlock() }

// Calls reports how many polls happened.
func (s *MonitorFacadeStub) Calls() int32 {
	return atomic.LoadInt32(&s.listedCount)
}

// LowStockProducts returns batches from the configured queue.
func (s *MonitorFacadeStub) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx)
	}
	call := atomic.AddInt32(&s.listedCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
