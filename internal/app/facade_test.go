package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/session"
	testhelpers "github.com/curatebox/boxops/internal/test"
	"github.com/curatebox/boxops/internal/usecase"
)

type facadeFixture struct {
	facade    *DashboardFacade
	store     *session.Store
	customers *testhelpers.CustomerRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	boxes     *testhelpers.BoxRepositoryStub
}

func newFacadeFixture() *facadeFixture {
	customers := &testhelpers.CustomerRepositoryStub{Items: []model.Customer{
		{ID: 1, Name: "Sarah Johnson", Status: model.CustomerStatusActive},
		{ID: 2, Name: "Michael Chen", Status: model.CustomerStatusActive},
	}}
	products := &testhelpers.ProductRepositoryStub{Items: []model.Product{
		{ID: 1, Name: "Artisan Coffee Beans", Stock: 156, ReorderPoint: 50, MaxStock: 500,
			Cost: decimal.RequireFromString("12.50"), Retail: decimal.RequireFromString("18.99")},
		{ID: 2, Name: "Organic Dark Chocolate", Stock: 12, ReorderPoint: 30, MaxStock: 200,
			Cost: decimal.RequireFromString("8.25"), Retail: decimal.RequireFromString("14.99")},
	}}
	orders := &testhelpers.OrderRepositoryStub{Items: []model.Order{
		{ID: 1, OrderID: "BO-2024-001", Status: model.OrderStatusPending, Priority: model.PriorityHigh},
	}}
	boxes := &testhelpers.BoxRepositoryStub{}

	store := session.NewStore()
	facade := NewDashboardFacade(
		usecase.NewCustomerUseCase(customers),
		usecase.NewInventoryUseCase(products),
		usecase.NewFulfillmentUseCase(orders),
		usecase.NewBoxUseCase(boxes, products),
		store,
	)
	return &facadeFixture{facade: facade, store: store, customers: customers, products: products, orders: orders, boxes: boxes}
}

func TestFacadeCustomers(t *testing.T) {
	f := newFacadeFixture()

	customers, err := f.facade.Customers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if len(f.store.Customers()) != 2 {
		t.Fatal("expected session snapshot to be refreshed")
	}

	customers, err = f.facade.ToggleCustomerStatus(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers[0].Status != model.CustomerStatusPaused {
		t.Fatalf("expected paused, got %s", customers[0].Status)
	}
	if f.store.Customers()[0].Status != model.CustomerStatusPaused {
		t.Fatal("expected session snapshot to reflect the toggle")
	}

	if _, err := f.facade.ToggleCustomerStatus(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFacadeFailedWriteLeavesSessionUntouched(t *testing.T) {
	f := newFacadeFixture()
	if _, err := f.facade.Customers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := f.store.Customers()

	f.customers.UpdateFn = func(context.Context, int64, model.CustomerStatus) error {
		return errors.New("db down")
	}
	if _, err := f.facade.ToggleCustomerStatus(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
	after := f.store.Customers()
	if len(after) != len(before) || after[0].Status != before[0].Status {
		t.Fatal("expected session snapshot unchanged after failed write")
	}
}

func TestFacadeInventory(t *testing.T) {
	f := newFacadeFixture()

	products, err := f.facade.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	products, err = f.facade.UpdateProductStock(context.Background(), 2, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products[1].Stock != 80 {
		t.Fatalf("expected refreshed stock 80, got %d", products[1].Stock)
	}

	if _, err := f.facade.UpdateProductStock(context.Background(), 2, -1); !errors.Is(err, domainErrors.ErrNegativeStock) {
		t.Fatalf("expected negative stock error, got %v", err)
	}

	low, err := f.facade.LowStockProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 0 {
		t.Fatalf("expected no low stock after restock, got %v", low)
	}
}

func TestFacadeOrders(t *testing.T) {
	f := newFacadeFixture()

	orders, err := f.facade.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	orders, err = f.facade.AdvanceOrder(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders[0].Status != model.OrderStatusInProgress {
		t.Fatalf("expected in-progress, got %s", orders[0].Status)
	}
	if f.store.Orders()[0].Status != model.OrderStatusInProgress {
		t.Fatal("expected session snapshot to reflect the advance")
	}
}

func TestFacadeSelectionAndEconomics(t *testing.T) {
	f := newFacadeFixture()

	if _, err := f.facade.ToggleSelection(1); !errors.Is(err, domainErrors.ErrUnknownProduct) {
		t.Fatalf("expected unknown product before catalog load, got %v", err)
	}

	if _, err := f.facade.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selected, err := f.facade.ToggleSelection(1)
	if err != nil || !selected {
		t.Fatalf("expected selection, got %v %v", selected, err)
	}
	if _, err := f.facade.ToggleSelection(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.facade.Selection(); len(got) != 2 {
		t.Fatalf("expected 2 selected, got %v", got)
	}

	economics := f.facade.DraftEconomics()
	if economics.ItemCount != 2 {
		t.Fatalf("expected 2 items, got %d", economics.ItemCount)
	}
	if economics.TotalCost.String() != "20.75" {
		t.Fatalf("unexpected total cost: %s", economics.TotalCost)
	}

	f.facade.ClearSelection()
	if got := f.facade.Selection(); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestFacadeSubmitDraft(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if _, err := f.facade.Products(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.facade.ToggleSelection(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.facade.ToggleSelection(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.facade.SubmitDraft(ctx, model.Draft{})
	if !errors.Is(err, domainErrors.ErrMissingName) {
		t.Fatalf("expected missing name fault, got %v", err)
	}
	if got := f.facade.Selection(); len(got) != 2 {
		t.Fatal("expected selection kept after failed submit")
	}

	box, err := f.facade.SubmitDraft(ctx, model.Draft{Name: "Winter Box", Theme: "Cozy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if box.ID == "" {
		t.Fatal("expected box id to be minted")
	}
	if box.TotalRetail.String() != "33.98" {
		t.Fatalf("unexpected total retail: %s", box.TotalRetail)
	}
	if got := f.facade.Selection(); len(got) != 0 {
		t.Fatal("expected selection cleared after submit")
	}
	if f.store.Draft() != (model.Draft{}) {
		t.Fatal("expected draft reset after submit")
	}
	if len(f.store.Boxes()) != 1 {
		t.Fatal("expected box list refreshed in session")
	}
}

func TestFacadeBusyFlag(t *testing.T) {
	f := newFacadeFixture()

	var busyDuring bool
	f.customers.ListFn = func(context.Context) ([]model.Customer, error) {
		busyDuring = f.facade.Busy()
		return nil, nil
	}
	if _, err := f.facade.Customers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !busyDuring {
		t.Fatal("expected busy flag set during external call")
	}
	if f.facade.Busy() {
		t.Fatal("expected busy flag cleared afterwards")
	}
}
