package handlers

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
)

// CustomerFacade describes subscriber operations required by handlers.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	ToggleCustomerStatus(ctx context.Context, id int64) ([]model.Customer, error)
}

// InventoryFacade encapsulates inventory operations exposed via HTTP.
type InventoryFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	UpdateProductStock(ctx context.Context, id int64, stock int) ([]model.Product, error)
}

// FulfillmentFacade provides fulfillment queue operations.
type FulfillmentFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	AdvanceOrder(ctx context.Context, id int64) ([]model.Order, error)
}

// BoxFacade covers box assembly and the product selection session.
type BoxFacade interface {
	Boxes(ctx context.Context) ([]model.Box, error)
	SubmitDraft(ctx context.Context, draft model.Draft) (*model.Box, error)
	ToggleSelection(productID int64) (bool, error)
	ClearSelection()
	Selection() []int64
	DraftEconomics() model.BoxEconomics
	Busy() bool
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	CustomerFacade
	InventoryFacade
	FulfillmentFacade
	BoxFacade
}

// HealthChecker reports backing storage health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
