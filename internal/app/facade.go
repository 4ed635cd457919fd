package app

import (
	"context"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/session"
	"github.com/curatebox/boxops/internal/usecase"
)

// DashboardFacade combines the use cases with the session store. Every
// successful write refreshes the affected collection so the session always
// mirrors storage; a failed write leaves it untouched.
type DashboardFacade struct {
	customers   *usecase.CustomerUseCase
	inventory   *usecase.InventoryUseCase
	fulfillment *usecase.FulfillmentUseCase
	boxes       *usecase.BoxUseCase
	session     *session.Store
}

// NewDashboardFacade constructs DashboardFacade.
func NewDashboardFacade(
	customers *usecase.CustomerUseCase,
	inventory *usecase.InventoryUseCase,
	fulfillment *usecase.FulfillmentUseCase,
	boxes *usecase.BoxUseCase,
	store *session.Store,
) *DashboardFacade {
	return &DashboardFacade{
		customers:   customers,
		inventory:   inventory,
		fulfillment: fulfillment,
		boxes:       boxes,
		session:     store,
	}
}

func (f *DashboardFacade) withBusy(fn func() error) error {
	f.session.SetBusy(true)
	defer f.session.SetBusy(false)
	return fn()
}

// Customers lists subscribers and refreshes the session snapshot.
func (f *DashboardFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := f.withBusy(func() error {
		var err error
		customers, err = f.customers.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetCustomers(customers)
	return customers, nil
}

// ToggleCustomerStatus flips one subscriber between active and paused, then
// returns the refreshed list.
func (f *DashboardFacade) ToggleCustomerStatus(ctx context.Context, id int64) ([]model.Customer, error) {
	var customers []model.Customer
	err := f.withBusy(func() error {
		if _, err := f.customers.ToggleStatus(ctx, id); err != nil {
			return err
		}
		var err error
		customers, err = f.customers.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetCustomers(customers)
	return customers, nil
}

// Products lists the catalog and refreshes the session snapshot.
func (f *DashboardFacade) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := f.withBusy(func() error {
		var err error
		products, err = f.inventory.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetProducts(products)
	return products, nil
}

// UpdateProductStock sets a new stock level and returns the refreshed catalog.
func (f *DashboardFacade) UpdateProductStock(ctx context.Context, id int64, stock int) ([]model.Product, error) {
	var products []model.Product
	err := f.withBusy(func() error {
		if err := f.inventory.UpdateStock(ctx, id, stock); err != nil {
			return err
		}
		var err error
		products, err = f.inventory.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetProducts(products)
	return products, nil
}

// LowStockProducts returns the products at or below their reorder point.
func (f *DashboardFacade) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	return f.inventory.LowStock(ctx)
}

// Orders lists the fulfillment queue and refreshes the session snapshot.
func (f *DashboardFacade) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := f.withBusy(func() error {
		var err error
		orders, err = f.fulfillment.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetOrders(orders)
	return orders, nil
}

// AdvanceOrder moves one order a single step forward and returns the
// refreshed queue.
func (f *DashboardFacade) AdvanceOrder(ctx context.Context, id int64) ([]model.Order, error) {
	var orders []model.Order
	err := f.withBusy(func() error {
		if _, err := f.fulfillment.Advance(ctx, id); err != nil {
			return err
		}
		var err error
		orders, err = f.fulfillment.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetOrders(orders)
	return orders, nil
}

// Boxes lists assembled boxes and refreshes the session snapshot.
func (f *DashboardFacade) Boxes(ctx context.Context) ([]model.Box, error) {
	var boxes []model.Box
	err := f.withBusy(func() error {
		var err error
		boxes, err = f.boxes.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	f.session.SetBoxes(boxes)
	return boxes, nil
}

// SubmitDraft assembles a box from the draft and the current selection.
// On success the draft and selection are cleared and the box list refreshed.
func (f *DashboardFacade) SubmitDraft(ctx context.Context, draft model.Draft) (*model.Box, error) {
	f.session.SetDraft(draft)

	var box *model.Box
	var boxes []model.Box
	err := f.withBusy(func() error {
		var err error
		box, err = f.boxes.Submit(ctx, draft, f.session.Selection())
		if err != nil {
			return err
		}
		boxes, err = f.boxes.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	f.session.ResetDraft()
	f.session.SetBoxes(boxes)
	return box, nil
}

// ToggleSelection adds or removes a catalog product from the selection.
func (f *DashboardFacade) ToggleSelection(productID int64) (bool, error) {
	if !f.session.HasProduct(productID) {
		return false, domainErrors.ErrUnknownProduct
	}
	return f.session.ToggleSelection(productID), nil
}

// ClearSelection empties the selection set.
func (f *DashboardFacade) ClearSelection() {
	f.session.ClearSelection()
}

// Selection returns the selected product ids in ascending order.
func (f *DashboardFacade) Selection() []int64 {
	return f.session.Selection()
}

// DraftEconomics derives cost, retail, and margin for the current selection.
func (f *DashboardFacade) DraftEconomics() model.BoxEconomics {
	return usecase.ComputeBoxEconomics(f.session.SelectedProducts())
}

// Busy reports whether an external operation is in flight.
func (f *DashboardFacade) Busy() bool {
	return f.session.Busy()
}
