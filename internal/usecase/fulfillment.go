package usecase

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/domain/repository"
)

// FulfillmentUseCase encapsulates order lifecycle logic.
type FulfillmentUseCase struct {
	orders repository.OrderRepository
}

// NewFulfillmentUseCase constructs FulfillmentUseCase.
func NewFulfillmentUseCase(orders repository.OrderRepository) *FulfillmentUseCase {
	return &FulfillmentUseCase{orders: orders}
}

// List returns all orders in the fulfillment queue.
func (u *FulfillmentUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Advance moves an order one step forward in the lifecycle and persists
// the result. Advancing a shipped order is a no-op.
func (u *FulfillmentUseCase) Advance(ctx context.Context, id int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := NextOrderStatus(order.Status)
	if err != nil {
		return nil, err
	}
	if next == order.Status {
		return order, nil
	}

	if err := u.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}
