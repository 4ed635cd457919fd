package repository

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
)

// OrderRepository describes persistence operations with fulfillment orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}
