package repository

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) error
}
