package usecase

import (
	"context"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/domain/repository"
)

// InventoryUseCase encapsulates stock management logic.
type InventoryUseCase struct {
	products repository.ProductRepository
}

// NewInventoryUseCase constructs InventoryUseCase.
func NewInventoryUseCase(products repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{products: products}
}

// List returns the full catalog.
func (u *InventoryUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// UpdateStock persists a new stock count for a product.
func (u *InventoryUseCase) UpdateStock(ctx context.Context, id int64, stock int) error {
	if stock < 0 {
		return domainErrors.ErrNegativeStock
	}
	return u.products.UpdateStock(ctx, id, stock)
}

// LowStock returns catalog products at or below their reorder point.
func (u *InventoryUseCase) LowStock(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return LowStockItems(products), nil
}
