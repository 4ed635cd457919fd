package repository

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
)

// CustomerRepository describes persistence operations with customers.
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	UpdateStatus(ctx context.Context, id int64, status model.CustomerStatus) error
}
