package usecase

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/domain/repository"
)

// CustomerUseCase encapsulates subscription lifecycle logic.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List returns all customers.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// ToggleStatus flips a customer between Active and Paused and persists the
// result. Cancelled customers are left untouched.
func (u *CustomerUseCase) ToggleStatus(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := ToggleCustomerStatus(customer.Status)
	if err != nil {
		return nil, err
	}
	if next == customer.Status {
		return customer, nil
	}

	if err := u.customers.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	customer.Status = next
	return customer, nil
}
