package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
)

// CustomerResponse describes a subscriber entry.
type CustomerResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Plan        string          `json:"plan"`
	Status      string          `json:"status"`
	NextBilling string          `json:"nextBilling"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	JoinDate    string          `json:"joinDate"`
	LastOrder   string          `json:"lastOrder"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewCustomerResponse maps a domain customer to its wire form.
func NewCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Plan:        c.Plan,
		Status:      string(c.Status),
		NextBilling: c.NextBilling,
		TotalSpent:  c.TotalSpent,
		JoinDate:    c.JoinDate,
		LastOrder:   c.LastOrder,
		CreatedAt:   c.CreatedAt,
	}
}

// NewCustomerResponses maps a customer slice.
func NewCustomerResponses(customers []model.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}
