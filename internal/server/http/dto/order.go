package dto

import (
	"time"

	"github.com/curatebox/boxops/internal/domain/model"
)

// OrderResponse describes a fulfillment queue entry.
type OrderResponse struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"orderId"`
	Customer  string    `json:"customer"`
	DueDate   string    `json:"dueDate"`
	Items     int       `json:"items"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewOrderResponse maps a domain order to its wire form.
func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		OrderID:   o.OrderID,
		Customer:  o.Customer,
		DueDate:   o.DueDate,
		Items:     o.Items,
		Status:    string(o.Status),
		Priority:  string(o.Priority),
		CreatedAt: o.CreatedAt,
	}
}

// NewOrderResponses maps an order slice.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, NewOrderResponse(o))
	}
	return resp
}
