package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus describes subscription lifecycle.
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "Active"
	CustomerStatusPaused    CustomerStatus = "Paused"
	CustomerStatusCancelled CustomerStatus = "Cancelled"
)

// Customer describes a subscriber and their billing summary.
// Billing dates are stored as opaque text, the data layer owns their format.
type Customer struct {
	ID          int64
	Name        string
	Email       string
	Plan        string
	Status      CustomerStatus
	NextBilling string
	TotalSpent  decimal.Decimal
	JoinDate    string
	LastOrder   string
	CreatedAt   time.Time
}
