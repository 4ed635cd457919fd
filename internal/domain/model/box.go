package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarginHealth is a presentation classification of box margin.
type MarginHealth string

const (
	MarginHealthy MarginHealth = "healthy"
	MarginThin    MarginHealth = "thin"
)

// Box is an immutable curated box produced from a submitted draft.
type Box struct {
	ID          string
	Name        string
	Theme       string
	ShipDate    string
	Description string
	ProductIDs  []int64
	TotalCost   decimal.Decimal
	TotalRetail decimal.Decimal
	CreatedAt   time.Time
}

// Draft is an in-progress, unsaved box configuration. The selected product
// set lives in the session store, not here.
type Draft struct {
	Name        string
	Theme       string
	ShipDate    string
	Description string
}

// BoxEconomics aggregates cost, retail and margin for a product selection.
// Totals are exact decimals; margin is a display percentage.
type BoxEconomics struct {
	TotalCost   decimal.Decimal
	TotalRetail decimal.Decimal
	Margin      float64
	ItemCount   int
}
