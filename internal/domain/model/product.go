package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifies how far a product's stock level is from depletion.
type StockStatus string

const (
	StockStatusOut      StockStatus = "Out of Stock"
	StockStatusCritical StockStatus = "Critical"
	StockStatusLow      StockStatus = "Low Stock"
	StockStatusIn       StockStatus = "In Stock"
)

// Stock defaults applied when ingestion doesn't specify thresholds.
const (
	DefaultReorderPoint = 30
	DefaultMaxStock     = 500
)

// Product describes a single catalog item available for box curation.
type Product struct {
	ID           int64
	Name         string
	Category     string
	Cost         decimal.Decimal
	Retail       decimal.Decimal
	Stock        int
	Supplier     string
	SKU          string
	ReorderPoint int
	MaxStock     int
	CreatedAt    time.Time
}
