package dto

import (
	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/usecase"
)

// LowStockAlert pairs a product with its suggested reorder quantity.
type LowStockAlert struct {
	Product         ProductResponse `json:"product"`
	ReorderQuantity int             `json:"reorderQuantity"`
}

// InventoryMetricsResponse summarizes stock health across the catalog.
type InventoryMetricsResponse struct {
	Items    []ProductResponse `json:"items"`
	LowStock []LowStockAlert   `json:"lowStock"`
}

// FulfillmentBucketsResponse breaks the queue down by status.
type FulfillmentBucketsResponse struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Packed     int `json:"packed"`
	Shipped    int `json:"shipped"`
	Total      int `json:"total"`
}

// FulfillmentMetricsResponse summarizes the fulfillment queue.
type FulfillmentMetricsResponse struct {
	Buckets FulfillmentBucketsResponse `json:"buckets"`
	Urgent  []OrderResponse            `json:"urgent"`
}

// EconomicsResponse describes draft box economics.
type EconomicsResponse struct {
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalRetail  decimal.Decimal `json:"totalRetail"`
	Margin       float64         `json:"margin"`
	MarginHealth string          `json:"marginHealth"`
	ItemCount    int             `json:"itemCount"`
}

// NewInventoryMetricsResponse derives stock metrics for the catalog.
func NewInventoryMetricsResponse(products, lowStock []model.Product) InventoryMetricsResponse {
	alerts := make([]LowStockAlert, 0, len(lowStock))
	for _, p := range lowStock {
		alerts = append(alerts, LowStockAlert{
			Product:         NewProductResponse(p),
			ReorderQuantity: usecase.ReorderQuantity(p),
		})
	}
	return InventoryMetricsResponse{
		Items:    NewProductResponses(products),
		LowStock: alerts,
	}
}

// NewFulfillmentMetricsResponse derives queue metrics.
func NewFulfillmentMetricsResponse(buckets model.FulfillmentBuckets, urgent []model.Order) FulfillmentMetricsResponse {
	return FulfillmentMetricsResponse{
		Buckets: FulfillmentBucketsResponse{
			Pending:    buckets.Pending,
			InProgress: buckets.InProgress,
			Packed:     buckets.Packed,
			Shipped:    buckets.Shipped,
			Total:      buckets.Total(),
		},
		Urgent: NewOrderResponses(urgent),
	}
}

// NewEconomicsResponse maps draft economics to wire form.
func NewEconomicsResponse(e model.BoxEconomics) EconomicsResponse {
	return EconomicsResponse{
		TotalCost:    e.TotalCost,
		TotalRetail:  e.TotalRetail,
		Margin:       e.Margin,
		MarginHealth: string(usecase.ClassifyMargin(e.Margin)),
		ItemCount:    e.ItemCount,
	}
}
