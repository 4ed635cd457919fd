package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/usecase"
)

// ProductResponse describes an inventory item together with its derived
// stock metrics.
type ProductResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Cost            decimal.Decimal `json:"cost"`
	Retail          decimal.Decimal `json:"retail"`
	Stock           int             `json:"stock"`
	Supplier        string          `json:"supplier"`
	SKU             string          `json:"sku"`
	ReorderPoint    int             `json:"reorderPoint"`
	MaxStock        int             `json:"maxStock"`
	StockStatus     string          `json:"stockStatus"`
	StockPercentage float64         `json:"stockPercentage"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// UpdateStockRequest describes a stock adjustment payload.
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// NewProductResponse maps a domain product to its wire form.
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		Cost:            p.Cost,
		Retail:          p.Retail,
		Stock:           p.Stock,
		Supplier:        p.Supplier,
		SKU:             p.SKU,
		ReorderPoint:    p.ReorderPoint,
		MaxStock:        p.MaxStock,
		StockStatus:     string(usecase.StockStatusOf(p)),
		StockPercentage: usecase.StockPercentage(p.Stock, p.MaxStock),
		CreatedAt:       p.CreatedAt,
	}
}

// NewProductResponses maps a product slice.
func NewProductResponses(products []model.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, NewProductResponse(p))
	}
	return resp
}
