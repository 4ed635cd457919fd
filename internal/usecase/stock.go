package usecase

import "github.com/curatebox/boxops/internal/domain/model"

// Stock below this count is critical regardless of the reorder point.
const criticalStockLevel = 10

// StockStatusOf classifies a product's stock level. Depletion and the
// critical floor take precedence over the reorder-point test.
func StockStatusOf(p model.Product) model.StockStatus {
	switch {
	case p.Stock == 0:
		return model.StockStatusOut
	case p.Stock <= criticalStockLevel:
		return model.StockStatusCritical
	case p.Stock <= p.ReorderPoint:
		return model.StockStatusLow
	default:
		return model.StockStatusIn
	}
}

// StockPercentage returns how full the stock is relative to max, clamped
// to [0, 100]. A non-positive max is a configuration error and yields 0
// rather than a division failure, this is a display value only.
func StockPercentage(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	pct := float64(current) / float64(max) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// LowStockItems returns the products at or below their reorder point,
// preserving the input order.
func LowStockItems(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.Stock <= p.ReorderPoint {
			out = append(out, p)
		}
	}
	return out
}

// ReorderQuantity suggests how many units restore a product to max stock.
func ReorderQuantity(p model.Product) int {
	if p.MaxStock <= p.Stock {
		return 0
	}
	return p.MaxStock - p.Stock
}
