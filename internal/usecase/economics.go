package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
)

// Margin above this percentage counts as healthy for presentation.
const healthyMarginPercent = 50

// ComputeBoxEconomics sums cost and retail over the selected products and
// derives the gross margin percentage. Totals stay exact decimals, margin
// is a display value. An empty selection yields all zeroes.
func ComputeBoxEconomics(selected []model.Product) model.BoxEconomics {
	totalCost := decimal.Zero
	totalRetail := decimal.Zero
	for _, p := range selected {
		totalCost = totalCost.Add(p.Cost)
		totalRetail = totalRetail.Add(p.Retail)
	}

	var margin float64
	if totalRetail.IsPositive() {
		ratio, _ := totalRetail.Sub(totalCost).Div(totalRetail).Float64()
		margin = ratio * 100
	}

	return model.BoxEconomics{
		TotalCost:   totalCost,
		TotalRetail: totalRetail,
		Margin:      margin,
		ItemCount:   len(selected),
	}
}

// ClassifyMargin buckets a margin percentage for presentation. A thin
// margin is a warning, not an error.
func ClassifyMargin(margin float64) model.MarginHealth {
	if margin > healthyMarginPercent {
		return model.MarginHealthy
	}
	return model.MarginThin
}
