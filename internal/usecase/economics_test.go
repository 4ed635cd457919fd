package usecase

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
)

func TestComputeBoxEconomicsEmptySelection(t *testing.T) {
	got := ComputeBoxEconomics(nil)
	if !got.TotalCost.IsZero() || !got.TotalRetail.IsZero() {
		t.Fatalf("expected zero totals, got cost=%s retail=%s", got.TotalCost, got.TotalRetail)
	}
	if got.Margin != 0 {
		t.Fatalf("expected zero margin, got %v", got.Margin)
	}
	if got.ItemCount != 0 {
		t.Fatalf("expected zero items, got %d", got.ItemCount)
	}
}

func TestComputeBoxEconomicsSumsExactly(t *testing.T) {
	selected := []model.Product{
		{ID: 1, Cost: decimal.RequireFromString("12.50"), Retail: decimal.RequireFromString("18.99")},
		{ID: 2, Cost: decimal.RequireFromString("8.25"), Retail: decimal.RequireFromString("14.99")},
	}

	got := ComputeBoxEconomics(selected)
	if !got.TotalCost.Equal(decimal.RequireFromString("20.75")) {
		t.Fatalf("expected total cost 20.75, got %s", got.TotalCost)
	}
	if !got.TotalRetail.Equal(decimal.RequireFromString("33.98")) {
		t.Fatalf("expected total retail 33.98, got %s", got.TotalRetail)
	}
	if math.Abs(got.Margin-38.9) > 0.05 {
		t.Fatalf("expected margin near 38.9, got %v", got.Margin)
	}
	if got.ItemCount != 2 {
		t.Fatalf("expected 2 items, got %d", got.ItemCount)
	}
}

func TestComputeBoxEconomicsZeroRetail(t *testing.T) {
	selected := []model.Product{{ID: 1, Cost: decimal.RequireFromString("5.00"), Retail: decimal.Zero}}
	got := ComputeBoxEconomics(selected)
	if got.Margin != 0 {
		t.Fatalf("expected zero margin when retail is zero, got %v", got.Margin)
	}
}

func TestComputeBoxEconomicsDoesNotMutateInput(t *testing.T) {
	selected := []model.Product{
		{ID: 1, Cost: decimal.RequireFromString("12.50"), Retail: decimal.RequireFromString("18.99")},
	}
	before := selected[0]
	ComputeBoxEconomics(selected)
	if !selected[0].Cost.Equal(before.Cost) || !selected[0].Retail.Equal(before.Retail) {
		t.Fatal("input slice was mutated")
	}
}

func TestClassifyMargin(t *testing.T) {
	cases := []struct {
		margin float64
		want   model.MarginHealth
	}{
		{62.5, model.MarginHealthy},
		{50, model.MarginThin},
		{38.9, model.MarginThin},
		{0, model.MarginThin},
	}

	for _, tc := range cases {
		if got := ClassifyMargin(tc.margin); got != tc.want {
			t.Fatalf("margin %v: expected %s, got %s", tc.margin, tc.want, got)
		}
	}
}
