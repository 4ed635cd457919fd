package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
	testhelpers "github.com/curatebox/boxops/internal/test"
)

func curationCatalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Artisan Coffee Beans", Cost: decimal.RequireFromString("12.50"), Retail: decimal.RequireFromString("18.99")},
		{ID: 2, Name: "Organic Dark Chocolate", Cost: decimal.RequireFromString("8.25"), Retail: decimal.RequireFromString("14.99")},
	}
}

func TestBoxSubmitComputesTotalsAtSubmissionTime(t *testing.T) {
	boxRepo := &testhelpers.BoxRepositoryStub{}
	productRepo := &testhelpers.ProductRepositoryStub{Items: curationCatalog()}
	uc := NewBoxUseCase(boxRepo, productRepo)

	box, err := uc.Submit(context.Background(), model.Draft{Name: "  December Holiday Box "}, []int64{1, 2})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if box.Name != "December Holiday Box" {
		t.Fatalf("expected trimmed name, got %q", box.Name)
	}
	if box.ID == "" {
		t.Fatal("expected generated box id")
	}
	if !box.TotalCost.Equal(decimal.RequireFromString("20.75")) {
		t.Fatalf("expected total cost 20.75, got %s", box.TotalCost)
	}
	if !box.TotalRetail.Equal(decimal.RequireFromString("33.98")) {
		t.Fatalf("expected total retail 33.98, got %s", box.TotalRetail)
	}
	if len(boxRepo.Items) != 1 {
		t.Fatalf("expected box to be persisted, got %d", len(boxRepo.Items))
	}
}

func TestBoxSubmitValidationBlocksPersistence(t *testing.T) {
	boxRepo := &testhelpers.BoxRepositoryStub{CreateFn: func(context.Context, model.Box) (*model.Box, error) {
		t.Fatal("create should not be called on validation errors")
		return nil, nil
	}}
	uc := NewBoxUseCase(boxRepo, &testhelpers.ProductRepositoryStub{})

	_, err := uc.Submit(context.Background(), model.Draft{Name: ""}, nil)
	if !errors.Is(err, domainErrors.ErrMissingName) || !errors.Is(err, domainErrors.ErrEmptySelection) {
		t.Fatalf("expected both validation faults, got %v", err)
	}
}

func TestBoxSubmitRejectsUnknownSelection(t *testing.T) {
	uc := NewBoxUseCase(&testhelpers.BoxRepositoryStub{}, &testhelpers.ProductRepositoryStub{Items: curationCatalog()})

	_, err := uc.Submit(context.Background(), model.Draft{Name: "Mystery Box"}, []int64{1, 99})
	if !errors.Is(err, domainErrors.ErrUnknownProduct) {
		t.Fatalf("expected unknown product error, got %v", err)
	}
}

func TestBoxSubmitPropagatesRepositoryError(t *testing.T) {
	boom := errors.New("insert failed")
	boxRepo := &testhelpers.BoxRepositoryStub{Err: boom}
	uc := NewBoxUseCase(boxRepo, &testhelpers.ProductRepositoryStub{Items: curationCatalog()})

	if _, err := uc.Submit(context.Background(), model.Draft{Name: "Holiday"}, []int64{1}); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
