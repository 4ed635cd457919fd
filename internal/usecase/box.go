package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
	"github.com/curatebox/boxops/internal/domain/repository"
)

// BoxUseCase encapsulates draft submission logic.
type BoxUseCase struct {
	boxes    repository.BoxRepository
	products repository.ProductRepository
}

// NewBoxUseCase constructs BoxUseCase.
func NewBoxUseCase(boxes repository.BoxRepository, products repository.ProductRepository) *BoxUseCase {
	return &BoxUseCase{boxes: boxes, products: products}
}

// List returns all saved boxes.
func (u *BoxUseCase) List(ctx context.Context) ([]model.Box, error) {
	return u.boxes.List(ctx)
}

// Submit validates the draft, reloads the selected products so totals
// reflect current catalog prices, and persists an immutable box. The
// caller resets the selection and draft after a successful submission.
func (u *BoxUseCase) Submit(ctx context.Context, draft model.Draft, selection []int64) (*model.Box, error) {
	if err := ValidateDraft(draft, len(selection)); err != nil {
		return nil, err
	}

	selected, err := u.products.GetByIDs(ctx, selection)
	if err != nil {
		return nil, err
	}
	if len(selected) != len(selection) {
		return nil, domainErrors.ErrUnknownProduct
	}

	economics := ComputeBoxEconomics(selected)
	box := model.Box{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(draft.Name),
		Theme:       draft.Theme,
		ShipDate:    draft.ShipDate,
		Description: draft.Description,
		ProductIDs:  selection,
		TotalCost:   economics.TotalCost,
		TotalRetail: economics.TotalRetail,
		CreatedAt:   time.Now().UTC(),
	}

	return u.boxes.Create(ctx, box)
}
