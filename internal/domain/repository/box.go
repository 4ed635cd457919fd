package repository

import (
	"context"

	"github.com/curatebox/boxops/internal/domain/model"
)

// BoxRepository describes persistence operations with curated boxes.
type BoxRepository interface {
	List(ctx context.Context) ([]model.Box, error)
	Create(ctx context.Context, box model.Box) (*model.Box, error)
}
