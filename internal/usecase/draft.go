package usecase

import (
	"errors"
	"strings"

	domainErrors "github.com/curatebox/boxops/internal/domain/errors"
	"github.com/curatebox/boxops/internal/domain/model"
)

// ValidateDraft checks a box draft against the current selection size.
// Faults are collected rather than short-circuited so a caller can show
// every problem at once; the result unwraps to the individual sentinels.
func ValidateDraft(draft model.Draft, selectionSize int) error {
	var faults []error
	if strings.TrimSpace(draft.Name) == "" {
		faults = append(faults, domainErrors.ErrMissingName)
	}
	if selectionSize == 0 {
		faults = append(faults, domainErrors.ErrEmptySelection)
	}
	return errors.Join(faults...)
}
