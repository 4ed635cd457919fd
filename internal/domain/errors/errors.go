package errors

import "errors"

var (
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotFound       = errors.New("not found")
	ErrUnknownStatus  = errors.New("unknown status")
	ErrMissingName    = errors.New("box name required")
	ErrEmptySelection = errors.New("no products selected")
	ErrUnknownProduct = errors.New("unknown product")
	ErrNegativeStock  = errors.New("stock must not be negative")
)
