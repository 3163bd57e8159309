package models

import "errors"

// Sentinel errors shared by the planner and its surfaces.
var (
	ErrValidation         = errors.New("invalid input")
	ErrFetch              = errors.New("catalog fetch failed")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrSelectionExhausted = errors.New("meal selection exhausted")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
)
