package crs

import "errors"

var (
	ErrNotFound        = errors.New("crs not found")
	ErrDuplicate       = errors.New("crs already registered")
	ErrUnsupportedUnit = errors.New("unsupported linear unit")
	ErrInvalidBounds   = errors.New("invalid bound coords")
)
