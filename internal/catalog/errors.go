package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found in catalog")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrMissingService  = errors.New("service name or custom name is required")
)
