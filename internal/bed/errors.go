package bed

import "errors"

var (
	ErrNotFound       = errors.New("bed not found")
	ErrBedUnavailable = errors.New("bed is not available")
	ErrInvalidBed     = errors.New("bed label is required and daily rate cannot be negative")
)
