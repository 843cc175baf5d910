package ledger

import "errors"

var (
	ErrNotFound           = errors.New("transaction not found")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrMissingPatient     = errors.New("patient id is required")

	// ErrAlreadyVoid is reported by repositories. Service.Void absorbs it.
	ErrAlreadyVoid = errors.New("transaction already void")
)
