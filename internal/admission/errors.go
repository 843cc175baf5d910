package admission

import "errors"

var (
	ErrNotFound               = errors.New("admission not found")
	ErrNotActive              = errors.New("admission is not active")
	ErrAlreadyDischarged      = errors.New("admission already discharged")
	ErrPatientAlreadyAdmitted = errors.New("patient already has an active admission")
	ErrTransactionNotIncluded = errors.New("transaction does not belong to this admission")
)
