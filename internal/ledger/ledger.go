package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind separates money owed by the patient from money received.
type Kind string

const (
	KindCharge  Kind = "CHARGE"
	KindPayment Kind = "PAYMENT"
)

func (k Kind) Valid() bool {
	return k == KindCharge || k == KindPayment
}

// Status represents the lifecycle state of a transaction.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusVoid      Status = "VOID"
)

// PaymentMode records how a payment was received. Charges carry no mode.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "CASH"
	PaymentCard         PaymentMode = "CARD"
	PaymentUPI          PaymentMode = "UPI"
	PaymentBankTransfer PaymentMode = "BANK_TRANSFER"
	PaymentInsurance    PaymentMode = "INSURANCE"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer, PaymentInsurance:
		return true
	}

	return false
}

// Categories are free-form; these are the ones the front office uses.
const (
	CategoryAccommodation  = "accommodation"
	CategoryNursing        = "nursing"
	CategoryMedicine       = "medicine"
	CategoryProcedure      = "procedure"
	CategoryDiagnostic     = "diagnostic"
	CategoryTherapy        = "therapy"
	CategoryAdvancePayment = "advance-payment"
	CategoryPartialPayment = "partial-payment"
	CategoryOther          = "other"
)

// Transaction is a single monetary fact. Once written only Status (and
// VoidedAt) may change.
type Transaction struct {
	ID          uuid.UUID
	PatientID   uuid.UUID
	Kind        Kind
	Category    string
	Amount      int64 // Amount in minor currency units
	PaymentMode PaymentMode
	Status      Status
	Description string
	CreatedAt   time.Time
	VoidedAt    *time.Time
}

// NewTransaction is the caller-supplied part of a Transaction.
type NewTransaction struct {
	PatientID   uuid.UUID
	Kind        Kind
	Category    string
	Amount      int64
	PaymentMode PaymentMode
	Description string
}

// Window is the half-open interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}
