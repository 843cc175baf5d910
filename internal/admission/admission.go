// Package admission owns the in-patient stay state machine (ACTIVE to
// DISCHARGED) and keeps each stay's money snapshot in step with the ledger.
package admission

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
)

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusDischarged Status = "DISCHARGED"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusDischarged
}

// Admission is one continuous stay. The money fields are a cache of the last
// reconciliation and may be re-derived from the ledger at any time.
type Admission struct {
	ID           uuid.UUID
	PatientID    uuid.UUID
	BedID        uuid.UUID
	Status       Status
	AdmittedAt   time.Time
	DischargedAt *time.Time
	TotalCharges int64
	TotalPaid    int64
	BalanceDue   int64
	ReconciledAt *time.Time
}

// Period is the slice of the patient's ledger this stay owns.
func (a *Admission) Period() billing.Period {
	return billing.Period{
		PatientID:    a.PatientID,
		AdmittedAt:   a.AdmittedAt,
		DischargedAt: a.DischargedAt,
	}
}

func (a *Admission) IsActive() bool {
	return a.Status == StatusActive
}

// discharge moves the admission to its terminal state.
func (a *Admission) discharge(at time.Time) error {
	if a.Status == StatusDischarged {
		return ErrAlreadyDischarged
	}

	a.Status = StatusDischarged
	a.DischargedAt = &at

	return nil
}

func (a *Admission) applySnapshot(s billing.Summary, at time.Time) {
	a.TotalCharges = s.TotalCharges
	a.TotalPaid = s.TotalPaid
	a.BalanceDue = s.BalanceDue
	a.ReconciledAt = &at
}

// ListFilter narrows ListAdmissions. Zero values match everything.
type ListFilter struct {
	Status    Status
	PatientID uuid.UUID
}
