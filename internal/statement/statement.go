// Package statement assembles the read-only billing statement of an
// admission for renderers (screen, print, API).
package statement

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

// Line is one ledger row. Balance is the running balance after this row;
// VOID rows are listed for audit but leave the balance unchanged.
type Line struct {
	TransactionID uuid.UUID
	Date          time.Time
	Kind          ledger.Kind
	Category      string
	Description   string
	PaymentMode   ledger.PaymentMode
	Charge        int64
	Payment       int64
	Void          bool
	Balance       int64
}

type Statement struct {
	AdmissionID  uuid.UUID
	PatientID    uuid.UUID
	BedID        uuid.UUID
	Status       admission.Status
	AdmittedAt   time.Time
	DischargedAt *time.Time
	Lines        []Line
	Totals       billing.Summary
	// ByCategory sums COMPLETED charges per category.
	ByCategory map[string]int64
}

// Build lays txs out in order with a running balance. Totals are derived from
// txs, not from the admission's cached snapshot.
func Build(a *admission.Admission, txs []*ledger.Transaction) *Statement {
	s := &Statement{
		AdmissionID:  a.ID,
		PatientID:    a.PatientID,
		BedID:        a.BedID,
		Status:       a.Status,
		AdmittedAt:   a.AdmittedAt,
		DischargedAt: a.DischargedAt,
		Lines:        make([]Line, 0, len(txs)),
		Totals:       billing.Summarize(txs),
		ByCategory:   make(map[string]int64),
	}

	var balance int64

	for _, tx := range txs {
		line := Line{
			TransactionID: tx.ID,
			Date:          tx.CreatedAt,
			Kind:          tx.Kind,
			Category:      tx.Category,
			Description:   tx.Description,
			PaymentMode:   tx.PaymentMode,
			Void:          tx.Status == ledger.StatusVoid,
		}

		switch tx.Kind {
		case ledger.KindCharge:
			line.Charge = tx.Amount
		case ledger.KindPayment:
			line.Payment = tx.Amount
		}

		if !line.Void {
			balance += line.Charge - line.Payment

			if tx.Kind == ledger.KindCharge {
				s.ByCategory[tx.Category] += tx.Amount
			}
		}

		line.Balance = balance
		s.Lines = append(s.Lines, line)
	}

	return s
}
