package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

// LedgerReader is the only input reconciliation is allowed to read.
type LedgerReader interface {
	ListForPatient(ctx context.Context, patientID uuid.UUID, window ledger.Window) ([]*ledger.Transaction, error)
}

// Period identifies one admission's slice of a patient's ledger.
type Period struct {
	PatientID    uuid.UUID
	AdmittedAt   time.Time
	DischargedAt *time.Time
}

// Window returns [AdmittedAt, DischargedAt) for closed periods and
// [AdmittedAt, now) for open ones.
func (p Period) Window(now time.Time) ledger.Window {
	end := now
	if p.DischargedAt != nil {
		end = *p.DischargedAt
	}

	return ledger.Window{From: p.AdmittedAt, To: end}
}

// Summary is the derived money position of an admission. BalanceDue is
// negative when the patient has paid more than was charged.
type Summary struct {
	TotalCharges int64
	TotalPaid    int64
	BalanceDue   int64
	Transactions int
}

type Engine struct {
	ledger LedgerReader
	now    func() time.Time
}

func NewEngine(l LedgerReader) *Engine {
	return &Engine{ledger: l, now: time.Now}
}

// SetClock replaces the time source that closes open windows.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Reconcile recomputes the totals of a period from the ledger. It never reads
// a previously stored snapshot, so repeated calls over an unchanged ledger
// return identical summaries.
func (e *Engine) Reconcile(ctx context.Context, p Period) (Summary, error) {
	txs, err := e.ledger.ListForPatient(ctx, p.PatientID, p.Window(e.now().UTC()))
	if err != nil {
		return Summary{}, fmt.Errorf("reading ledger: %w", err)
	}

	return Summarize(txs), nil
}

// Summarize sums COMPLETED transactions by kind. VOID rows are skipped even if
// the caller passes them in.
func Summarize(txs []*ledger.Transaction) Summary {
	var s Summary

	for _, tx := range txs {
		if tx.Status != ledger.StatusCompleted {
			continue
		}

		switch tx.Kind {
		case ledger.KindCharge:
			s.TotalCharges += tx.Amount
		case ledger.KindPayment:
			s.TotalPaid += tx.Amount
		default:
			continue
		}

		s.Transactions++
	}

	s.BalanceDue = s.TotalCharges - s.TotalPaid

	return s
}
