package billing_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger/memory"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	clock  *clock
	ledger *ledger.Service
	engine *billing.Engine
}

func newFixture() *fixture {
	c := &clock{t: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}

	l := ledger.NewService(memory.New())
	l.SetClock(c.now)

	e := billing.NewEngine(l)
	e.SetClock(c.now)

	return &fixture{clock: c, ledger: l, engine: e}
}

func (f *fixture) charge(t *testing.T, patientID uuid.UUID, amount int64) *ledger.Transaction {
	t.Helper()

	tx, err := f.ledger.Append(context.Background(), ledger.NewTransaction{
		PatientID: patientID,
		Kind:      ledger.KindCharge,
		Category:  ledger.CategoryDiagnostic,
		Amount:    amount,
	})
	require.NoError(t, err)

	f.clock.advance(time.Minute)

	return tx
}

func (f *fixture) pay(t *testing.T, patientID uuid.UUID, amount int64) *ledger.Transaction {
	t.Helper()

	tx, err := f.ledger.Append(context.Background(), ledger.NewTransaction{
		PatientID:   patientID,
		Kind:        ledger.KindPayment,
		Category:    ledger.CategoryPartialPayment,
		Amount:      amount,
		PaymentMode: ledger.PaymentCash,
	})
	require.NoError(t, err)

	f.clock.advance(time.Minute)

	return tx
}

func TestEngine_Reconcile(t *testing.T) {
	t.Run("ChargesAndPayments", func(t *testing.T) {
		f := newFixture()
		patientID := uuid.New()
		period := billing.Period{PatientID: patientID, AdmittedAt: f.clock.now()}

		f.pay(t, patientID, 500000)
		f.charge(t, patientID, 80000)
		f.charge(t, patientID, 150000)

		got, err := f.engine.Reconcile(context.Background(), period)
		require.NoError(t, err)

		assert.Equal(t, billing.Summary{
			TotalCharges: 230000,
			TotalPaid:    500000,
			BalanceDue:   -270000,
			Transactions: 3,
		}, got)
	})

	t.Run("EmptyLedger", func(t *testing.T) {
		f := newFixture()

		got, err := f.engine.Reconcile(context.Background(), billing.Period{
			PatientID:  uuid.New(),
			AdmittedAt: f.clock.now(),
		})
		require.NoError(t, err)
		assert.Equal(t, billing.Summary{}, got)
	})

	t.Run("VoidedTransactionsExcluded", func(t *testing.T) {
		f := newFixture()
		patientID := uuid.New()
		period := billing.Period{PatientID: patientID, AdmittedAt: f.clock.now()}

		f.charge(t, patientID, 80000)
		wrong := f.charge(t, patientID, 150000)

		before, err := f.engine.Reconcile(context.Background(), period)
		require.NoError(t, err)

		_, err = f.ledger.Void(context.Background(), wrong.ID)
		require.NoError(t, err)

		after, err := f.engine.Reconcile(context.Background(), period)
		require.NoError(t, err)

		assert.Equal(t, before.TotalCharges-wrong.Amount, after.TotalCharges)
		assert.Equal(t, before.BalanceDue-wrong.Amount, after.BalanceDue)
		assert.Equal(t, before.TotalPaid, after.TotalPaid)
		assert.Equal(t, 1, after.Transactions)
	})

	t.Run("Idempotent", func(t *testing.T) {
		f := newFixture()
		patientID := uuid.New()
		admittedAt := f.clock.now()

		f.charge(t, patientID, 1200)
		f.pay(t, patientID, 700)

		dischargedAt := f.clock.now()
		period := billing.Period{PatientID: patientID, AdmittedAt: admittedAt, DischargedAt: &dischargedAt}

		first, err := f.engine.Reconcile(context.Background(), period)
		require.NoError(t, err)

		f.clock.advance(24 * time.Hour)

		second, err := f.engine.Reconcile(context.Background(), period)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("WindowContainment", func(t *testing.T) {
		f := newFixture()
		patientID := uuid.New()

		// earlier stay
		f.charge(t, patientID, 999)

		admittedAt := f.clock.now()
		f.charge(t, patientID, 1000)
		f.pay(t, patientID, 400)
		dischargedAt := f.clock.now()

		// lands exactly on the discharge instant, outside the half-open window
		f.pay(t, patientID, 600)

		// another patient in the same window
		f.charge(t, uuid.New(), 5000)

		got, err := f.engine.Reconcile(context.Background(), billing.Period{
			PatientID:    patientID,
			AdmittedAt:   admittedAt,
			DischargedAt: &dischargedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1000), got.TotalCharges)
		assert.Equal(t, int64(400), got.TotalPaid)
		assert.Equal(t, int64(600), got.BalanceDue)
	})

	t.Run("LedgerError", func(t *testing.T) {
		e := billing.NewEngine(failingReader{err: errors.New("connection reset")})

		_, err := e.Reconcile(context.Background(), billing.Period{PatientID: uuid.New()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading ledger")
	})
}

func TestEngine_Reconcile_Conservation(t *testing.T) {
	f := newFixture()
	patientID := uuid.New()
	period := billing.Period{PatientID: patientID, AdmittedAt: f.clock.now()}
	rng := rand.New(rand.NewSource(42))

	var (
		live    []*ledger.Transaction
		charges int64
		paid    int64
	)

	for range 200 {
		switch op := rng.Intn(10); {
		case op < 5:
			tx := f.charge(t, patientID, rng.Int63n(100000)+1)
			live = append(live, tx)
			charges += tx.Amount
		case op < 8:
			tx := f.pay(t, patientID, rng.Int63n(100000)+1)
			live = append(live, tx)
			paid += tx.Amount
		case len(live) > 0:
			i := rng.Intn(len(live))
			tx := live[i]

			_, err := f.ledger.Void(context.Background(), tx.ID)
			require.NoError(t, err)

			if tx.Kind == ledger.KindCharge {
				charges -= tx.Amount
			} else {
				paid -= tx.Amount
			}

			live = append(live[:i], live[i+1:]...)
		}

		got, err := f.engine.Reconcile(context.Background(), period)
		require.NoError(t, err)

		require.Equal(t, charges, got.TotalCharges)
		require.Equal(t, paid, got.TotalPaid)
		require.Equal(t, got.TotalCharges-got.TotalPaid, got.BalanceDue)
		require.Equal(t, len(live), got.Transactions)
	}
}

func TestSummarize_SkipsVoid(t *testing.T) {
	txs := []*ledger.Transaction{
		{Kind: ledger.KindCharge, Amount: 100, Status: ledger.StatusCompleted},
		{Kind: ledger.KindCharge, Amount: 50, Status: ledger.StatusVoid},
		{Kind: ledger.KindPayment, Amount: 30, Status: ledger.StatusCompleted},
	}

	assert.Equal(t, billing.Summary{
		TotalCharges: 100,
		TotalPaid:    30,
		BalanceDue:   70,
		Transactions: 2,
	}, billing.Summarize(txs))
}

type failingReader struct {
	err error
}

func (r failingReader) ListForPatient(context.Context, uuid.UUID, ledger.Window) ([]*ledger.Transaction, error) {
	return nil, r.err
}
