package admission_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger/memory"
)

// tickingClock returns strictly increasing instants so ledger rows never share
// a timestamp with a window boundary by accident.
type tickingClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *tickingClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(time.Second)

	return c.t
}

// serialTx runs units of work one at a time, like row locks on a single
// admission would.
type serialTx struct {
	mu sync.Mutex
}

func (s *serialTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx)
}

type memAdmissions struct {
	mu   sync.Mutex
	rows map[uuid.UUID]admission.Admission
}

func (r *memAdmissions) CreateAdmission(_ context.Context, a *admission.Admission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rows {
		if existing.Status != admission.StatusActive {
			continue
		}

		if existing.BedID == a.BedID {
			return bed.ErrBedUnavailable
		}

		if existing.PatientID == a.PatientID {
			return admission.ErrPatientAlreadyAdmitted
		}
	}

	r.rows[a.ID] = *a

	return nil
}

func (r *memAdmissions) GetAdmission(_ context.Context, id uuid.UUID) (*admission.Admission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return nil, admission.ErrNotFound
	}

	return &a, nil
}

func (r *memAdmissions) LockAdmission(ctx context.Context, id uuid.UUID) (*admission.Admission, error) {
	return r.GetAdmission(ctx, id)
}

func (r *memAdmissions) MarkDischarged(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return admission.ErrNotFound
	}

	if a.Status == admission.StatusDischarged {
		return admission.ErrAlreadyDischarged
	}

	a.Status = admission.StatusDischarged
	a.DischargedAt = &at
	r.rows[id] = a

	return nil
}

func (r *memAdmissions) SaveSnapshot(_ context.Context, id uuid.UUID, s billing.Summary, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return admission.ErrNotFound
	}

	a.TotalCharges = s.TotalCharges
	a.TotalPaid = s.TotalPaid
	a.BalanceDue = s.BalanceDue
	a.ReconciledAt = &at
	r.rows[id] = a

	return nil
}

func (r *memAdmissions) ListAdmissions(_ context.Context, filter admission.ListFilter) ([]*admission.Admission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*admission.Admission

	for _, a := range r.rows {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}

		if filter.PatientID != uuid.Nil && a.PatientID != filter.PatientID {
			continue
		}

		out = append(out, &a)
	}

	return out, nil
}

func (r *memAdmissions) HasActiveAdmission(_ context.Context, patientID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.rows {
		if a.PatientID == patientID && a.Status == admission.StatusActive {
			return true, nil
		}
	}

	return false, nil
}

type memBeds struct {
	mu       sync.Mutex
	beds     map[uuid.UUID]*bed.Bed
	releases map[uuid.UUID]int
}

func (b *memBeds) add(label string, dailyRate int64) uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	b.beds[id] = &bed.Bed{ID: id, Label: label, Status: bed.StatusAvailable, DailyRate: dailyRate}

	return id
}

func (b *memBeds) Get(_ context.Context, id uuid.UUID) (*bed.Bed, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	got, ok := b.beds[id]
	if !ok {
		return nil, bed.ErrNotFound
	}

	cp := *got

	return &cp, nil
}

func (b *memBeds) Reserve(_ context.Context, id, patientID uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	got, ok := b.beds[id]
	if !ok {
		return bed.ErrNotFound
	}

	if got.Status != bed.StatusAvailable {
		return bed.ErrBedUnavailable
	}

	got.Status = bed.StatusOccupied
	got.PatientID = &patientID

	return nil
}

func (b *memBeds) Release(_ context.Context, id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	got, ok := b.beds[id]
	if !ok {
		return bed.ErrNotFound
	}

	got.Status = bed.StatusAvailable
	got.PatientID = nil
	b.releases[id]++

	return nil
}

type knownPatients map[uuid.UUID]bool

func (p knownPatients) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return p[id], nil
}

type world struct {
	controller *admission.Controller
	ledger     *ledger.Service
	engine     *billing.Engine
	beds       *memBeds
	patients   knownPatients
}

func newWorld(policy admission.Policy) *world {
	clock := &tickingClock{t: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}

	l := ledger.NewService(memory.New())
	l.SetClock(clock.now)

	engine := billing.NewEngine(l)
	engine.SetClock(clock.now)

	beds := &memBeds{beds: map[uuid.UUID]*bed.Bed{}, releases: map[uuid.UUID]int{}}
	patients := knownPatients{}

	c := admission.NewController(admission.Deps{
		Repo:       &memAdmissions{rows: map[uuid.UUID]admission.Admission{}},
		Beds:       beds,
		Patients:   patients,
		Ledger:     l,
		Orders:     catalog.NewOrderer(catalog.Default(), l),
		Reconciler: engine,
		Tx:         &serialTx{},
	}, policy)
	c.SetClock(clock.now)

	return &world{controller: c, ledger: l, engine: engine, beds: beds, patients: patients}
}

func (w *world) patient() uuid.UUID {
	id := uuid.New()
	w.patients[id] = true

	return id
}

func TestScenario_AdmissionLifecycle(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{})

	p := w.patient()
	b1 := w.beds.add("B1", 150000)

	// 1. admit
	a, err := w.controller.Admit(ctx, p, b1)
	require.NoError(t, err)
	assert.Equal(t, admission.StatusActive, a.Status)
	assert.Zero(t, a.TotalCharges)
	assert.Zero(t, a.TotalPaid)
	assert.Zero(t, a.BalanceDue)

	occupied, err := w.beds.Get(ctx, b1)
	require.NoError(t, err)
	assert.Equal(t, bed.StatusOccupied, occupied.Status)

	// 2. order X-Ray Chest at 800.00
	xray, err := w.controller.OrderService(ctx, a.ID, catalog.OrderRequest{ServiceName: "X-Ray Chest", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(80000), xray.Admission.TotalCharges)
	assert.Equal(t, int64(80000), xray.Admission.BalanceDue)

	// 3. pay 500.00 cash
	paid, err := w.controller.RecordPayment(ctx, a.ID, admission.PaymentRequest{Amount: 50000, Mode: ledger.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), paid.Admission.TotalPaid)
	assert.Equal(t, int64(30000), paid.Admission.BalanceDue)

	// 4. void the X-Ray
	voided, err := w.controller.VoidTransaction(ctx, a.ID, xray.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusVoid, voided.Transaction.Status)
	assert.Zero(t, voided.Admission.TotalCharges)
	assert.Equal(t, int64(-50000), voided.Admission.BalanceDue)

	// voiding again does not double-reduce
	again, err := w.controller.VoidTransaction(ctx, a.ID, xray.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, voided.Admission.TotalCharges, again.Admission.TotalCharges)
	assert.Equal(t, voided.Admission.BalanceDue, again.Admission.BalanceDue)

	// 5. discharge with a credit
	discharged, err := w.controller.Discharge(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, admission.StatusDischarged, discharged.Status)
	require.NotNil(t, discharged.DischargedAt)
	assert.Equal(t, int64(-50000), discharged.BalanceDue)

	freed, err := w.beds.Get(ctx, b1)
	require.NoError(t, err)
	assert.Equal(t, bed.StatusAvailable, freed.Status)

	// 6. discharge again
	retried, err := w.controller.Discharge(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, *discharged.DischargedAt, *retried.DischargedAt)
	assert.Equal(t, 1, w.beds.releases[b1], "bed released exactly once")

	stored, err := w.controller.GetAdmission(ctx, a.ID)
	require.NoError(t, err)

	recomputed, err := w.controller.Reconcile(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.TotalCharges, recomputed.TotalCharges)
	assert.Equal(t, stored.TotalPaid, recomputed.TotalPaid)
	assert.Equal(t, stored.BalanceDue, recomputed.BalanceDue)
}

func TestScenario_DischargedAdmissionRejectsMutations(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{})

	a, err := w.controller.Admit(ctx, w.patient(), w.beds.add("B1", 150000))
	require.NoError(t, err)

	_, err = w.controller.Discharge(ctx, a.ID)
	require.NoError(t, err)

	_, err = w.controller.RecordPayment(ctx, a.ID, admission.PaymentRequest{Amount: 100, Mode: ledger.PaymentCash})
	assert.ErrorIs(t, err, admission.ErrNotActive)

	_, err = w.controller.OrderService(ctx, a.ID, catalog.OrderRequest{ServiceName: "ECG", Quantity: 1})
	assert.ErrorIs(t, err, admission.ErrNotActive)

	_, err = w.controller.ChargeAccommodation(ctx, a.ID, 1)
	assert.ErrorIs(t, err, admission.ErrNotActive)
}

func TestScenario_PostDischargePaymentOutsideWindow(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{AllowPostDischargePayments: true})

	a, err := w.controller.Admit(ctx, w.patient(), w.beds.add("B1", 150000))
	require.NoError(t, err)

	_, err = w.controller.ChargeAccommodation(ctx, a.ID, 2)
	require.NoError(t, err)

	discharged, err := w.controller.Discharge(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), discharged.BalanceDue)

	late, err := w.controller.RecordPayment(ctx, a.ID, admission.PaymentRequest{Amount: 300000, Mode: ledger.PaymentUPI})
	require.NoError(t, err)
	assert.True(t, late.Transaction.CreatedAt.After(*discharged.DischargedAt))
	assert.Zero(t, late.Admission.TotalPaid, "payment after dischargedAt is outside the admission window")
	assert.Equal(t, int64(300000), late.Admission.BalanceDue)

	onLedger, err := w.controller.GetLedger(ctx, a.PatientID, ledger.Window{
		From: a.AdmittedAt,
		To:   late.Transaction.CreatedAt.Add(time.Second),
	})
	require.NoError(t, err)
	assert.Len(t, onLedger, 2)
}

func TestScenario_ReadmissionStartsFresh(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{})

	p := w.patient()
	b1 := w.beds.add("B1", 150000)

	first, err := w.controller.Admit(ctx, p, b1)
	require.NoError(t, err)

	_, err = w.controller.Admit(ctx, p, w.beds.add("B2", 150000))
	assert.ErrorIs(t, err, admission.ErrPatientAlreadyAdmitted)

	_, err = w.controller.OrderService(ctx, first.ID, catalog.OrderRequest{ServiceName: "ECG", Quantity: 2})
	require.NoError(t, err)

	_, err = w.controller.Discharge(ctx, first.ID)
	require.NoError(t, err)

	second, err := w.controller.Admit(ctx, p, b1)
	require.NoError(t, err)

	sum, err := w.controller.Reconcile(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.Summary{}, sum)

	firstSum, err := w.controller.Reconcile(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), firstSum.TotalCharges)
}

func TestConcurrency_AdmitSameBed(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{})
	b1 := w.beds.add("B1", 150000)

	const n = 8

	patients := make([]uuid.UUID, n)
	for i := range patients {
		patients[i] = w.patient()
	}

	var (
		wg          sync.WaitGroup
		admitted    atomic.Int32
		unavailable atomic.Int32
	)

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := w.controller.Admit(ctx, patients[i], b1)

			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, bed.ErrBedUnavailable):
				unavailable.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
	assert.Equal(t, int32(n-1), unavailable.Load())
}

func TestConcurrency_OrdersAreNeverLost(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{})

	a, err := w.controller.Admit(ctx, w.patient(), w.beds.add("B1", 150000))
	require.NoError(t, err)

	const n = 20

	var wg sync.WaitGroup

	for range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := w.controller.OrderService(ctx, a.ID, catalog.OrderRequest{ServiceName: "X-Ray Chest", Quantity: 1})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	stored, err := w.controller.GetAdmission(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n*80000), stored.TotalCharges)

	sum, err := w.controller.Reconcile(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, n, sum.Transactions)
	assert.Equal(t, stored.BalanceDue, sum.BalanceDue)
}

func TestConcurrency_DischargeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newWorld(admission.Policy{})
	b1 := w.beds.add("B1", 150000)

	a, err := w.controller.Admit(ctx, w.patient(), b1)
	require.NoError(t, err)

	const n = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []time.Time
	)

	for range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got, err := w.controller.Discharge(ctx, a.ID)
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			results = append(results, *got.DischargedAt)
			mu.Unlock()
		}()
	}

	wg.Wait()

	require.Len(t, results, n)

	for _, at := range results {
		assert.Equal(t, results[0], at)
	}

	assert.Equal(t, 1, w.beds.releases[b1])
}
