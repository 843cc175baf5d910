package admission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/patient"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=admission
type Repository interface {
	CreateAdmission(ctx context.Context, a *Admission) error
	GetAdmission(ctx context.Context, id uuid.UUID) (*Admission, error)
	// LockAdmission reads the admission and holds a row lock on it until the
	// surrounding transaction ends.
	LockAdmission(ctx context.Context, id uuid.UUID) (*Admission, error)
	MarkDischarged(ctx context.Context, id uuid.UUID, at time.Time) error
	SaveSnapshot(ctx context.Context, id uuid.UUID, s billing.Summary, at time.Time) error
	ListAdmissions(ctx context.Context, filter ListFilter) ([]*Admission, error)
	HasActiveAdmission(ctx context.Context, patientID uuid.UUID) (bool, error)
}

type BedRegistry interface {
	Get(ctx context.Context, id uuid.UUID) (*bed.Bed, error)
	Reserve(ctx context.Context, id, patientID uuid.UUID) error
	Release(ctx context.Context, id uuid.UUID) error
}

type PatientRegistry interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Ledger interface {
	Append(ctx context.Context, nt ledger.NewTransaction) (*ledger.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	Void(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID, window ledger.Window) ([]*ledger.Transaction, error)
	History(ctx context.Context, patientID uuid.UUID, window ledger.Window) ([]*ledger.Transaction, error)
}

type Orderer interface {
	Order(ctx context.Context, patientID uuid.UUID, req catalog.OrderRequest) (*ledger.Transaction, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, p billing.Period) (billing.Summary, error)
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Repo       Repository
	Beds       BedRegistry
	Patients   PatientRegistry
	Ledger     Ledger
	Orders     Orderer
	Reconciler Reconciler
	Tx         Transactor
}

// Policy holds business switches that vary between hospitals.
type Policy struct {
	AllowPostDischargePayments bool
}

// Result is a ledger mutation together with the refreshed admission.
type Result struct {
	Transaction *ledger.Transaction
	Admission   *Admission
}

// PaymentRequest records money received. Category defaults to
// partial-payment.
type PaymentRequest struct {
	Amount      int64
	Mode        ledger.PaymentMode
	Category    string
	Description string
}

// Controller runs every mutation as one unit of work: lock the admission,
// write the ledger, reconcile, persist the snapshot, then touch the bed.
type Controller struct {
	repo       Repository
	beds       BedRegistry
	patients   PatientRegistry
	ledger     Ledger
	orders     Orderer
	reconciler Reconciler
	tx         Transactor
	policy     Policy
	now        func() time.Time
}

func NewController(deps Deps, policy Policy) *Controller {
	return &Controller{
		repo:       deps.Repo,
		beds:       deps.Beds,
		patients:   deps.Patients,
		ledger:     deps.Ledger,
		orders:     deps.Orders,
		reconciler: deps.Reconciler,
		tx:         deps.Tx,
		policy:     policy,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for admittedAt, dischargedAt and
// reconciledAt.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// clock reads the time source at the precision PostgreSQL stores, so windows
// held in memory match the ones read back later.
func (c *Controller) clock() time.Time {
	return c.now().UTC().Truncate(time.Microsecond)
}

// Admit reserves the bed and opens a new ACTIVE admission with zero totals.
func (c *Controller) Admit(ctx context.Context, patientID, bedID uuid.UUID) (*Admission, error) {
	var a *Admission

	err := c.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := c.patients.Exists(ctx, patientID)
		if err != nil {
			return err
		}

		if !exists {
			return patient.ErrNotFound
		}

		active, err := c.repo.HasActiveAdmission(ctx, patientID)
		if err != nil {
			return err
		}

		if active {
			return ErrPatientAlreadyAdmitted
		}

		if err := c.beds.Reserve(ctx, bedID, patientID); err != nil {
			return err
		}

		a = &Admission{
			ID:         uuid.New(),
			PatientID:  patientID,
			BedID:      bedID,
			Status:     StatusActive,
			AdmittedAt: c.clock(),
		}

		return c.repo.CreateAdmission(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("admission admitted", "admission_id", a.ID, "patient_id", patientID, "bed_id", bedID)

	return a, nil
}

func (c *Controller) RecordPayment(ctx context.Context, admissionID uuid.UUID, req PaymentRequest) (*Result, error) {
	if req.Amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = ledger.CategoryPartialPayment
	}

	return c.mutate(ctx, admissionID, func(ctx context.Context, a *Admission) (*ledger.Transaction, error) {
		if !a.IsActive() && !c.policy.AllowPostDischargePayments {
			return nil, ErrNotActive
		}

		return c.ledger.Append(ctx, ledger.NewTransaction{
			PatientID:   a.PatientID,
			Kind:        ledger.KindPayment,
			Category:    category,
			Amount:      req.Amount,
			PaymentMode: req.Mode,
			Description: req.Description,
		})
	})
}

func (c *Controller) OrderService(ctx context.Context, admissionID uuid.UUID, req catalog.OrderRequest) (*Result, error) {
	return c.mutate(ctx, admissionID, func(ctx context.Context, a *Admission) (*ledger.Transaction, error) {
		if !a.IsActive() {
			return nil, ErrNotActive
		}

		return c.orders.Order(ctx, a.PatientID, req)
	})
}

// ChargeAccommodation bills days of the admission's bed at its daily rate.
func (c *Controller) ChargeAccommodation(ctx context.Context, admissionID uuid.UUID, days int64) (*Result, error) {
	if days < 1 {
		return nil, catalog.ErrInvalidQuantity
	}

	return c.mutate(ctx, admissionID, func(ctx context.Context, a *Admission) (*ledger.Transaction, error) {
		if !a.IsActive() {
			return nil, ErrNotActive
		}

		b, err := c.beds.Get(ctx, a.BedID)
		if err != nil {
			return nil, fmt.Errorf("getting bed: %w", err)
		}

		return c.orders.Order(ctx, a.PatientID, catalog.OrderRequest{
			CustomName: accommodationName(b),
			UnitPrice:  b.DailyRate,
			Quantity:   days,
			Category:   ledger.CategoryAccommodation,
		})
	})
}

func accommodationName(b *bed.Bed) string {
	if b.Ward == "" {
		return "Bed " + b.Label
	}

	return fmt.Sprintf("Bed %s (%s)", b.Label, b.Ward)
}

// VoidTransaction voids a transaction inside the admission's window and
// reconciles from the full ledger. Voiding twice is a no-op. Corrections are
// allowed after discharge.
func (c *Controller) VoidTransaction(ctx context.Context, admissionID, txID uuid.UUID) (*Result, error) {
	return c.mutate(ctx, admissionID, func(ctx context.Context, a *Admission) (*ledger.Transaction, error) {
		tx, err := c.ledger.Get(ctx, txID)
		if err != nil {
			return nil, err
		}

		window := a.Period().Window(c.clock())
		if tx.PatientID != a.PatientID || !window.Contains(tx.CreatedAt) {
			return nil, ErrTransactionNotIncluded
		}

		return c.ledger.Void(ctx, txID)
	})
}

// mutate locks the admission, applies fn and refreshes the snapshot in one
// unit of work. Nothing is persisted if any step fails.
func (c *Controller) mutate(
	ctx context.Context,
	admissionID uuid.UUID,
	fn func(ctx context.Context, a *Admission) (*ledger.Transaction, error),
) (*Result, error) {
	var res Result

	err := c.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := c.repo.LockAdmission(ctx, admissionID)
		if err != nil {
			return err
		}

		tx, err := fn(ctx, a)
		if err != nil {
			return err
		}

		if err := c.refresh(ctx, a); err != nil {
			return err
		}

		res = Result{Transaction: tx, Admission: a}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// refresh recomputes the admission's totals from the ledger and persists them.
func (c *Controller) refresh(ctx context.Context, a *Admission) error {
	sum, err := c.reconciler.Reconcile(ctx, a.Period())
	if err != nil {
		return fmt.Errorf("reconciling admission %s: %w", a.ID, err)
	}

	at := c.clock()

	if err := c.repo.SaveSnapshot(ctx, a.ID, sum, at); err != nil {
		return err
	}

	a.applySnapshot(sum, at)

	return nil
}

// Discharge closes the admission window, runs the final reconciliation and
// frees the bed. Discharging twice returns the stored admission without
// touching the bed again. An outstanding balance does not block discharge.
func (c *Controller) Discharge(ctx context.Context, admissionID uuid.UUID) (*Admission, error) {
	var (
		a       *Admission
		retried bool
	)

	err := c.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		a, err = c.repo.LockAdmission(ctx, admissionID)
		if err != nil {
			return err
		}

		at := c.clock()

		if err := a.discharge(at); err != nil {
			if errors.Is(err, ErrAlreadyDischarged) {
				retried = true
				return nil
			}

			return err
		}

		if err := c.repo.MarkDischarged(ctx, a.ID, at); err != nil {
			return err
		}

		if err := c.refresh(ctx, a); err != nil {
			return err
		}

		return c.beds.Release(ctx, a.BedID)
	})
	if err != nil {
		return nil, err
	}

	if retried {
		slog.Info("discharge retried on discharged admission", "admission_id", a.ID)
		return a, nil
	}

	slog.Info("admission discharged",
		"admission_id", a.ID,
		"bed_id", a.BedID,
		"balance_due", a.BalanceDue,
	)

	return a, nil
}

func (c *Controller) GetAdmission(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return c.repo.GetAdmission(ctx, id)
}

func (c *Controller) List(ctx context.Context, filter ListFilter) ([]*Admission, error) {
	return c.repo.ListAdmissions(ctx, filter)
}

// Reconcile recomputes the admission's totals from the ledger without
// touching the stored snapshot.
func (c *Controller) Reconcile(ctx context.Context, id uuid.UUID) (billing.Summary, error) {
	a, err := c.repo.GetAdmission(ctx, id)
	if err != nil {
		return billing.Summary{}, err
	}

	return c.reconciler.Reconcile(ctx, a.Period())
}

// GetLedger returns the patient's COMPLETED transactions inside window.
func (c *Controller) GetLedger(ctx context.Context, patientID uuid.UUID, window ledger.Window) ([]*ledger.Transaction, error) {
	return c.ledger.ListForPatient(ctx, patientID, window)
}

// Transactions returns every transaction of the admission's window,
// VOID ones included, oldest first.
func (c *Controller) Transactions(ctx context.Context, id uuid.UUID) (*Admission, []*ledger.Transaction, error) {
	a, err := c.repo.GetAdmission(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	txs, err := c.ledger.History(ctx, a.PatientID, a.Period().Window(c.clock()))
	if err != nil {
		return nil, nil, fmt.Errorf("reading ledger: %w", err)
	}

	return a, txs, nil
}
