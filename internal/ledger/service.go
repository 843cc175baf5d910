package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	// VoidTransaction flips a COMPLETED transaction to VOID and returns the
	// stored record. It returns ErrAlreadyVoid when the row is already VOID.
	VoidTransaction(ctx context.Context, id uuid.UUID, at time.Time) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
}

// ListFilter selects transactions of one patient created in [From, To).
type ListFilter struct {
	PatientID   uuid.UUID
	From        time.Time
	To          time.Time
	IncludeVoid bool
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetClock replaces the time source used to stamp CreatedAt and VoidedAt.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// clock reads the time source at the precision PostgreSQL stores.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// Append validates and stores a new COMPLETED transaction. Existing
// transactions are never touched.
func (s *Service) Append(ctx context.Context, nt NewTransaction) (*Transaction, error) {
	if err := validate(nt); err != nil {
		return nil, err
	}

	tx := &Transaction{
		ID:          uuid.New(),
		PatientID:   nt.PatientID,
		Kind:        nt.Kind,
		Category:    strings.TrimSpace(nt.Category),
		Amount:      nt.Amount,
		Status:      StatusCompleted,
		Description: strings.TrimSpace(nt.Description),
		CreatedAt:   s.clock(),
	}

	if tx.Kind == KindPayment {
		tx.PaymentMode = nt.PaymentMode
	}

	if tx.Category == "" {
		tx.Category = CategoryOther
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func validate(nt NewTransaction) error {
	if nt.PatientID == uuid.Nil {
		return ErrMissingPatient
	}

	if nt.Amount <= 0 {
		return ErrInvalidAmount
	}

	if !nt.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, nt.Kind)
	}

	if nt.Kind == KindPayment && !nt.PaymentMode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMode, nt.PaymentMode)
	}

	return nil
}

// Void marks a transaction VOID. Voiding an already VOID transaction is a
// no-op that returns the stored record, so retried requests succeed.
func (s *Service) Void(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.VoidTransaction(ctx, id, s.clock())
	if err == nil {
		return tx, nil
	}

	if !errors.Is(err, ErrAlreadyVoid) {
		return nil, err
	}

	slog.Debug("void retried on voided transaction", "transaction_id", id)

	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// ListForPatient returns the patient's COMPLETED transactions created inside
// window, oldest first.
func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID, window Window) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ListFilter{
		PatientID: patientID,
		From:      window.From,
		To:        window.To,
	})
}

// History is ListForPatient including VOID rows, for audit views.
func (s *Service) History(ctx context.Context, patientID uuid.UUID, window Window) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ListFilter{
		PatientID:   patientID,
		From:        window.From,
		To:          window.To,
		IncludeVoid: true,
	})
}
