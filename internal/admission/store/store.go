package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/database"
)

const uniqueViolation = "23505"

// Partial unique indexes from schema.sql.
const (
	activeBedIndex     = "idx_admissions_active_bed"
	activePatientIndex = "idx_admissions_active_patient"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `
	id, patient_id, bed_id, status, admitted_at, discharged_at,
	total_charges, total_paid, balance_due, reconciled_at
`

func scanAdmission(s scanner) (*admission.Admission, error) {
	var (
		a      admission.Admission
		status string
	)

	if err := s.Scan(
		&a.ID, &a.PatientID, &a.BedID, &status, &a.AdmittedAt, &a.DischargedAt,
		&a.TotalCharges, &a.TotalPaid, &a.BalanceDue, &a.ReconciledAt,
	); err != nil {
		return nil, err
	}

	a.Status = admission.Status(status)

	return &a, nil
}

func (s *Store) CreateAdmission(ctx context.Context, a *admission.Admission) error {
	query := `
		INSERT INTO admissions (id, patient_id, bed_id, status, admitted_at, total_charges, total_paid, balance_due)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := database.Conn(ctx, s.db).ExecContext(ctx, query,
		a.ID,
		a.PatientID,
		a.BedID,
		a.Status,
		a.AdmittedAt,
		a.TotalCharges,
		a.TotalPaid,
		a.BalanceDue,
	)
	if err != nil {
		return mapInsertError(err)
	}

	return nil
}

// mapInsertError turns violations of the one-active-admission indexes into
// domain errors. They only fire when two admits race past the earlier checks.
func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case activeBedIndex:
			return bed.ErrBedUnavailable
		case activePatientIndex:
			return admission.ErrPatientAlreadyAdmitted
		}
	}

	return fmt.Errorf("creating admission: %w", err)
}

func (s *Store) GetAdmission(ctx context.Context, id uuid.UUID) (*admission.Admission, error) {
	return s.get(ctx, `SELECT `+selectColumns+` FROM admissions WHERE id = $1`, id)
}

func (s *Store) LockAdmission(ctx context.Context, id uuid.UUID) (*admission.Admission, error) {
	return s.get(ctx, `SELECT `+selectColumns+` FROM admissions WHERE id = $1 FOR UPDATE`, id)
}

func (s *Store) get(ctx context.Context, query string, id uuid.UUID) (*admission.Admission, error) {
	a, err := scanAdmission(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admission.ErrNotFound
		}

		return nil, fmt.Errorf("getting admission: %w", err)
	}

	return a, nil
}

func (s *Store) MarkDischarged(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE admissions
		SET status = $2, discharged_at = $3
		WHERE id = $1 AND status = $4
	`

	res, err := database.Conn(ctx, s.db).ExecContext(ctx, query,
		id, admission.StatusDischarged, at, admission.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("discharging admission: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("discharging admission: %w", err)
	}

	if n == 0 {
		return admission.ErrAlreadyDischarged
	}

	return nil
}

func (s *Store) SaveSnapshot(ctx context.Context, id uuid.UUID, sum billing.Summary, at time.Time) error {
	query := `
		UPDATE admissions
		SET total_charges = $2, total_paid = $3, balance_due = $4, reconciled_at = $5
		WHERE id = $1
	`

	res, err := database.Conn(ctx, s.db).ExecContext(ctx, query,
		id, sum.TotalCharges, sum.TotalPaid, sum.BalanceDue, at,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if n == 0 {
		return admission.ErrNotFound
	}

	return nil
}

func (s *Store) ListAdmissions(ctx context.Context, filter admission.ListFilter) ([]*admission.Admission, error) {
	query := `SELECT ` + selectColumns + ` FROM admissions WHERE 1=1`

	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if filter.PatientID != uuid.Nil {
		args = append(args, filter.PatientID)
		query += fmt.Sprintf(" AND patient_id = $%d", len(args))
	}

	query += " ORDER BY admitted_at DESC"

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing admissions: %w", err)
	}
	defer rows.Close()

	var out []*admission.Admission

	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning admission: %w", err)
		}

		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating admissions: %w", err)
	}

	return out, nil
}

func (s *Store) HasActiveAdmission(ctx context.Context, patientID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM admissions WHERE patient_id = $1 AND status = $2)`

	var exists bool
	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query, patientID, admission.StatusActive).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking active admission: %w", err)
	}

	return exists, nil
}
