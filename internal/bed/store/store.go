package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/database"
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

const selectColumns = `id, label, ward, status, patient_id, daily_rate, updated_at`

func scanBed(s scanner) (*bed.Bed, error) {
	var (
		b         bed.Bed
		status    string
		patientID uuid.NullUUID
	)

	if err := s.Scan(&b.ID, &b.Label, &b.Ward, &status, &patientID, &b.DailyRate, &b.UpdatedAt); err != nil {
		return nil, err
	}

	b.Status = bed.Status(status)

	if patientID.Valid {
		b.PatientID = &patientID.UUID
	}

	return &b, nil
}

func (s *Store) CreateBed(ctx context.Context, b *bed.Bed) error {
	query := `
		INSERT INTO beds (id, label, ward, status, daily_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING updated_at
	`

	err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		b.ID, b.Label, b.Ward, b.Status, b.DailyRate,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating bed: %w", err)
	}

	return nil
}

func (s *Store) GetBed(ctx context.Context, id uuid.UUID) (*bed.Bed, error) {
	query := `SELECT ` + selectColumns + ` FROM beds WHERE id = $1`

	b, err := scanBed(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bed.ErrNotFound
		}

		return nil, fmt.Errorf("getting bed: %w", err)
	}

	return b, nil
}

func (s *Store) ListBeds(ctx context.Context, status bed.Status) ([]*bed.Bed, error) {
	query := `SELECT ` + selectColumns + ` FROM beds`

	var args []any

	if status != "" {
		query += " WHERE status = $1"

		args = append(args, status)
	}

	query += " ORDER BY ward ASC, label ASC"

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing beds: %w", err)
	}
	defer rows.Close()

	var beds []*bed.Bed

	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bed: %w", err)
		}

		beds = append(beds, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating beds: %w", err)
	}

	return beds, nil
}

// ReserveBed only matches AVAILABLE rows, so two concurrent reservations of
// the same bed cannot both succeed.
func (s *Store) ReserveBed(ctx context.Context, id, patientID uuid.UUID) error {
	query := `
		UPDATE beds
		SET status = $2, patient_id = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
	`

	conn := database.Conn(ctx, s.db)

	res, err := conn.ExecContext(ctx, query, id, bed.StatusOccupied, patientID, bed.StatusAvailable)
	if err != nil {
		return fmt.Errorf("reserving bed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserving bed: %w", err)
	}

	if n == 1 {
		return nil
	}

	var exists bool
	if err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM beds WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking bed: %w", err)
	}

	if !exists {
		return bed.ErrNotFound
	}

	return bed.ErrBedUnavailable
}

func (s *Store) ReleaseBed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE beds
		SET status = $2, patient_id = NULL, updated_at = NOW()
		WHERE id = $1
	`

	res, err := database.Conn(ctx, s.db).ExecContext(ctx, query, id, bed.StatusAvailable)
	if err != nil {
		return fmt.Errorf("releasing bed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("releasing bed: %w", err)
	}

	if n == 0 {
		return bed.ErrNotFound
	}

	return nil
}
