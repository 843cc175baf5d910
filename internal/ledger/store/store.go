package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/database"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a ledger row from the scanner.
// Expected column order: id, patient_id, kind, category, amount, payment_mode, status, description, created_at, voided_at
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var kind, status string

	var mode sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.PatientID, &kind, &tx.Category, &tx.Amount, &mode, &status,
		&tx.Description, &tx.CreatedAt, &tx.VoidedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = ledger.Kind(kind)
	tx.Status = ledger.Status(status)
	tx.PaymentMode = ledger.PaymentMode(mode.String)

	return &tx, nil
}

const selectColumns = `
	id, patient_id, kind, category, amount, payment_mode, status, description, created_at, voided_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	query := `
		INSERT INTO ledger_transactions (id, patient_id, kind, category, amount, payment_mode, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var mode sql.NullString
	if tx.PaymentMode != "" {
		mode = sql.NullString{String: string(tx.PaymentMode), Valid: true}
	}

	_, err := database.Conn(ctx, s.db).ExecContext(ctx, query,
		tx.ID,
		tx.PatientID,
		tx.Kind,
		tx.Category,
		tx.Amount,
		mode,
		tx.Status,
		tx.Description,
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM ledger_transactions WHERE id = $1`

	tx, err := scanTransaction(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

// VoidTransaction uses a conditional UPDATE so that of two concurrent voids
// exactly one flips the row; the other observes ErrAlreadyVoid.
func (s *Store) VoidTransaction(ctx context.Context, id uuid.UUID, at time.Time) (*ledger.Transaction, error) {
	query := `
		UPDATE ledger_transactions
		SET status = $2, voided_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + selectColumns

	conn := database.Conn(ctx, s.db)

	tx, err := scanTransaction(conn.QueryRowContext(ctx, query, id, ledger.StatusVoid, at, ledger.StatusCompleted))
	if err == nil {
		return tx, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("voiding transaction: %w", err)
	}

	var exists bool
	if err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_transactions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking transaction: %w", err)
	}

	if !exists {
		return nil, ledger.ErrNotFound
	}

	return nil, ledger.ErrAlreadyVoid
}

func (s *Store) ListTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectColumns + `
		FROM ledger_transactions
		WHERE patient_id = $1 AND created_at >= $2 AND created_at < $3`

	args := []any{filter.PatientID, filter.From, filter.To}

	if !filter.IncludeVoid {
		query += " AND status = $4"

		args = append(args, ledger.StatusCompleted)
	}

	query += " ORDER BY created_at ASC, id ASC"

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}
