package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/database"
	"github.com/MrJamesThe3rd/ipdledger/internal/patient"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool

	err := database.Conn(ctx, s.db).
		QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking patient: %w", err)
	}

	return exists, nil
}

// Search returns up to limit patients whose name contains term, for pickers.
func (s *Store) Search(ctx context.Context, term string, limit int) ([]*patient.Patient, error) {
	query := `
		SELECT id, full_name, created_at
		FROM patients
		WHERE full_name ILIKE '%' || $1 || '%'
		ORDER BY full_name ASC
		LIMIT $2
	`

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("searching patients: %w", err)
	}
	defer rows.Close()

	var patients []*patient.Patient

	for rows.Next() {
		var p patient.Patient
		if err := rows.Scan(&p.ID, &p.FullName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning patient: %w", err)
		}

		patients = append(patients, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating patients: %w", err)
	}

	return patients, nil
}
