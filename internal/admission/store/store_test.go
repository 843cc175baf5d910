package store_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/admission/store"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
)

var columns = []string{
	"id", "patient_id", "bed_id", "status", "admitted_at", "discharged_at",
	"total_charges", "total_paid", "balance_due", "reconciled_at",
}

var admittedAt = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *store.Store) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, store.New(db)
}

func newAdmission() *admission.Admission {
	return &admission.Admission{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		BedID:      uuid.New(),
		Status:     admission.StatusActive,
		AdmittedAt: admittedAt,
	}
}

func TestStore_CreateAdmission(t *testing.T) {
	type testCase struct {
		name    string
		execErr error
		wantErr error
	}

	tests := []testCase{
		{name: "Success"},
		{
			name:    "BedTakenConcurrently",
			execErr: &pgconn.PgError{Code: "23505", ConstraintName: "idx_admissions_active_bed"},
			wantErr: bed.ErrBedUnavailable,
		},
		{
			name:    "PatientAdmittedConcurrently",
			execErr: &pgconn.PgError{Code: "23505", ConstraintName: "idx_admissions_active_patient"},
			wantErr: admission.ErrPatientAlreadyAdmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, s := setupMockDB(t)
			defer db.Close()

			a := newAdmission()

			exp := mock.ExpectExec(`INSERT INTO admissions`).
				WithArgs(a.ID, a.PatientID, a.BedID, admission.StatusActive, admittedAt, int64(0), int64(0), int64(0))

			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := s.CreateAdmission(context.Background(), a)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_CreateAdmission_OtherError(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO admissions`).WillReturnError(errors.New("connection reset"))

	err := s.CreateAdmission(context.Background(), newAdmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating admission")
}

func TestStore_LockAdmission(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	a := newAdmission()
	reconciled := admittedAt.Add(time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM admissions WHERE id = \$1 FOR UPDATE`).
		WithArgs(a.ID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			a.ID.String(), a.PatientID.String(), a.BedID.String(), "ACTIVE", admittedAt, nil,
			int64(80000), int64(50000), int64(30000), reconciled,
		))

	got, err := s.LockAdmission(context.Background(), a.ID)
	require.NoError(t, err)

	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, admission.StatusActive, got.Status)
	assert.Nil(t, got.DischargedAt)
	assert.Equal(t, int64(30000), got.BalanceDue)
	require.NotNil(t, got.ReconciledAt)
	assert.Equal(t, reconciled, *got.ReconciledAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetAdmission_NotFound(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM admissions WHERE id = \$1$`).WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := s.GetAdmission(context.Background(), id)
	assert.ErrorIs(t, err, admission.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkDischarged(t *testing.T) {
	id := uuid.New()
	at := admittedAt.Add(72 * time.Hour)

	t.Run("Discharged", func(t *testing.T) {
		db, mock, s := setupMockDB(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE admissions\s+SET status = \$2, discharged_at = \$3`).
			WithArgs(id, admission.StatusDischarged, at, admission.StatusActive).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.MarkDischarged(context.Background(), id, at))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyDischarged", func(t *testing.T) {
		db, mock, s := setupMockDB(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE admissions`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.MarkDischarged(context.Background(), id, at), admission.ErrAlreadyDischarged)
	})
}

func TestStore_SaveSnapshot(t *testing.T) {
	id := uuid.New()
	at := admittedAt.Add(time.Hour)
	sum := billing.Summary{TotalCharges: 80000, TotalPaid: 130000, BalanceDue: -50000}

	t.Run("Saved", func(t *testing.T) {
		db, mock, s := setupMockDB(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE admissions\s+SET total_charges = \$2`).
			WithArgs(id, int64(80000), int64(130000), int64(-50000), at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.SaveSnapshot(context.Background(), id, sum, at))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock, s := setupMockDB(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE admissions`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.SaveSnapshot(context.Background(), id, sum, at), admission.ErrNotFound)
	})
}

func TestStore_ListAdmissions(t *testing.T) {
	patientID := uuid.New()
	discharged := admittedAt.Add(48 * time.Hour)

	tests := []struct {
		name   string
		filter admission.ListFilter
		query  string
		args   []driver.Value
	}{
		{
			name:  "All",
			query: `FROM admissions WHERE 1=1 ORDER BY admitted_at DESC`,
		},
		{
			name:   "ByStatus",
			filter: admission.ListFilter{Status: admission.StatusDischarged},
			query:  `WHERE 1=1 AND status = \$1 ORDER BY`,
			args:   []driver.Value{admission.StatusDischarged},
		},
		{
			name:   "ByStatusAndPatient",
			filter: admission.ListFilter{Status: admission.StatusDischarged, PatientID: patientID},
			query:  `AND status = \$1 AND patient_id = \$2`,
			args:   []driver.Value{admission.StatusDischarged, patientID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, s := setupMockDB(t)
			defer db.Close()

			exp := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}

			exp.WillReturnRows(sqlmock.NewRows(columns).AddRow(
				uuid.NewString(), patientID.String(), uuid.NewString(), "DISCHARGED", admittedAt, discharged,
				int64(100), int64(100), int64(0), discharged,
			))

			got, err := s.ListAdmissions(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, admission.StatusDischarged, got[0].Status)
			require.NotNil(t, got[0].DischargedAt)
			assert.Equal(t, discharged, *got[0].DischargedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_HasActiveAdmission(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	patientID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM admissions WHERE patient_id = \$1 AND status = \$2\)`).
		WithArgs(patientID, admission.StatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := s.HasActiveAdmission(context.Background(), patientID)
	require.NoError(t, err)
	assert.True(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
