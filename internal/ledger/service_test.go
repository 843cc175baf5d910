package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newService(repo ledger.Repository) *ledger.Service {
	svc := ledger.NewService(repo)
	svc.SetClock(func() time.Time { return fixedNow })

	return svc
}

func TestService_Append(t *testing.T) {
	patientID := uuid.New()

	type args struct {
		nt ledger.NewTransaction
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *ledger.MockRepository)
		wantErr   error
		verify    func(t *testing.T, tx *ledger.Transaction)
	}

	tests := []testCase{
		{
			name: "Charge",
			args: args{nt: ledger.NewTransaction{
				PatientID:   patientID,
				Kind:        ledger.KindCharge,
				Category:    ledger.CategoryDiagnostic,
				Amount:      80000,
				PaymentMode: ledger.PaymentCash,
				Description: " X-Ray Chest ",
			}},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, tx *ledger.Transaction) {
				assert.NotEqual(t, uuid.Nil, tx.ID)
				assert.Equal(t, ledger.StatusCompleted, tx.Status)
				assert.Equal(t, fixedNow, tx.CreatedAt)
				assert.Equal(t, "X-Ray Chest", tx.Description)
				assert.Empty(t, tx.PaymentMode, "charges never carry a payment mode")
			},
		},
		{
			name: "PaymentDefaultsCategory",
			args: args{nt: ledger.NewTransaction{
				PatientID:   patientID,
				Kind:        ledger.KindPayment,
				Amount:      50000,
				PaymentMode: ledger.PaymentUPI,
			}},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, tx *ledger.Transaction) {
				assert.Equal(t, ledger.PaymentUPI, tx.PaymentMode)
				assert.Equal(t, ledger.CategoryOther, tx.Category)
			},
		},
		{
			name:    "ZeroAmount",
			args:    args{nt: ledger.NewTransaction{PatientID: patientID, Kind: ledger.KindCharge, Amount: 0}},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			args:    args{nt: ledger.NewTransaction{PatientID: patientID, Kind: ledger.KindCharge, Amount: -10}},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "UnknownKind",
			args:    args{nt: ledger.NewTransaction{PatientID: patientID, Kind: "REFUND", Amount: 10}},
			wantErr: ledger.ErrInvalidKind,
		},
		{
			name:    "PaymentWithoutMode",
			args:    args{nt: ledger.NewTransaction{PatientID: patientID, Kind: ledger.KindPayment, Amount: 10}},
			wantErr: ledger.ErrInvalidPaymentMode,
		},
		{
			name:    "MissingPatient",
			args:    args{nt: ledger.NewTransaction{Kind: ledger.KindCharge, Amount: 10}},
			wantErr: ledger.ErrMissingPatient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := newService(repo).Append(context.Background(), tt.args.nt)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestService_TruncatesToMicroseconds(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	stored := fixedNow.Add(time.Microsecond)
	id := uuid.New()

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().VoidTransaction(gomock.Any(), id, stored).Return(&ledger.Transaction{ID: id, Status: ledger.StatusVoid}, nil)

	svc := ledger.NewService(repo)
	svc.SetClock(func() time.Time { return fixedNow.Add(1500 * time.Nanosecond) })

	tx, err := svc.Append(context.Background(), ledger.NewTransaction{
		PatientID: uuid.New(),
		Kind:      ledger.KindCharge,
		Category:  ledger.CategoryNursing,
		Amount:    20000,
	})
	require.NoError(t, err)
	assert.Equal(t, stored, tx.CreatedAt)

	_, err = svc.Void(context.Background(), id)
	require.NoError(t, err)
}

func TestService_Append_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	got, err := newService(repo).Append(context.Background(), ledger.NewTransaction{
		PatientID: uuid.New(),
		Kind:      ledger.KindCharge,
		Amount:    100,
	})

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Void(t *testing.T) {
	id := uuid.New()
	voided := &ledger.Transaction{ID: id, Status: ledger.StatusVoid}

	type testCase struct {
		name      string
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().VoidTransaction(gomock.Any(), id, fixedNow).Return(voided, nil)
			},
		},
		{
			name: "AlreadyVoidIsNoop",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().VoidTransaction(gomock.Any(), id, fixedNow).Return(nil, ledger.ErrAlreadyVoid)
				m.EXPECT().GetTransaction(gomock.Any(), id).Return(voided, nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().VoidTransaction(gomock.Any(), id, fixedNow).Return(nil, ledger.ErrNotFound)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := newService(repo).Void(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ledger.StatusVoid, got.Status)
		})
	}
}

func TestService_ListForPatient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patientID := uuid.New()
	window := ledger.Window{From: fixedNow.Add(-48 * time.Hour), To: fixedNow}

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), ledger.ListFilter{PatientID: patientID, From: window.From, To: window.To}).
		Return([]*ledger.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	got, err := newService(repo).ListForPatient(context.Background(), patientID, window)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWindow_Contains(t *testing.T) {
	w := ledger.Window{From: fixedNow, To: fixedNow.Add(time.Hour)}

	assert.True(t, w.Contains(fixedNow), "start is inclusive")
	assert.True(t, w.Contains(fixedNow.Add(59*time.Minute)))
	assert.False(t, w.Contains(fixedNow.Add(time.Hour)), "end is exclusive")
	assert.False(t, w.Contains(fixedNow.Add(-time.Nanosecond)))
}
