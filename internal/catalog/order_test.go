package catalog_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

func TestOrderer_Order(t *testing.T) {
	patientID := uuid.New()

	priced := catalog.New([]catalog.Item{
		{Name: "X-Ray Chest", Category: ledger.CategoryDiagnostic, UnitPrice: 80000},
		{Name: "Stale Item", Category: ledger.CategoryOther, UnitPrice: 0},
	})

	echo := func(_ context.Context, nt ledger.NewTransaction) (*ledger.Transaction, error) {
		return &ledger.Transaction{
			ID:          uuid.New(),
			PatientID:   nt.PatientID,
			Kind:        nt.Kind,
			Category:    nt.Category,
			Amount:      nt.Amount,
			Description: nt.Description,
			Status:      ledger.StatusCompleted,
		}, nil
	}

	type testCase struct {
		name      string
		req       catalog.OrderRequest
		setupMock func(m *catalog.MockAppender)
		wantErr   error
		verify    func(t *testing.T, tx *ledger.Transaction)
	}

	tests := []testCase{
		{
			name: "CatalogItem",
			req:  catalog.OrderRequest{ServiceName: "x-ray chest", Quantity: 1},
			setupMock: func(m *catalog.MockAppender) {
				m.EXPECT().Append(gomock.Any(), ledger.NewTransaction{
					PatientID:   patientID,
					Kind:        ledger.KindCharge,
					Category:    ledger.CategoryDiagnostic,
					Amount:      80000,
					Description: "X-Ray Chest",
				}).DoAndReturn(echo)
			},
			verify: func(t *testing.T, tx *ledger.Transaction) {
				assert.Equal(t, int64(80000), tx.Amount)
				assert.Equal(t, ledger.KindCharge, tx.Kind)
			},
		},
		{
			name: "QuantityMultipliesPrice",
			req:  catalog.OrderRequest{ServiceName: "X-Ray Chest", Quantity: 3, Category: "radiology"},
			setupMock: func(m *catalog.MockAppender) {
				m.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(echo)
			},
			verify: func(t *testing.T, tx *ledger.Transaction) {
				assert.Equal(t, int64(240000), tx.Amount)
				assert.Equal(t, "radiology", tx.Category)
				assert.Equal(t, "X-Ray Chest x3 @ 800.00", tx.Description)
			},
		},
		{
			name: "CallerPriceOverridesCatalog",
			req:  catalog.OrderRequest{ServiceName: "X-Ray Chest", UnitPrice: 70000, Quantity: 1},
			setupMock: func(m *catalog.MockAppender) {
				m.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(echo)
			},
			verify: func(t *testing.T, tx *ledger.Transaction) {
				assert.Equal(t, int64(70000), tx.Amount)
			},
		},
		{
			name: "CustomItem",
			req:  catalog.OrderRequest{CustomName: " Special diet ", UnitPrice: 12000, Quantity: 2},
			setupMock: func(m *catalog.MockAppender) {
				m.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(echo)
			},
			verify: func(t *testing.T, tx *ledger.Transaction) {
				assert.Equal(t, int64(24000), tx.Amount)
				assert.Empty(t, tx.Category, "ledger assigns the default category")
				assert.Equal(t, "Special diet x2 @ 120.00", tx.Description)
			},
		},
		{
			name:    "CustomItemWithoutPrice",
			req:     catalog.OrderRequest{CustomName: "Special diet", Quantity: 1},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "StaleCatalogPrice",
			req:     catalog.OrderRequest{ServiceName: "Stale Item", Quantity: 1},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "NegativePrice",
			req:     catalog.OrderRequest{ServiceName: "X-Ray Chest", UnitPrice: -5, Quantity: 1},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "Overflow",
			req:     catalog.OrderRequest{CustomName: "Huge", UnitPrice: math.MaxInt64 / 2, Quantity: 3},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "ZeroQuantity",
			req:     catalog.OrderRequest{ServiceName: "X-Ray Chest", Quantity: 0},
			wantErr: catalog.ErrInvalidQuantity,
		},
		{
			name:    "UnknownService",
			req:     catalog.OrderRequest{ServiceName: "MRI Knee", Quantity: 1},
			wantErr: catalog.ErrNotFound,
		},
		{
			name:    "NoName",
			req:     catalog.OrderRequest{UnitPrice: 100, Quantity: 1},
			wantErr: catalog.ErrMissingService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			appender := catalog.NewMockAppender(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(appender)
			}

			o := catalog.NewOrderer(priced, appender)

			tx, err := o.Order(context.Background(), patientID, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			if tt.verify != nil {
				tt.verify(t, tx)
			}
		})
	}
}

func TestOrderer_Order_AppendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	appender := catalog.NewMockAppender(ctrl)
	appender.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	o := catalog.NewOrderer(catalog.Default(), appender)

	_, err := o.Order(context.Background(), uuid.New(), catalog.OrderRequest{ServiceName: "ECG", Quantity: 1})
	require.EqualError(t, err, "db down")
}
