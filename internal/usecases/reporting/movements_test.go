package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bankcore/report-service/internal/domain"
)

func TestService_GetProductMovements(t *testing.T) {
	ctx := context.Background()

	t.Run("Mapeia transações na ordem devolvida pelo upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.transactionClient.EXPECT().
			GetTransactionsByCustomerAndProduct(gomock.Any(), "CUST001", "ACC001").
			Return([]domain.Transaction{
				{
					ID:              "TX001",
					TransactionType: domain.TransactionTypeDeposit,
					Amount:          100,
					TransactionDate: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
					ProductCategory: domain.CategoryAccount,
					ProductSubType:  domain.SubTypeSavings,
				},
				{
					ID:              "TX002",
					TransactionType: domain.TransactionTypeWithdrawal,
					Amount:          -40,
					TransactionDate: time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC),
					ProductCategory: domain.CategoryAccount,
					ProductSubType:  domain.SubTypeSavings,
				},
			}, nil)

		movements, err := service.GetProductMovements(ctx, "CUST001", "ACC001")

		require.NoError(t, err)
		require.Len(t, movements, 2)
		assert.Equal(t, "TX001", movements[0].TransactionID)
		assert.Equal(t, domain.TransactionTypeDeposit, movements[0].Type)
		assert.Equal(t, "TX002", movements[1].TransactionID)
		assert.Equal(t, -40.0, movements[1].Amount)
	})

	t.Run("Erro do upstream propaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.transactionClient.EXPECT().
			GetTransactionsByCustomerAndProduct(gomock.Any(), "CUST001", "ACC001").
			Return(nil, errors.New("transaction-service down"))

		movements, err := service.GetProductMovements(ctx, "CUST001", "ACC001")

		assert.Nil(t, movements)
		assert.Error(t, err)
	})
}

func TestService_GetRecentCardMovements(t *testing.T) {
	ctx := context.Background()

	transactions := []domain.Transaction{
		{ID: "TX-OLD", TransactionDate: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "TX-NEW", TransactionDate: time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)},
		{ID: "TX-MID", TransactionDate: time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{
			name:     "Ordena por data decrescente e trunca no limite",
			limit:    2,
			expected: []string{"TX-NEW", "TX-MID"},
		},
		{
			name:     "Limite maior que o total devolve tudo ordenado",
			limit:    10,
			expected: []string{"TX-NEW", "TX-MID", "TX-OLD"},
		},
		{
			name:     "Limite zero devolve lista vazia",
			limit:    0,
			expected: []string{},
		},
		{
			name:     "Limite negativo é tratado como zero",
			limit:    -3,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)

			m.transactionClient.EXPECT().
				GetTransactionsByCustomerAndProduct(gomock.Any(), "CUST001", "DC001").
				Return(transactions, nil)

			movements, err := service.GetRecentCardMovements(ctx, "CUST001", "DC001", tt.limit)

			require.NoError(t, err)
			require.Len(t, movements, len(tt.expected))
			for i, id := range tt.expected {
				assert.Equal(t, id, movements[i].TransactionID)
			}
		})
	}
}
