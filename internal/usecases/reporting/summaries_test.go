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

func floatPtr(f float64) *float64 { return &f }

func TestService_GetMonthlyBalanceSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Calcula a média por produto com duas casas decimais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		day := func(d int) time.Time {
			now := time.Now()
			return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC)
		}

		m.dailyBalanceRepo.EXPECT().
			FindByCustomerAndDateRange("CUST001", gomock.Any(), gomock.Any()).
			Return([]domain.DailyBalance{
				{ProductID: "ACC001", ProductType: domain.CategoryAccount, SubType: domain.SubTypeSavings, Balance: 1000, Date: day(1)},
				{ProductID: "CR001", ProductType: domain.CategoryCredit, SubType: domain.SubTypePersonalCredit, Balance: 100, Date: day(1)},
				{ProductID: "ACC001", ProductType: domain.CategoryAccount, SubType: domain.SubTypeSavings, Balance: 1100, Date: day(2)},
				{ProductID: "CR001", ProductType: domain.CategoryCredit, SubType: domain.SubTypePersonalCredit, Balance: 100, Date: day(2)},
				{ProductID: "ACC001", ProductType: domain.CategoryAccount, SubType: domain.SubTypeSavings, Balance: 1200, Date: day(3)},
				{ProductID: "CR001", ProductType: domain.CategoryCredit, SubType: domain.SubTypePersonalCredit, Balance: 100.01, Date: day(3)},
			}, nil)

		summaries, err := service.GetMonthlyBalanceSummary(ctx, "CUST001")

		require.NoError(t, err)
		require.Len(t, summaries, 2)

		// A ordem segue a primeira aparição de cada produto nos snapshots
		assert.Equal(t, "ACC001", summaries[0].ProductID)
		assert.Equal(t, domain.CategoryAccount, summaries[0].ProductType)
		assert.Equal(t, domain.SubTypeSavings, summaries[0].SubType)
		assert.Equal(t, 1100.0, summaries[0].AverageBalance)

		// (100 + 100 + 100.01) / 3 = 100.00333... arredonda para 100.00
		assert.Equal(t, "CR001", summaries[1].ProductID)
		assert.Equal(t, 100.0, summaries[1].AverageBalance)
	})

	t.Run("Cliente sem snapshot no mês devolve lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.dailyBalanceRepo.EXPECT().
			FindByCustomerAndDateRange("CUST001", gomock.Any(), gomock.Any()).
			Return(nil, nil)

		summaries, err := service.GetMonthlyBalanceSummary(ctx, "CUST001")

		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("Erro do repositório propaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.dailyBalanceRepo.EXPECT().
			FindByCustomerAndDateRange("CUST001", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database down"))

		summaries, err := service.GetMonthlyBalanceSummary(ctx, "CUST001")

		assert.Nil(t, summaries)
		assert.Error(t, err)
	})
}

func TestService_FetchTransactionSummaryByDate(t *testing.T) {
	ctx := context.Background()
	startDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	t.Run("Agrupa comissões por categoria e cobre categorias sem movimento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.transactionClient.EXPECT().
			GetTransactionsByDate(gomock.Any(), startDate, endDate).
			Return([]domain.Transaction{
				{ID: "TX001", ProductCategory: domain.CategoryAccount, Commissions: floatPtr(1.5)},
				{ID: "TX002", ProductCategory: domain.CategoryAccount, Commissions: nil},
				{ID: "TX003", ProductCategory: domain.CategoryCredit, Commissions: floatPtr(10)},
				{ID: "TX004", ProductCategory: domain.ProductCategory("LOYALTY"), Commissions: floatPtr(99)},
			}, nil)

		summaries, err := service.FetchTransactionSummaryByDate(ctx, startDate, endDate)

		require.NoError(t, err)
		require.Len(t, summaries, 4)

		byCategory := make(map[string]domain.CategorySummary)
		for _, summary := range summaries {
			byCategory[summary.Category] = summary
		}

		assert.Equal(t, 2, byCategory["ACCOUNT"].Quantity)
		assert.Equal(t, 1.5, byCategory["ACCOUNT"].Commissions)
		assert.Equal(t, 1, byCategory["CREDIT"].Quantity)
		assert.Equal(t, 10.0, byCategory["CREDIT"].Commissions)

		// Categorias sem movimento aparecem zeradas
		assert.Equal(t, 0, byCategory["CREDIT_CARD"].Quantity)
		assert.Equal(t, 0.0, byCategory["CREDIT_CARD"].Commissions)
		assert.Equal(t, 0, byCategory["DEBIT_CARD"].Quantity)

		// Categoria desconhecida é ignorada, não cria entrada nova
		_, exists := byCategory["LOYALTY"]
		assert.False(t, exists)
	})

	t.Run("Período sem transações devolve todas as categorias zeradas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.transactionClient.EXPECT().
			GetTransactionsByDate(gomock.Any(), startDate, endDate).
			Return([]domain.Transaction{}, nil)

		summaries, err := service.FetchTransactionSummaryByDate(ctx, startDate, endDate)

		require.NoError(t, err)
		require.Len(t, summaries, 4)
		for _, summary := range summaries {
			assert.Equal(t, 0, summary.Quantity)
			assert.Equal(t, 0.0, summary.Commissions)
		}
	})
}
