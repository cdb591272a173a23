package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bankcore/report-service/internal/domain"
	"github.com/bankcore/report-service/pkg/utils"
)

// GetMonthlyBalanceSummary calcula a média de saldo por produto sobre os
// snapshots do mês corrente. Cliente sem snapshot resulta em lista vazia.
func (s *Service) GetMonthlyBalanceSummary(ctx context.Context, customerID string) ([]domain.DailyBalanceSummary, error) {
	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"from":        firstDayOfMonth.Format(time.DateOnly),
		"to":          now.Format(time.DateOnly),
	}).Info("Buscando snapshots de saldo do mês para o cliente")

	balances, err := s.dailyBalanceRepo.FindByCustomerAndDateRange(customerID, firstDayOfMonth, now)
	if err != nil {
		return nil, err
	}

	return averageByProduct(balances), nil
}

// averageByProduct agrupa snapshots por produto e calcula a média com duas
// casas decimais, arredondamento half-up. Tipo e subtipo saem do primeiro
// registro de cada grupo; a ordem interna do grupo não altera o resultado.
func averageByProduct(balances []domain.DailyBalance) []domain.DailyBalanceSummary {
	summaries := make([]domain.DailyBalanceSummary, 0)
	if len(balances) == 0 {
		return summaries
	}

	type group struct {
		first domain.DailyBalance
		total float64
		count int
	}

	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, balance := range balances {
		g, exists := groups[balance.ProductID]
		if !exists {
			g = &group{first: balance}
			groups[balance.ProductID] = g
			order = append(order, balance.ProductID)
		}
		g.total += balance.Balance
		g.count++
	}

	for _, productID := range order {
		g := groups[productID]
		summaries = append(summaries, domain.DailyBalanceSummary{
			ProductID:      productID,
			ProductType:    g.first.ProductType,
			SubType:        g.first.SubType,
			AverageBalance: utils.RoundWithTwoDecimalPlace(g.total / float64(g.count)),
		})
	}

	return summaries
}

// FetchTransactionSummaryByDate agrupa as transações do período em todas as
// categorias conhecidas. Categoria sem movimento aparece com quantidade zero
// e comissão zero.
func (s *Service) FetchTransactionSummaryByDate(ctx context.Context, startDate, endDate time.Time) ([]domain.CategorySummary, error) {
	transactions, err := s.transactionClient.GetTransactionsByDate(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	categories := domain.ProductCategories()
	quantities := make(map[domain.ProductCategory]int, len(categories))
	commissions := make(map[domain.ProductCategory]float64, len(categories))
	for _, category := range categories {
		quantities[category] = 0
		commissions[category] = 0
	}

	for _, transaction := range transactions {
		if _, known := quantities[transaction.ProductCategory]; !known {
			logrus.WithFields(logrus.Fields{
				"transaction_id": transaction.ID,
				"category":       string(transaction.ProductCategory),
			}).Warn("Transação com categoria desconhecida ignorada no resumo")
			continue
		}

		quantities[transaction.ProductCategory]++
		if transaction.Commissions != nil {
			commissions[transaction.ProductCategory] += *transaction.Commissions
		}
	}

	summaries := make([]domain.CategorySummary, 0, len(categories))
	for _, category := range categories {
		summaries = append(summaries, domain.CategorySummary{
			Category:    string(category),
			Quantity:    quantities[category],
			Commissions: commissions[category],
		})
	}

	return summaries, nil
}
