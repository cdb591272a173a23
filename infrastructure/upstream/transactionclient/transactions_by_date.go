package transactionclient

import (
	"context"
	"net/url"
	"time"

	"github.com/bankcore/report-service/internal/domain"
)

// GetTransactionsByDate busca as transações de todos os clientes dentro do
// intervalo de datas.
func (c *TransactionClient) GetTransactionsByDate(ctx context.Context, startDate, endDate time.Time) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	query := url.Values{}
	query.Set("startDate", startDate.Format(time.DateOnly))
	query.Set("endDate", endDate.Format(time.DateOnly))

	if _, err := c.caller.GetJSON(ctx, "transactions-by-date", "/transactions/by-date", query, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}
