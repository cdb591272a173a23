package transactionclient

import (
	"context"
	"time"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

type Client interface {
	GetTransactionsByCustomerAndProduct(ctx context.Context, customerID, productID string) ([]domain.Transaction, error)
	GetTransactionsByDate(ctx context.Context, startDate, endDate time.Time) ([]domain.Transaction, error)
}

type TransactionClient struct {
	caller *upstream.Caller
}

func NewClient(caller *upstream.Caller) Client {
	return &TransactionClient{caller: caller}
}
