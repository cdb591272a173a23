package accountclient

import (
	"context"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

type Client interface {
	GetAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

type AccountClient struct {
	caller *upstream.Caller
}

func NewClient(caller *upstream.Caller) Client {
	return &AccountClient{caller: caller}
}
