package creditclient

import (
	"context"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

// Client cobre o serviço de créditos, que também é dono dos cartões de
// crédito.
type Client interface {
	GetCreditsByCustomer(ctx context.Context, customerID string) ([]domain.Credit, error)
	GetCreditCardsByCustomer(ctx context.Context, customerID string) ([]domain.CreditCard, error)
}

type CreditClient struct {
	caller *upstream.Caller
}

func NewClient(caller *upstream.Caller) Client {
	return &CreditClient{caller: caller}
}
