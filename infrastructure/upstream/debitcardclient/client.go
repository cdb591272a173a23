package debitcardclient

import (
	"context"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

// Client cobre os cartões de débito, servidos pelo mesmo serviço de contas
// mas com breaker próprio.
type Client interface {
	GetDebitCardsByCustomer(ctx context.Context, customerID string) ([]domain.DebitCard, error)
	GetDebitCardByID(ctx context.Context, cardID string) (*domain.DebitCard, error)
}

type DebitCardClient struct {
	caller *upstream.Caller
}

func NewClient(caller *upstream.Caller) Client {
	return &DebitCardClient{caller: caller}
}
