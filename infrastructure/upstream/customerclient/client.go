package customerclient

import (
	"context"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

type Client interface {
	GetAllCustomers(ctx context.Context) ([]domain.Customer, error)
}

type CustomerClient struct {
	caller *upstream.Caller
}

func NewClient(caller *upstream.Caller) Client {
	return &CustomerClient{caller: caller}
}
