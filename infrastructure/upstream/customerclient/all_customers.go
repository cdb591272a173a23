package customerclient

import (
	"context"

	"github.com/bankcore/report-service/internal/domain"
)

// GetAllCustomers busca a população completa de clientes. O serviço de
// clientes expõe a listagem na raiz da própria base URL.
func (c *CustomerClient) GetAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer

	if _, err := c.caller.GetJSON(ctx, "all-customers", "/", nil, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}
