package creditclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/internal/domain"
)

// GetCreditsByCustomer busca os créditos de um cliente.
func (c *CreditClient) GetCreditsByCustomer(ctx context.Context, customerID string) ([]domain.Credit, error) {
	var credits []domain.Credit

	path := fmt.Sprintf("/credits/customer/%s", customerID)
	if _, err := c.caller.GetJSON(ctx, "credits-by-customer", path, nil, &credits); err != nil {
		return nil, err
	}

	return credits, nil
}
