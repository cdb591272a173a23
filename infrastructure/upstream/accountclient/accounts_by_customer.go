package accountclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/internal/domain"
)

// GetAccountsByCustomer busca todas as contas de um cliente.
func (c *AccountClient) GetAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	var accounts []domain.Account

	path := fmt.Sprintf("/accounts/customer/%s", customerID)
	if _, err := c.caller.GetJSON(ctx, "accounts-by-customer", path, nil, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}
