package accountclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

// GetAccountByID busca uma conta pelo ID. Envelope sem data é ausência de
// conta, não resultado vazio.
func (c *AccountClient) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var account domain.Account

	path := fmt.Sprintf("/accounts/%s", accountID)
	found, err := c.caller.GetJSON(ctx, "account-by-id", path, nil, &account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &upstream.NotFoundError{
			Upstream:  c.caller.Name(),
			Operation: "account-by-id",
			Key:       accountID,
		}
	}

	return &account, nil
}
