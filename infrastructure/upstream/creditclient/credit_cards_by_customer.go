package creditclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/internal/domain"
)

// GetCreditCardsByCustomer busca os cartões de crédito de um cliente.
func (c *CreditClient) GetCreditCardsByCustomer(ctx context.Context, customerID string) ([]domain.CreditCard, error) {
	var cards []domain.CreditCard

	path := fmt.Sprintf("/credit-cards/customer/%s", customerID)
	if _, err := c.caller.GetJSON(ctx, "credit-cards-by-customer", path, nil, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}
