package debitcardclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/internal/domain"
)

// GetDebitCardsByCustomer busca os cartões de débito de um cliente.
func (c *DebitCardClient) GetDebitCardsByCustomer(ctx context.Context, customerID string) ([]domain.DebitCard, error) {
	var cards []domain.DebitCard

	path := fmt.Sprintf("/debit-cards/customer/%s", customerID)
	if _, err := c.caller.GetJSON(ctx, "debit-cards-by-customer", path, nil, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}
