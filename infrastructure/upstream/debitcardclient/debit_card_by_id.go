package debitcardclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

// GetDebitCardByID busca um cartão de débito pelo ID.
func (c *DebitCardClient) GetDebitCardByID(ctx context.Context, cardID string) (*domain.DebitCard, error) {
	var card domain.DebitCard

	path := fmt.Sprintf("/debit-cards/%s", cardID)
	found, err := c.caller.GetJSON(ctx, "debit-card-by-id", path, nil, &card)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &upstream.NotFoundError{
			Upstream:  c.caller.Name(),
			Operation: "debit-card-by-id",
			Key:       cardID,
		}
	}

	return &card, nil
}
