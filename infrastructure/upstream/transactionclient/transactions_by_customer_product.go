package transactionclient

import (
	"context"
	"fmt"

	"github.com/bankcore/report-service/internal/domain"
)

// GetTransactionsByCustomerAndProduct busca as transações de um produto de um
// cliente.
func (c *TransactionClient) GetTransactionsByCustomerAndProduct(ctx context.Context, customerID, productID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	path := fmt.Sprintf("/transactions/customer/%s/product/%s", customerID, productID)
	if _, err := c.caller.GetJSON(ctx, "transactions-by-customer-product", path, nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}
