package reporting

import (
	"context"
	"sort"

	"github.com/bankcore/report-service/internal/domain"
)

// GetProductMovements lista as transações de um produto do cliente como
// movimentos, na ordem em que o upstream devolveu.
func (s *Service) GetProductMovements(ctx context.Context, customerID, productID string) ([]domain.ProductMovement, error) {
	transactions, err := s.transactionClient.GetTransactionsByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return nil, err
	}

	return mapMovements(transactions), nil
}

// GetRecentCardMovements devolve os movimentos mais recentes de um cartão,
// ordenados por data decrescente e truncados em limit. limit zero resulta em
// lista vazia.
func (s *Service) GetRecentCardMovements(ctx context.Context, customerID, cardID string, limit int) ([]domain.ProductMovement, error) {
	transactions, err := s.transactionClient.GetTransactionsByCustomerAndProduct(ctx, customerID, cardID)
	if err != nil {
		return nil, err
	}

	movements := mapMovements(transactions)
	sort.Slice(movements, func(i, j int) bool {
		return movements[i].Date.After(movements[j].Date)
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(movements) {
		movements = movements[:limit]
	}

	return movements, nil
}

func mapMovements(transactions []domain.Transaction) []domain.ProductMovement {
	movements := make([]domain.ProductMovement, 0, len(transactions))
	for _, transaction := range transactions {
		movements = append(movements, domain.ProductMovement{
			TransactionID:   transaction.ID,
			Date:            transaction.TransactionDate,
			Amount:          transaction.Amount,
			Type:            transaction.TransactionType,
			ProductCategory: transaction.ProductCategory,
			ProductSubType:  transaction.ProductSubType,
		})
	}
	return movements
}
