package reporting

import (
	"context"
	"time"

	"github.com/bankcore/report-service/internal/domain"
)

// Reporter é o contrato do motor de agregação exposto para a camada HTTP.
type Reporter interface {
	GetCustomerBalances(ctx context.Context, customerID string) (*domain.CustomerBalances, error)
	GetResumeByTypeAndDates(ctx context.Context, typeProduct, customerID string, startDate, endDate *time.Time) (*domain.CustomerBalances, error)
	GetProductMovements(ctx context.Context, customerID, productID string) ([]domain.ProductMovement, error)
	GetRecentCardMovements(ctx context.Context, customerID, cardID string, limit int) ([]domain.ProductMovement, error)
	GetMonthlyBalanceSummary(ctx context.Context, customerID string) ([]domain.DailyBalanceSummary, error)
	FetchTransactionSummaryByDate(ctx context.Context, startDate, endDate time.Time) ([]domain.CategorySummary, error)
}
