package handler

import (
	"net/http"

	"github.com/bankcore/report-service/internal/api/handler/router"
	"github.com/bankcore/report-service/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/reports/balances/customer/:customerId",
			Method:  http.MethodGet,
			Handler: GetCustomerBalances(service),
		},
		{
			Path:    "/api/reports/balances/customer/:customerId/monthly-summary",
			Method:  http.MethodGet,
			Handler: GetMonthlyBalanceSummary(service),
		},
		{
			Path:    "/api/reports/resume/customer/:customerId",
			Method:  http.MethodGet,
			Handler: GetResumeByTypeAndDates(service),
		},
		{
			Path:    "/api/reports/movements/customer/:customerId/product/:productId",
			Method:  http.MethodGet,
			Handler: GetProductMovements(service),
		},
		{
			Path:    "/api/reports/movements/customer/:customerId/card/:cardId/recent",
			Method:  http.MethodGet,
			Handler: GetRecentCardMovements(service),
		},
		{
			Path:    "/api/reports/transactions/summary",
			Method:  http.MethodGet,
			Handler: GetTransactionSummaryByDate(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
