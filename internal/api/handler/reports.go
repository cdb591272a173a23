package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bankcore/report-service/internal/usecases/reporting"
	"github.com/bankcore/report-service/pkg/apiErrors"
	"github.com/bankcore/report-service/pkg/log"
	"github.com/bankcore/report-service/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// GetCustomerBalances retorna os saldos consolidados de todos os produtos do cliente
func GetCustomerBalances(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customerId")
		logger.WithField("customer_id", customerID).Info("reports: fetching customer balances")

		balances, err := service.GetCustomerBalances(r.Context(), customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to get customer balances")

			apiErrors.WriteFromError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"products":    len(balances.Products),
		}).Info("reports: customer balances retrieved")

		writeData(w, logger, balances)
	})
}

// GetResumeByTypeAndDates retorna os saldos do cliente filtrados por tipo de produto e período
func GetResumeByTypeAndDates(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customerId")
		typeProduct := r.URL.Query().Get("typeProduct")

		startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"))
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"start_date":  r.URL.Query().Get("startDate"),
				"error":       err.Error(),
			}).Warn("reports: invalid startDate parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro startDate inválido, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"))
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"end_date":    r.URL.Query().Get("endDate"),
				"error":       err.Error(),
			}).Warn("reports: invalid endDate parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro endDate inválido, use YYYY-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id":  customerID,
			"type_product": typeProduct,
		}).Info("reports: fetching customer resume")

		resume, err := service.GetResumeByTypeAndDates(r.Context(), typeProduct, customerID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id":  customerID,
				"type_product": typeProduct,
				"error":        err.Error(),
			}).Error("reports: failed to get customer resume")

			apiErrors.WriteFromError(w, err)
			return
		}

		writeData(w, logger, resume)
	})
}

// GetProductMovements retorna as movimentações de um produto específico do cliente
func GetProductMovements(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("customerId")
		productID := params.ByName("productId")

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"product_id":  productID,
		}).Info("reports: fetching product movements")

		movements, err := service.GetProductMovements(r.Context(), customerID, productID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"product_id":  productID,
				"error":       err.Error(),
			}).Error("reports: failed to get product movements")

			apiErrors.WriteFromError(w, err)
			return
		}

		writeData(w, logger, movements)
	})
}

// GetRecentCardMovements retorna as movimentações mais recentes de um cartão de débito
func GetRecentCardMovements(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("customerId")
		cardID := params.ByName("cardId")

		limit := 0
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil {
				logger.WithFields(log.Fields{
					"customer_id": customerID,
					"card_id":     cardID,
					"limit":       rawLimit,
				}).Warn("reports: invalid limit parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um número inteiro", nil)
				return
			}
			limit = parsed
		}

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"card_id":     cardID,
			"limit":       limit,
		}).Info("reports: fetching recent card movements")

		movements, err := service.GetRecentCardMovements(r.Context(), customerID, cardID, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"card_id":     cardID,
				"error":       err.Error(),
			}).Error("reports: failed to get recent card movements")

			apiErrors.WriteFromError(w, err)
			return
		}

		writeData(w, logger, movements)
	})
}

// GetMonthlyBalanceSummary retorna a média de saldos diários do mês corrente por produto
func GetMonthlyBalanceSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customerId")
		logger.WithField("customer_id", customerID).Info("reports: fetching monthly balance summary")

		summaries, err := service.GetMonthlyBalanceSummary(r.Context(), customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to get monthly balance summary")

			apiErrors.WriteFromError(w, err)
			return
		}

		writeData(w, logger, summaries)
	})
}

// GetTransactionSummaryByDate retorna o total de comissões por categoria de produto no período
func GetTransactionSummaryByDate(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"))
		if err != nil || startDate == nil {
			logger.WithField("start_date", r.URL.Query().Get("startDate")).
				Warn("reports: invalid or missing startDate parameter")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro startDate é obrigatório no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"))
		if err != nil || endDate == nil {
			logger.WithField("end_date", r.URL.Query().Get("endDate")).
				Warn("reports: invalid or missing endDate parameter")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro endDate é obrigatório no formato YYYY-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("reports: fetching transaction summary by date")

		summary, err := service.FetchTransactionSummaryByDate(r.Context(), *startDate, *endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startDate.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to get transaction summary")

			apiErrors.WriteFromError(w, err)
			return
		}

		writeData(w, logger, summary)
	})
}
