package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bankcore/report-service/internal/scheduler"
	"github.com/bankcore/report-service/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyBalances = "daily-balances"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyBalanceSyncService *scheduler.DailyBalanceSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailyBalances:
			if services.DailyBalanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de saldos diários não disponível", nil)
				return
			}
			services.DailyBalanceSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-balances", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status de uma cron job
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		switch cronType {
		case CronJobTypeDailyBalances:
			if services.DailyBalanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de saldos diários não disponível", nil)
				return
			}
			json.NewEncoder(w).Encode(services.DailyBalanceSyncService.GetStatus())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-balances", nil)
		}
	}
}
