package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bankcore/report-service/pkg/log"
)

// responseEnvelope é o formato padrão de resposta dos serviços da plataforma.
type responseEnvelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// writeData envelopa o payload em {status, message, data} e escreve a
// resposta. Falha de codificação é apenas logada; os headers já foram
// enviados nesse ponto.
func writeData(w http.ResponseWriter, logger log.Logger, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	env := responseEnvelope{
		Status:  http.StatusOK,
		Message: "OK",
		Data:    payload,
	}

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.WithError(err).Error("reports: erro ao codificar resposta")
	}
}
