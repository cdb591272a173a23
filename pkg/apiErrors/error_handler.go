package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/internal/domain"
)

// Códigos de erro retornados pela API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de upstream (UPS)
	ErrUpstreamRejected    = "UPS_001" // Upstream rejeitou a requisição (4xx)
	ErrUpstreamFailure     = "UPS_002" // Upstream respondeu com erro (5xx)
	ErrUpstreamUnavailable = "UPS_003" // Upstream indisponível ou circuito aberto
	ErrResourceNotFound    = "UPS_004" // Recurso não encontrado no upstream

	// Erros do servidor (SRV)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation  = "SRV_002" // Erro de operação de banco de dados
	ErrUnsupportedProduct = "SRV_003" // Produto de tipo desconhecido vindo do upstream
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUpstreamRejected:    http.StatusBadGateway,
	ErrUpstreamFailure:     http.StatusBadGateway,
	ErrUpstreamUnavailable: http.StatusServiceUnavailable,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrUnsupportedProduct:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError traduz um erro dos casos de uso para o código de API correspondente.
// Erros de upstream são inspecionados com errors.As para preservar a causa classificada.
func WriteFromError(w http.ResponseWriter, err error) {
	var notFound *upstream.NotFoundError
	if errors.As(err, &notFound) {
		WriteError(w, ErrResourceNotFound, err.Error(), nil)
		return
	}

	var unsupported *domain.UnsupportedVariantError
	if errors.As(err, &unsupported) {
		WriteError(w, ErrUnsupportedProduct, err.Error(), nil)
		return
	}

	var unavailable *upstream.UnavailableError
	if errors.As(err, &unavailable) {
		// A causa diz se o upstream respondeu mal ou nem respondeu
		var clientErr *upstream.ClientError
		if errors.As(err, &clientErr) {
			WriteError(w, ErrUpstreamRejected, err.Error(), nil)
			return
		}

		var serverErr *upstream.ServerError
		if errors.As(err, &serverErr) {
			WriteError(w, ErrUpstreamFailure, err.Error(), nil)
			return
		}

		WriteError(w, ErrUpstreamUnavailable, err.Error(), nil)
		return
	}

	WriteError(w, ErrInternalServer, err.Error(), nil)
}
