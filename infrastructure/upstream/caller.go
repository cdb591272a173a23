package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bankcore/report-service/internal/breaker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o formato fixo de resposta de todos os upstreams.
type envelope struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
}

// Caller encapsula a chamada HTTP genérica de um upstream: GET através do
// breaker, classificação de 4xx/5xx e desembrulho do envelope
// {status, message, data}. Nenhum retry é feito nesta camada.
type Caller struct {
	name       string
	baseURL    string
	httpClient *http.Client
	breaker    *breaker.Breaker
}

func NewCaller(name, baseURL string, timeout time.Duration, b *breaker.Breaker) *Caller {
	return &Caller{
		name:    name,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: b,
	}
}

// Name retorna o nome do upstream, usado nos erros classificados.
func (c *Caller) Name() string {
	return c.name
}

// GetJSON faz um GET em path e decodifica o campo data do envelope em out.
// Retorna found=false quando o envelope vem com data nulo; cabe a cada
// operação decidir se isso é resultado vazio ou ausência de recurso.
// Qualquer falha (circuito aberto, transporte, 4xx/5xx) sai normalizada como
// *UnavailableError com a causa embrulhada.
func (c *Caller) GetJSON(ctx context.Context, operation, path string, query url.Values, out any) (bool, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	logrus.WithFields(logrus.Fields{
		"upstream":  c.name,
		"operation": operation,
		"url":       fullURL,
	}).Debug("Enviando requisição para upstream")

	found := false

	err := c.breaker.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		// Classifica o status antes de qualquer outra coisa; o breaker conta
		// o erro classificado como falha.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return &ClientError{Upstream: c.name, Operation: operation, StatusCode: resp.StatusCode}
		}
		if resp.StatusCode >= 500 {
			return &ServerError{Upstream: c.name, Operation: operation, StatusCode: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return fmt.Errorf("resposta fora do envelope esperado: %w", err)
		}

		// Envelope com data nulo é resultado vazio, não erro.
		if len(env.Data) == 0 || string(env.Data) == "null" {
			logrus.WithFields(logrus.Fields{
				"upstream":  c.name,
				"operation": operation,
				"status":    env.Status,
			}).Debug("Upstream respondeu sem dados")
			return nil
		}

		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("erro ao decodificar data do envelope: %w", err)
		}

		found = true

		logrus.WithFields(logrus.Fields{
			"upstream":  c.name,
			"operation": operation,
			"status":    env.Status,
		}).Debug("Resposta do upstream recebida")

		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"upstream":  c.name,
			"operation": operation,
			"error":     err.Error(),
		}).Error("Falha na chamada ao upstream")

		return false, &UnavailableError{Upstream: c.name, Operation: operation, Err: err}
	}

	return found, nil
}
