package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/report-service/internal/breaker"
)

func newTestBreaker(name string) *breaker.Breaker {
	return breaker.New(breaker.Config{
		Name:                 name,
		FailureRateThreshold: 50,
		WindowSize:           10,
		Cooldown:             time.Minute,
		HalfOpenTrials:       1,
	})
}

func TestCaller_GetJSON_DesembrulhaEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/customer/CUST001", r.URL.Path)
		assert.Equal(t, "ACTIVE", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":"ACC001","balance":150.75}]}`))
	}))
	defer server.Close()

	caller := NewCaller("account-service", server.URL, time.Second, newTestBreaker("account-service"))

	var out []struct {
		ID      string  `json:"id"`
		Balance float64 `json:"balance"`
	}

	query := url.Values{}
	query.Set("status", "ACTIVE")

	found, err := caller.GetJSON(context.Background(), "accounts-by-customer", "/accounts/customer/CUST001", query, &out)

	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, "ACC001", out[0].ID)
	assert.Equal(t, 150.75, out[0].Balance)
}

func TestCaller_GetJSON_DataNuloNaoEhErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"message":"sem resultados","data":null}`))
	}))
	defer server.Close()

	caller := NewCaller("account-service", server.URL, time.Second, newTestBreaker("account-service"))

	var out []struct{}
	found, err := caller.GetJSON(context.Background(), "accounts-by-customer", "/", nil, &out)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestCaller_GetJSON_ClassificaErrosHTTP(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		validate   func(t *testing.T, err error)
	}{
		{
			name:       "4xx vira ClientError embrulhado",
			statusCode: http.StatusNotFound,
			validate: func(t *testing.T, err error) {
				var clientErr *ClientError
				require.ErrorAs(t, err, &clientErr)
				assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
			},
		},
		{
			name:       "5xx vira ServerError embrulhado",
			statusCode: http.StatusInternalServerError,
			validate: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			caller := NewCaller("credit-service", server.URL, time.Second, newTestBreaker("credit-service"))

			var out []struct{}
			found, err := caller.GetJSON(context.Background(), "credits-by-customer", "/", nil, &out)

			assert.False(t, found)
			require.Error(t, err)

			// A falha sai sempre normalizada como indisponibilidade
			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, "credit-service", unavailable.Upstream)

			tt.validate(t, err)
		})
	}
}

func TestCaller_GetJSON_CircuitoAbertoNaoChamaRede(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	b := breaker.New(breaker.Config{
		Name:                 "transaction-service",
		FailureRateThreshold: 50,
		WindowSize:           2,
		Cooldown:             time.Minute,
		HalfOpenTrials:       1,
	})
	caller := NewCaller("transaction-service", server.URL, time.Second, b)

	var out []struct{}

	// Duas falhas enchem a janela e abrem o circuito
	_, err := caller.GetJSON(context.Background(), "transactions-by-date", "/", nil, &out)
	require.Error(t, err)
	_, err = caller.GetJSON(context.Background(), "transactions-by-date", "/", nil, &out)
	require.Error(t, err)
	assert.Equal(t, 2, requests)

	// Com o circuito aberto a chamada falha rápido, sem tocar a rede
	_, err = caller.GetJSON(context.Background(), "transactions-by-date", "/", nil, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, breaker.ErrOpen))
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, 2, requests)
}
