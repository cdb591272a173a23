package upstream

import (
	"errors"
	"fmt"
)

// ClientError representa uma resposta 4xx do upstream.
type ClientError struct {
	Upstream   string
	Operation  string
	StatusCode int
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error from %s (%s): status %d", e.Upstream, e.Operation, e.StatusCode)
}

// ServerError representa uma resposta 5xx do upstream.
type ServerError struct {
	Upstream   string
	Operation  string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error from %s (%s): status %d", e.Upstream, e.Operation, e.StatusCode)
}

// UnavailableError é o único tipo de falha que os adaptadores expõem para as
// camadas de cima: circuito aberto, falha de transporte ou erro HTTP já
// classificado. A causa fica embrulhada para inspeção via errors.As.
type UnavailableError struct {
	Upstream  string
	Operation string
	Err       error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("upstream %s unavailable (%s): %v", e.Upstream, e.Operation, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// NotFoundError indica resultado vazio onde o chamador espera presença,
// ex: busca de conta por ID com envelope sem data.
type NotFoundError struct {
	Upstream  string
	Operation string
	Key       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %q not found", e.Upstream, e.Operation, e.Key)
}

// IsUnavailable informa se err é uma indisponibilidade de upstream.
func IsUnavailable(err error) bool {
	var unavailable *UnavailableError
	return errors.As(err, &unavailable)
}

// IsNotFound informa se err é uma ausência de recurso.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
