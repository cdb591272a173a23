package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream failure")

func failingCall() error { return errUpstream }
func healthyCall() error { return nil }

func TestBreaker_AbreComJanelaCheiaAcimaDoLimiar(t *testing.T) {
	b := New(Config{
		Name:                 "test-upstream",
		FailureRateThreshold: 50,
		WindowSize:           4,
		Cooldown:             time.Minute,
		HalfOpenTrials:       1,
	})

	// 3 falhas e 1 sucesso em uma janela de 4 = 75% de falhas
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.NoError(t, b.Call(healthyCall))
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)

	// Circuito aberto: a chamada nem é executada
	executed := false
	err := b.Call(func() error {
		executed = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, executed)
}

func TestBreaker_NaoAvaliaTaxaComJanelaIncompleta(t *testing.T) {
	b := New(Config{
		Name:                 "test-upstream",
		FailureRateThreshold: 50,
		WindowSize:           10,
		Cooldown:             time.Minute,
		HalfOpenTrials:       1,
	})

	// 9 falhas em uma janela de 10: taxa altíssima, mas a janela ainda não
	// encheu, então o circuito continua fechado
	for i := 0; i < 9; i++ {
		assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	}

	assert.NoError(t, b.Call(healthyCall))
}

func TestBreaker_FechaAposCooldownComTestesBemSucedidos(t *testing.T) {
	b := New(Config{
		Name:                 "test-upstream",
		FailureRateThreshold: 50,
		WindowSize:           2,
		Cooldown:             10 * time.Millisecond,
		HalfOpenTrials:       2,
	})

	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.ErrorIs(t, b.Call(healthyCall), ErrOpen)

	time.Sleep(20 * time.Millisecond)

	// Cooldown vencido: o circuito libera as chamadas de teste
	assert.NoError(t, b.Call(healthyCall))
	assert.NoError(t, b.Call(healthyCall))

	// Fechado de novo: uma única falha não reabre com a janela vazia
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.NoError(t, b.Call(healthyCall))
}

func TestBreaker_ReabreSeTesteDoHalfOpenFalha(t *testing.T) {
	b := New(Config{
		Name:                 "test-upstream",
		FailureRateThreshold: 50,
		WindowSize:           2,
		Cooldown:             10 * time.Millisecond,
		HalfOpenTrials:       2,
	})

	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)

	time.Sleep(20 * time.Millisecond)

	// Primeiro teste falha: volta a abrir imediatamente
	assert.ErrorIs(t, b.Call(failingCall), errUpstream)
	assert.ErrorIs(t, b.Call(healthyCall), ErrOpen)
}
