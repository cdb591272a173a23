package breaker

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrOpen é retornado quando o circuito está aberto e a chamada nem chega a
// ser tentada.
var ErrOpen = errors.New("circuit breaker is open")

type state int

const (
	stateClosed state = iota
	stateOpen
	stateHalfOpen
)

func (s state) String() string {
	switch s {
	case stateClosed:
		return "CLOSED"
	case stateOpen:
		return "OPEN"
	case stateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config define o comportamento de um breaker. Cada upstream tem o seu, sem
// acoplamento entre eles.
type Config struct {
	Name                 string
	FailureRateThreshold float64 // percentual, ex: 50 = 50%
	WindowSize           int     // quantidade de chamadas na janela deslizante
	Cooldown             time.Duration
	HalfOpenTrials       int
}

// Breaker guarda o estado do circuito de um único upstream. O estado é
// privado; quem chama só enxerga o resultado da chamada.
type Breaker struct {
	cfg Config

	mu             sync.Mutex
	state          state
	window         []bool // true = falha
	windowPos      int
	windowFilled   int
	openedAt       time.Time
	trialsStarted  int
	trialSuccesses int
}

func New(cfg Config) *Breaker {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = 10
	}
	if cfg.FailureRateThreshold <= 0 {
		cfg.FailureRateThreshold = 50
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	if cfg.HalfOpenTrials <= 0 {
		cfg.HalfOpenTrials = 1
	}

	logrus.WithFields(logrus.Fields{
		"breaker":                cfg.Name,
		"failure_rate_threshold": cfg.FailureRateThreshold,
		"window_size":            cfg.WindowSize,
		"cooldown":               cfg.Cooldown.String(),
		"half_open_trials":       cfg.HalfOpenTrials,
	}).Info("Circuit breaker inicializado")

	return &Breaker{
		cfg:    cfg,
		state:  stateClosed,
		window: make([]bool, cfg.WindowSize),
	}
}

// Call executa fn protegida pelo circuito. Com o circuito aberto retorna
// ErrOpen imediatamente, sem tentativa de rede.
func (b *Breaker) Call(fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	b.record(err == nil)
	return err
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return nil
	case stateOpen:
		if time.Since(b.openedAt) < b.cfg.Cooldown {
			return ErrOpen
		}
		// Cooldown vencido: libera chamadas de teste.
		b.transition(stateHalfOpen)
		b.trialsStarted = 1
		b.trialSuccesses = 0
		return nil
	case stateHalfOpen:
		if b.trialsStarted >= b.cfg.HalfOpenTrials {
			return ErrOpen
		}
		b.trialsStarted++
		return nil
	}
	return nil
}

func (b *Breaker) record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		b.window[b.windowPos] = !success
		b.windowPos = (b.windowPos + 1) % b.cfg.WindowSize
		if b.windowFilled < b.cfg.WindowSize {
			b.windowFilled++
		}

		// A taxa só é avaliada com a janela cheia.
		if b.windowFilled < b.cfg.WindowSize {
			return
		}

		failures := 0
		for _, failed := range b.window {
			if failed {
				failures++
			}
		}
		rate := float64(failures) / float64(b.cfg.WindowSize) * 100
		if rate >= b.cfg.FailureRateThreshold {
			b.trip()
		}

	case stateHalfOpen:
		if !success {
			// Teste falhou: volta a abrir e recomeça o cooldown.
			b.trip()
			return
		}
		b.trialSuccesses++
		if b.trialSuccesses >= b.cfg.HalfOpenTrials {
			b.transition(stateClosed)
			b.resetWindow()
		}

	case stateOpen:
		// Chamada liberada antes da abertura; o resultado não muda o estado.
	}
}

func (b *Breaker) trip() {
	b.transition(stateOpen)
	b.openedAt = time.Now()
	b.resetWindow()
}

func (b *Breaker) resetWindow() {
	for i := range b.window {
		b.window[i] = false
	}
	b.windowPos = 0
	b.windowFilled = 0
}

func (b *Breaker) transition(to state) {
	from := b.state
	b.state = to

	logrus.WithFields(logrus.Fields{
		"breaker": b.cfg.Name,
		"from":    from.String(),
		"to":      to.String(),
	}).Warn("Circuit breaker mudou de estado")
}
