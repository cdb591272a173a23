package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/bankcore/report-service/internal/config"
	"github.com/bankcore/report-service/internal/usecases/dailybalance"
)

// DailyBalanceSyncConfig representa a configuração do job diário de saldos
type DailyBalanceSyncConfig struct {
	CronSchedule           string
	MaxConcurrentCustomers int
	SyncEnabled            bool
}

// DailyBalanceSyncService gerencia o agendamento e a execução do job diário
// de snapshots de saldo. Cada rodada é independente: uma rodada que falha é
// logada e o próximo disparo começa do zero.
type DailyBalanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyBalanceSyncConfig
	processor           dailybalance.Processor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastRunSucceeded    bool
	lastRunErrorMessage string
}

// NewDailyBalanceSyncService cria uma nova instância do serviço de
// agendamento do job diário
func NewDailyBalanceSyncService(
	processor dailybalance.Processor,
	appConfig *config.Config,
) *DailyBalanceSyncService {
	syncConfig := DailyBalanceSyncConfig{
		CronSchedule:           appConfig.DailyBalanceSync.CronSchedule,
		MaxConcurrentCustomers: appConfig.DailyBalanceSync.MaxConcurrentCustomers,
		SyncEnabled:            appConfig.DailyBalanceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":            syncConfig.CronSchedule,
		"max_concurrent_customers": syncConfig.MaxConcurrentCustomers,
		"sync_enabled":             syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de saldos diários carregada")

	return &DailyBalanceSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		processor:   processor,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DailyBalanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Job de saldos diários desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do job de saldos diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyBalances(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o job de saldos diários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do job de saldos diários")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyBalances executa uma rodada, garantindo que rodadas não se
// sobreponham
func (s *DailyBalanceSyncService) runDailyBalances(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Job de saldos diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando rodada do job de saldos diários")

	err := s.processor.ProcessDailyBalances(ctx)

	s.syncMutex.Lock()
	s.lastRunSucceeded = err == nil
	if err != nil {
		s.lastRunErrorMessage = err.Error()
	} else {
		s.lastRunErrorMessage = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Rodada do job de saldos diários falhou")
		return
	}

	logrus.Info("Rodada do job de saldos diários concluída com sucesso")
}

// TriggerManualSync inicia manualmente uma rodada do job de saldos diários
func (s *DailyBalanceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Job de saldos diários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rodada manual do job de saldos diários")
	go s.runDailyBalances(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailyBalanceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":             s.config.SyncEnabled,
		"sync_cron":                s.config.CronSchedule,
		"max_concurrent_customers": s.config.MaxConcurrentCustomers,
		"sync_running":             s.syncRunning,
		"last_run_started_at":      s.lastRunStartedAt,
		"last_run_completed_at":    s.lastRunCompletedAt,
		"last_run_succeeded":       s.lastRunSucceeded,
		"last_run_error":           s.lastRunErrorMessage,
	}
}
