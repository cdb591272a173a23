package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/bankcore/report-service/infrastructure/database/postgres"
	"github.com/bankcore/report-service/infrastructure/repository"
	"github.com/bankcore/report-service/infrastructure/upstream"
	"github.com/bankcore/report-service/infrastructure/upstream/accountclient"
	"github.com/bankcore/report-service/infrastructure/upstream/creditclient"
	"github.com/bankcore/report-service/infrastructure/upstream/customerclient"
	"github.com/bankcore/report-service/infrastructure/upstream/debitcardclient"
	"github.com/bankcore/report-service/infrastructure/upstream/transactionclient"
	"github.com/bankcore/report-service/internal/api"
	"github.com/bankcore/report-service/internal/breaker"
	"github.com/bankcore/report-service/internal/config"
	"github.com/bankcore/report-service/internal/scheduler"
	"github.com/bankcore/report-service/internal/usecases/dailybalance"
	"github.com/bankcore/report-service/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dailyBalanceRepo := repository.NewDailyBalanceRepository(pgConn)

	// Cada upstream tem o seu próprio circuit breaker; a indisponibilidade de
	// um serviço não derruba as chamadas aos demais.
	timeout := cfg.Upstreams.HTTPTimeout()
	accountCaller := newCaller(cfg, config.UpstreamAccountService, cfg.Upstreams.AccountServiceURL, timeout)
	creditCaller := newCaller(cfg, config.UpstreamCreditService, cfg.Upstreams.CreditServiceURL, timeout)
	customerCaller := newCaller(cfg, config.UpstreamCustomerService, cfg.Upstreams.CustomerServiceURL, timeout)
	debitCardCaller := newCaller(cfg, config.UpstreamDebitCardService, cfg.Upstreams.DebitCardServiceURL, timeout)
	transactionCaller := newCaller(cfg, config.UpstreamTransactionService, cfg.Upstreams.TransactionServiceURL, timeout)

	accountClient := accountclient.NewClient(accountCaller)
	creditClient := creditclient.NewClient(creditCaller)
	customerClient := customerclient.NewClient(customerCaller)
	debitCardClient := debitcardclient.NewClient(debitCardCaller)
	transactionClient := transactionclient.NewClient(transactionCaller)

	reportService := reporting.NewService(
		accountClient,
		creditClient,
		debitCardClient,
		transactionClient,
		dailyBalanceRepo,
	)

	dailyBalanceService := dailybalance.NewService(
		customerClient,
		accountClient,
		creditClient,
		debitCardClient,
		dailyBalanceRepo,
		cfg.DailyBalanceSync.MaxConcurrentCustomers,
	)

	// Inicializa o agendador do job diário de saldos
	dailyBalanceSyncService := scheduler.NewDailyBalanceSyncService(dailyBalanceService, cfg)

	if err := dailyBalanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de saldos diários")
	} else {
		logrus.Info("Agendador de saldos diários iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService, dailyBalanceSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newCaller monta o caller HTTP de um upstream com o breaker configurado
func newCaller(cfg *config.Config, name, baseURL string, timeout time.Duration) *upstream.Caller {
	breakerCfg := cfg.Breakers[name]

	b := breaker.New(breaker.Config{
		Name:                 name,
		FailureRateThreshold: breakerCfg.FailureRateThreshold,
		WindowSize:           breakerCfg.WindowSize,
		Cooldown:             breakerCfg.Cooldown(),
		HalfOpenTrials:       breakerCfg.HalfOpenTrials,
	})

	return upstream.NewCaller(name, baseURL, timeout, b)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
