package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Nomes dos serviços upstream. Também são usados como prefixo das
// variáveis de ambiente dos circuit breakers (ex.: ACCOUNT_SERVICE_BREAKER_WINDOW_SIZE).
const (
	UpstreamAccountService     = "account-service"
	UpstreamCreditService      = "credit-service"
	UpstreamCustomerService    = "customer-service"
	UpstreamDebitCardService   = "debit-card-service"
	UpstreamTransactionService = "transaction-service"
)

var upstreamNames = []string{
	UpstreamAccountService,
	UpstreamCreditService,
	UpstreamCustomerService,
	UpstreamDebitCardService,
	UpstreamTransactionService,
}

type Config struct {
	App              App                      `mapstructure:",squash"`
	Server           Server                   `mapstructure:",squash"`
	Database         Database                 `mapstructure:",squash"`
	Upstreams        Upstreams                `mapstructure:",squash"`
	DailyBalanceSync DailyBalanceSync         `mapstructure:",squash"`
	Breakers         map[string]BreakerConfig `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Upstreams struct {
	AccountServiceURL     string `mapstructure:"account_service_url"`
	CreditServiceURL      string `mapstructure:"credit_service_url"`
	CustomerServiceURL    string `mapstructure:"customer_service_url"`
	DebitCardServiceURL   string `mapstructure:"debit_card_service_url"`
	TransactionServiceURL string `mapstructure:"transaction_service_url"`
	HTTPTimeoutSeconds    int    `mapstructure:"upstream_http_timeout_seconds"`
}

// HTTPTimeout retorna o timeout das chamadas HTTP aos serviços upstream.
func (u Upstreams) HTTPTimeout() time.Duration {
	return time.Duration(u.HTTPTimeoutSeconds) * time.Second
}

// BreakerConfig guarda os parâmetros do circuit breaker de um upstream.
type BreakerConfig struct {
	FailureRateThreshold float64
	WindowSize           int
	CooldownSeconds      int
	HalfOpenTrials       int
}

func (b BreakerConfig) Cooldown() time.Duration {
	return time.Duration(b.CooldownSeconds) * time.Second
}

type DailyBalanceSync struct {
	CronSchedule           string `mapstructure:"daily_balance_sync_cron"`
	MaxConcurrentCustomers int    `mapstructure:"daily_balance_sync_max_concurrent_customers"`
	Enabled                bool   `mapstructure:"daily_balance_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reports")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ACCOUNT_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("CREDIT_SERVICE_URL", "http://localhost:8082")
	viper.SetDefault("CUSTOMER_SERVICE_URL", "http://localhost:8083/customers")
	viper.SetDefault("DEBIT_CARD_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("TRANSACTION_SERVICE_URL", "http://localhost:8084")
	viper.SetDefault("UPSTREAM_HTTP_TIMEOUT_SECONDS", 10)

	// Defaults dos circuit breakers, iguais para todos os upstreams
	for _, name := range upstreamNames {
		prefix := breakerEnvPrefix(name)
		viper.SetDefault(prefix+"_BREAKER_FAILURE_RATE_THRESHOLD", 50.0) // 50% de falhas abre o circuito
		viper.SetDefault(prefix+"_BREAKER_WINDOW_SIZE", 10)              // janela de 10 chamadas
		viper.SetDefault(prefix+"_BREAKER_COOLDOWN_SECONDS", 30)         // 30 segundos em aberto
		viper.SetDefault(prefix+"_BREAKER_HALF_OPEN_TRIALS", 3)          // 3 chamadas de teste em half-open
	}

	// Defaults do job diário de saldos
	viper.SetDefault("DAILY_BALANCE_SYNC_CRON", "59 23 * * *") // Todos os dias às 23h59
	viper.SetDefault("DAILY_BALANCE_SYNC_MAX_CONCURRENT_CUSTOMERS", 5)
	viper.SetDefault("DAILY_BALANCE_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Breakers = make(map[string]BreakerConfig, len(upstreamNames))
	for _, name := range upstreamNames {
		prefix := breakerEnvPrefix(name)
		config.Breakers[name] = BreakerConfig{
			FailureRateThreshold: viper.GetFloat64(prefix + "_BREAKER_FAILURE_RATE_THRESHOLD"),
			WindowSize:           viper.GetInt(prefix + "_BREAKER_WINDOW_SIZE"),
			CooldownSeconds:      viper.GetInt(prefix + "_BREAKER_COOLDOWN_SECONDS"),
			HalfOpenTrials:       viper.GetInt(prefix + "_BREAKER_HALF_OPEN_TRIALS"),
		}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func breakerEnvPrefix(upstreamName string) string {
	return strings.ToUpper(strings.ReplaceAll(upstreamName, "-", "_"))
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
