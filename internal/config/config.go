package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Checkout  CheckoutConfig  `yaml:"checkout"  validate:"required"`
	Fraud     FraudConfig     `yaml:"fraud"     validate:"required"`
	Nets      NetsConfig      `yaml:"nets"`
	Stripe    StripeConfig    `yaml:"stripe"`
	PayPal    PayPalConfig    `yaml:"paypal"`
	Airwallex AirwallexConfig `yaml:"airwallex"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
	// PublicURL - внешний адрес сервиса, из него собираются return/cancel URL для провайдеров.
	PublicURL string `yaml:"public_url" env:"SERVER_PUBLIC_URL" env-default:"http://localhost:8080" validate:"required,url"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"escrowpay"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval"    env:"SCHEDULER_INTERVAL"    env-default:"1m"  validate:"required,gt=0"`
	// PendingTTL - сколько платеж может висеть в pending у провайдеров без поллинга.
	PendingTTL time.Duration `yaml:"pending_ttl" env:"SCHEDULER_PENDING_TTL" env-default:"30m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"         env:"RABBITMQ_URL"         env-default:""`
	Exchange   string `yaml:"exchange"    env:"RABBITMQ_EXCHANGE"    env-default:"marketplace.events"`
	LoginQueue string `yaml:"login_queue" env:"RABBITMQ_LOGIN_QUEUE" env-default:"escrowpay.login-events"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" validate:"required"`
}

type CheckoutConfig struct {
	DefaultCurrency     string `yaml:"default_currency"     env:"CHECKOUT_DEFAULT_CURRENCY"     env-default:"SGD" validate:"required,len=3"`
	SupportedCurrencies string `yaml:"supported_currencies" env:"CHECKOUT_SUPPORTED_CURRENCIES" env-default:"SGD" validate:"required"`
}

// Currencies разбирает список поддерживаемых валют.
func (c CheckoutConfig) Currencies() []string {
	var res []string
	for _, cur := range strings.Split(c.SupportedCurrencies, ",") {
		if cur = strings.ToUpper(strings.TrimSpace(cur)); cur != "" {
			res = append(res, cur)
		}
	}
	return res
}

type FraudConfig struct {
	SingleThreshold string        `yaml:"single_threshold" env:"FRAUD_SINGLE_THRESHOLD" env-default:"2000" validate:"required,numeric"`
	BurstThreshold  string        `yaml:"burst_threshold"  env:"FRAUD_BURST_THRESHOLD"  env-default:"2000" validate:"required,numeric"`
	BurstCount      int           `yaml:"burst_count"      env:"FRAUD_BURST_COUNT"      env-default:"3"    validate:"min=1"`
	Window          time.Duration `yaml:"window"           env:"FRAUD_WINDOW"           env-default:"5m"   validate:"gt=0"`
	LoginLimit      int           `yaml:"login_limit"      env:"FRAUD_LOGIN_LIMIT"      env-default:"5"    validate:"min=1"`
}

func (c FraudConfig) Single() decimal.Decimal {
	return decimal.RequireFromString(c.SingleThreshold)
}

func (c FraudConfig) Burst() decimal.Decimal {
	return decimal.RequireFromString(c.BurstThreshold)
}

type NetsConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"NETS_BASE_URL"      env-default:"https://sandbox.nets.openapipaas.com"`
	APIKey       string        `yaml:"api_key"       env:"NETS_API_KEY"`
	ProjectID    string        `yaml:"project_id"    env:"NETS_PROJECT_ID"`
	TxnID        string        `yaml:"txn_id"        env:"NETS_TXN_ID"`
	PollInterval time.Duration `yaml:"poll_interval" env:"NETS_POLL_INTERVAL" env-default:"5s" validate:"gt=0"`
	MaxPolls     int           `yaml:"max_polls"     env:"NETS_MAX_POLLS"     env-default:"60" validate:"min=1"`
}

func (c NetsConfig) Enabled() bool {
	return c.APIKey != "" && c.ProjectID != ""
}

type StripeConfig struct {
	SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
}

func (c StripeConfig) Enabled() bool {
	return c.SecretKey != ""
}

type PayPalConfig struct {
	ClientID string `yaml:"client_id" env:"PAYPAL_CLIENT_ID"`
	Secret   string `yaml:"secret"    env:"PAYPAL_SECRET"`
	Live     bool   `yaml:"live"      env:"PAYPAL_LIVE" env-default:"false"`
}

func (c PayPalConfig) Enabled() bool {
	return c.ClientID != "" && c.Secret != ""
}

type AirwallexConfig struct {
	BaseURL  string        `yaml:"base_url"  env:"AIRWALLEX_BASE_URL"  env-default:"https://api-demo.airwallex.com"`
	ClientID string        `yaml:"client_id" env:"AIRWALLEX_CLIENT_ID"`
	APIKey   string        `yaml:"api_key"   env:"AIRWALLEX_API_KEY"`
	LoginAs  string        `yaml:"login_as"  env:"AIRWALLEX_LOGIN_AS"`
	Timeout  time.Duration `yaml:"timeout"   env:"AIRWALLEX_TIMEOUT"   env-default:"15s" validate:"gt=0"`
}

func (c AirwallexConfig) Enabled() bool {
	return c.ClientID != "" && c.APIKey != ""
}

type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"TRACING_ENABLED"             env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
