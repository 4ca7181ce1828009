package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	GatewayProviderEvolution = "evolution"
	GatewayProviderTwilio    = "twilio"
)

// Config holds all application configuration
type Config struct {
	Environment string `env:"GO_ENV, default=development"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`

	Database  DatabaseConfig  `env:", prefix=DB_"`
	Server    ServerConfig    `env:", prefix=SERVER_"`
	Auth      AuthConfig      `env:", prefix=AUTH_"`
	Scheduler SchedulerConfig `env:", prefix=SCHEDULER_"`
	Gateway   GatewayConfig   `env:", prefix=GATEWAY_"`
	Twilio    TwilioConfig    `env:", prefix=TWILIO_"`
	Kafka     KafkaConfig     `env:", prefix=KAFKA_"`
	Redis     RedisConfig     `env:", prefix=REDIS_"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"HOST, required"`
	Port     int    `env:"PORT, default=5432"`
	Username string `env:"USERNAME, required"`
	Password string `env:"PASSWORD, required"`
	Name     string `env:"NAME, required"`
	SSLMode  string `env:"SSL_MODE, default=disable"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int    `env:"PORT, default=8080"`
	WebAppURI string `env:"WEBAPP_URI, default=http://localhost:3000"`
}

// AuthConfig holds the shared secret the booking workflow signs service tokens with
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET, required"`
}

// SchedulerConfig holds timing for the campaign and reminder schedulers
type SchedulerConfig struct {
	CampaignTickInterval time.Duration `env:"CAMPAIGN_TICK_INTERVAL, default=60s"`
	CampaignInitialDelay time.Duration `env:"CAMPAIGN_INITIAL_DELAY, default=5s"`
	CampaignSendDelay    time.Duration `env:"CAMPAIGN_SEND_DELAY, default=1s"`
	CampaignSendRate     float64       `env:"CAMPAIGN_SEND_RATE"`
	CampaignSendBurst    int           `env:"CAMPAIGN_SEND_BURST, default=1"`
	ReminderScanInterval time.Duration `env:"REMINDER_SCAN_INTERVAL, default=5m"`
	ReminderLookahead    time.Duration `env:"REMINDER_LOOKAHEAD, default=25h"`
	ReminderHorizon      time.Duration `env:"REMINDER_HORIZON, default=2h"`
	TimeZone             string        `env:"TIMEZONE, default=America/Sao_Paulo"`
	CountryCode          string        `env:"COUNTRY_CODE, default=55"`
}

// GatewayConfig selects and tunes the outbound WhatsApp provider
type GatewayConfig struct {
	Provider string        `env:"PROVIDER, default=evolution"`
	Timeout  time.Duration `env:"TIMEOUT, default=30s"`
}

// TwilioConfig holds Twilio credentials, only required when GATEWAY_PROVIDER=twilio
type TwilioConfig struct {
	AccountSID   string `env:"ACCOUNT_SID"`
	AuthToken    string `env:"AUTH_TOKEN"`
	WhatsAppFrom string `env:"WHATSAPP_FROM"`
}

// KafkaConfig holds event streaming configuration. Empty brokers disable publishing.
type KafkaConfig struct {
	Brokers string `env:"BROKERS"`
	Topic   string `env:"TOPIC, default=messaging-events"`
}

// RedisConfig holds the connection used for reminder delivery leases.
// An empty host disables leasing, which is fine for a single replica.
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT, default=6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB, default=0"`
}

// Enabled reports whether a Redis host is configured
func (c *RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

// Load reads env.local outside production, then processes the environment
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes configuration from the given lookuper and validates it
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express
func (c *Config) Validate() error {
	switch c.Gateway.Provider {
	case GatewayProviderEvolution:
	case GatewayProviderTwilio:
		if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" || c.Twilio.WhatsAppFrom == "" {
			return fmt.Errorf("%w: twilio provider requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_WHATSAPP_FROM", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown gateway provider %q", ErrInvalidConfig, c.Gateway.Provider)
	}

	if c.Scheduler.CampaignSendRate < 0 {
		return fmt.Errorf("%w: campaign send rate must not be negative", ErrInvalidConfig)
	}

	if c.Scheduler.ReminderHorizon > c.Scheduler.ReminderLookahead {
		return fmt.Errorf("%w: reminder horizon must not exceed lookahead", ErrInvalidConfig)
	}

	if _, err := c.Scheduler.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// IsProduction reports whether GO_ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location resolves the configured time zone appointments are expressed in
func (c *SchedulerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// KafkaBrokers splits the comma separated broker list
func (c *KafkaConfig) KafkaBrokers() []string {
	if strings.TrimSpace(c.Brokers) == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}
