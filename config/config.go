package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"wallet-faucet/pkg/apperror"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Hub      HubConfig      `mapstructure:"hub"`
	LNURL    LNURLConfig    `mapstructure:"lnurl"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// HubConfig describes the custodial hub and the operator credential used
// against it. Read once at startup.
type HubConfig struct {
	URL            string        `mapstructure:"url"`
	Token          string        `mapstructure:"token"`
	OperatorName   string        `mapstructure:"operator_name"`
	OperatorRegion string        `mapstructure:"operator_region"`
	Timeout        time.Duration `mapstructure:"timeout"`          // 0 = no client timeout
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`   // 0 = unlimited
	RateLimitBurst int           `mapstructure:"rate_limit_burst"` // token bucket size
	Retry          RetryConfig   `mapstructure:"retry"`
}

type LNURLConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Retry   RetryConfig   `mapstructure:"retry"`
}

// RetryConfig is an explicit retry policy. Attempts <= 1 disables retries.
type RetryConfig struct {
	Attempts uint          `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

type WalletConfig struct {
	NamePrefix    string `mapstructure:"name_prefix"`
	AddressDomain string `mapstructure:"address_domain"` // domain part of issued lightning addresses
	MetadataTag   string `mapstructure:"metadata_tag"`
	BudgetRenewal string `mapstructure:"budget_renewal"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// MigrateURL returns the connection string in the form the pgx/v5
// migrate driver expects.
func (d DatabaseConfig) MigrateURL() string {
	return "pgx5" + strings.TrimPrefix(d.DSN(), "postgres")
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	IndexTTL time.Duration `mapstructure:"index_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate checks the settings without which no request can succeed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Hub.URL) == "" {
		return apperror.ErrConfigMissing("hub.url")
	}
	if strings.TrimSpace(c.Wallet.AddressDomain) == "" {
		return apperror.ErrConfigMissing("wallet.address_domain")
	}
	return nil
}

// Load reads configuration from file, .env and environment variables.
// Environment variables override file values. Prefix: WF_ (Wallet Faucet).
// Nested keys use underscore: WF_HUB_URL, WF_HUB_TOKEN, etc.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("hub.url", "")
	v.SetDefault("hub.token", "")
	v.SetDefault("hub.operator_name", "")
	v.SetDefault("hub.operator_region", "")
	v.SetDefault("hub.timeout", "0s")
	v.SetDefault("hub.rate_limit_rps", 0)
	v.SetDefault("hub.rate_limit_burst", 1)
	v.SetDefault("hub.retry.attempts", 1)
	v.SetDefault("hub.retry.delay", "500ms")
	v.SetDefault("lnurl.timeout", "0s")
	v.SetDefault("lnurl.retry.attempts", 1)
	v.SetDefault("lnurl.retry.delay", "500ms")
	v.SetDefault("wallet.name_prefix", "test-wallet")
	v.SetDefault("wallet.address_domain", "getalby.com")
	v.SetDefault("wallet.metadata_tag", "faucet")
	v.SetDefault("wallet.budget_renewal", "monthly")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_faucet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.index_ttl", "720h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WF_HUB_URL -> hub.url
	v.SetEnvPrefix("WF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv populates the process environment from a dotenv file if one
// exists. Variables already set in the environment win.
func loadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", filename, err)
	}
	return nil
}
