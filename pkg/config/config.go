// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Lambda images ship without a zoneinfo database.

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. MKANI_DATABASE_DSN.
const EnvPrefix = "MKANI"

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Billing  BillingConfig  `mapstructure:"billing"`
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"` // postgres or sqlite
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type AWSConfig struct {
	JobsQueueURL       string `mapstructure:"jobs_queue_url"`
	NotificationsTable string `mapstructure:"notifications_table"`
}

// RedisConfig is empty when realtime push is disabled.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

type BillingConfig struct {
	Timezone          string        `mapstructure:"timezone"`
	RejectedRetention time.Duration `mapstructure:"rejected_retention"`
	OverduePolicy     string        `mapstructure:"overdue_policy"` // none or sweep
}

// Location resolves the billing timezone, falling back to UTC.
func (b BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("aws.jobs_queue_url", "")
	v.SetDefault("aws.notifications_table", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)
	v.SetDefault("metrics.namespace", "mkani")
	v.SetDefault("billing.timezone", "Africa/Cairo")
	v.SetDefault("billing.rejected_retention", 15*24*time.Hour)
	v.SetDefault("billing.overdue_policy", "sweep")
}

// Load reads a .env file when present, then the MKANI_ environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper decodes v after installing defaults and environment bindings.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Validate reports every required value missing for the selected drivers.
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn: is required"))
	}
	switch c.Billing.OverduePolicy {
	case "none", "sweep":
	default:
		errs = append(errs, fmt.Errorf("billing.overdue_policy: unsupported policy %q", c.Billing.OverduePolicy))
	}
	if _, err := time.LoadLocation(c.Billing.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("billing.timezone: %w", err))
	}
	if c.Billing.RejectedRetention <= 0 {
		errs = append(errs, errors.New("billing.rejected_retention: must be positive"))
	}
	return errors.Join(errs...)
}
