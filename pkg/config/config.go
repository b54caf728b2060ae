package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "RECHARGEHUB"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv             = "RECHARGEHUB_APP_ENV"
	EnvPort               = "RECHARGEHUB_APP_PORT"
	EnvLogLevel           = "RECHARGEHUB_LOG_LEVEL"
	EnvLedgerRecentWindow = "RECHARGEHUB_LEDGER_RECENT_WINDOW"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Ledger LedgerConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Ledger.RecentWindow <= 0 {
		return nil, fmt.Errorf("%s must be positive", EnvLedgerRecentWindow)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RECHARGEHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"RECHARGEHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RECHARGEHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RECHARGEHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout  time.Duration `envconfig:"RECHARGEHUB_SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"RECHARGEHUB_SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"RECHARGEHUB_SERVER_IDLE_TIMEOUT" default:"60s"`
}

type LedgerConfig struct {
	// RecentWindow is how many transactions the recent-history endpoint
	// returns.
	RecentWindow int `envconfig:"RECHARGEHUB_LEDGER_RECENT_WINDOW" default:"10"`
}
