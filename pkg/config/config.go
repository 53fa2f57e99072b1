package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	CORS     CORSConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GROCIKO_APP_ENV" default:"development"`
	Port         string `envconfig:"GROCIKO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GROCIKO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GROCIKO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout     time.Duration `envconfig:"GROCIKO_SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"GROCIKO_SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"GROCIKO_SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"GROCIKO_SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GROCIKO_CORS_ALLOWED_ORIGINS" default:"*"`
	MaxAge         int      `envconfig:"GROCIKO_CORS_MAX_AGE" default:"300"`
}

type CheckoutConfig struct {
	OrderNumberPrefix string `envconfig:"GROCIKO_ORDER_NUMBER_PREFIX" default:"GR"`
}
