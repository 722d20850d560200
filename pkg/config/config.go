package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Autosave AutosaveConfig
	Gemini   GeminiConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERDESK_APP_ENV" default:"dev"`
	Port         string `envconfig:"ORDERDESK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ORDERDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path is the sqlite database file backing the snapshot store.
	Path string `envconfig:"ORDERDESK_DB_PATH" default:"orderdesk.db"`
}

// RedisConfig selects the optional redis snapshot backend. When URL is empty
// the sqlite store is used.
type RedisConfig struct {
	URL          string        `envconfig:"ORDERDESK_REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"ORDERDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ORDERDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ORDERDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type AutosaveConfig struct {
	// Delay is the quiescence window before a dirty snapshot is written.
	Delay        time.Duration `envconfig:"ORDERDESK_AUTOSAVE_DELAY" default:"500ms"`
	WriteTimeout time.Duration `envconfig:"ORDERDESK_AUTOSAVE_WRITE_TIMEOUT" default:"10s"`
}

type GeminiConfig struct {
	APIKey  string        `envconfig:"ORDERDESK_GEMINI_API_KEY"`
	Model   string        `envconfig:"ORDERDESK_GEMINI_MODEL" default:"gemini-3-flash-preview"`
	BaseURL string        `envconfig:"ORDERDESK_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `envconfig:"ORDERDESK_GEMINI_TIMEOUT" default:"30s"`
}
