package config

const EnvPrefix = "orderdesk"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv        = "ORDERDESK_APP_ENV"
	EnvPort          = "ORDERDESK_APP_PORT"
	EnvLogLevel      = "ORDERDESK_LOG_LEVEL"
	EnvDBPath        = "ORDERDESK_DB_PATH"
	EnvRedisURL      = "ORDERDESK_REDIS_URL"
	EnvAutosaveDelay = "ORDERDESK_AUTOSAVE_DELAY"
	EnvGeminiAPIKey  = "ORDERDESK_GEMINI_API_KEY"
)
