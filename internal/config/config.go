package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// SessionConfig controls the lifetime of tracker sessions and the tokens
// that identify them.
type SessionConfig struct {
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gte=1"`
	IdleTimeoutMinutes   int    `mapstructure:"idle_timeout_minutes"   validate:"gte=1"`
	SweepIntervalSeconds int    `mapstructure:"sweep_interval_seconds" validate:"gte=1"`
	MaxSessions          int    `mapstructure:"max_sessions"           validate:"gte=1"`
}
