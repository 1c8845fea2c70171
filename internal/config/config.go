package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Tasks   TasksConfig   `mapstructure:"tasks" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth" validate:"required"`
	Session SessionConfig `mapstructure:"session"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=json text"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// CORSAllowedOrigins lists browser origins allowed to call the API.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
}

// TasksConfig controls the in-memory task store.
type TasksConfig struct {
	// Latency is the simulated delay before every store operation.
	Latency time.Duration `mapstructure:"latency" validate:"gte=0"`
	// Seed loads the built-in sample tasks at startup.
	Seed bool `mapstructure:"seed"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// BcryptCost is used when hashing the seeded credential secrets.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
	// LoginRatePerSecond and LoginBurst bound login attempts per client IP.
	LoginRatePerSecond float64 `mapstructure:"login_rate_per_second" validate:"gt=0"`
	LoginBurst         int     `mapstructure:"login_burst" validate:"gt=0"`
}

// SessionConfig controls where the auth session is kept.
type SessionConfig struct {
	// Path of the JSON storage file. Empty keeps the session in memory only.
	Path string `mapstructure:"path"`
}
