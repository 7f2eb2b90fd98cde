package config

import "time"

// Config holds all client configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	API     APIConfig     `mapstructure:"api" validate:"required"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Links   LinksConfig   `mapstructure:"links"`
}

// APIConfig contains the settings for reaching the task API.
type APIConfig struct {
	// BaseURL is the only required external configuration.
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0,lte=300"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// SessionConfig contains session persistence settings.
type SessionConfig struct {
	// Path overrides the default session file location
	// (<user config dir>/taskdeck/session.json).
	Path string `mapstructure:"path"`
}

// LinksConfig carries cosmetic link URLs shown by the CLI. They are
// non-functional and excluded from the core contract.
type LinksConfig struct {
	HelpURL   string `mapstructure:"help_url"`
	StatusURL string `mapstructure:"status_url"`
}
