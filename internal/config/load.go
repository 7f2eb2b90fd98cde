package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	defaultBaseURL        = "http://localhost:3000"
	defaultTimeoutSeconds = 30
	defaultLogLevel       = "info"
	defaultHelpURL        = "https://github.com/gcunha/taskdeck"
	defaultStatusURL      = "https://vercel.com/status"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over values from
// the config file. Returns a populated Config or an error if loading
// or validation fails.
//
// configPath may be empty, in which case only defaults and environment
// variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("session.path", "")
	v.SetDefault("links.help_url", defaultHelpURL)
	v.SetDefault("links.status_url", defaultStatusURL)

	if configPath != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	// Configure environment variables with the TASKDECK prefix.
	v.SetEnvPrefix("TASKDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"api.base_url", "TASKDECK_API_BASE_URL"},
		{"api.timeout_seconds", "TASKDECK_API_TIMEOUT_SECONDS"},
		{"log.level", "TASKDECK_LOG_LEVEL"},
		{"session.path", "TASKDECK_SESSION_PATH"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
