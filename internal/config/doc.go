// Package config loads and validates the client configuration from
// environment variables and an optional YAML config file.
package config
