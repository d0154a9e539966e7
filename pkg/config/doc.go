// Package config handles configuration management for snaparch.
// It supports loading configuration from multiple sources including
// TOML/YAML files, environment variables, and command-line flags.
package config
