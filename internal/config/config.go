// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// idea-backlog service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational store settings. It carries no prefix so
	// the storage location stays addressable as plain DB_PATH.
	Storage Storage

	// Server holds network address, timeout and traffic-shaping settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Security holds the response security header settings.
	Security Security `envPrefix:"SECURITY_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database settings.
	DB DB
}

// DB holds the SQLite database settings.
type DB struct {
	// Path is the SQLite database file. When empty the store resolves a
	// writable location from a fixed list of candidates.
	Path string `env:"DB_PATH"`
}

// Server holds HTTP server settings.
type Server struct {
	// HTTPAddress is the TCP address (host:port) the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Zero disables the timeout middleware.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	RateLimit int `env:"RATE_LIMIT"`

	// CORSAllowedOrigins enables CORS for the listed origins when non-empty.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// TrustProxyHeaders takes the client IP from X-Forwarded-For / X-Real-IP.
	// Enable it only behind a proxy that overwrites those headers, otherwise
	// clients can pick their own rate limit key.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// Security holds the settings of the security header middleware.
type Security struct {
	// CSPAllowedCDN is the extra script/style source allowed by the
	// Content-Security-Policy header.
	CSPAllowedCDN string `env:"CSP_CDN"`

	// CSPRelaxed switches the Content-Security-Policy to the relaxed variant
	// that allows inline styles and omits form-action.
	CSPRelaxed bool `env:"CSP_RELAXED"`
}

// GetStructuredConfig loads and merges configuration from all supported
// sources, in priority order:
//  1. environment variables (after loading an optional .env file)
//  2. command-line flags
//  3. JSON or YAML config file
//  4. defaults
//
// The first source that sets a field wins. The merged result is validated
// before being returned.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
