// Package config collects the environment-driven settings for the server.
// Reading the environment is separated from logging about it: FromEnv
// records warnings for main to emit once the logger exists.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Version is reported by the health endpoint and the startup log.
const Version = "1.0.0"

// Log encodings understood by the logger.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultAddr    = "0.0.0.0:8000"
	DefaultBackend = "memory"
)

// DefaultCORSOrigins is the browser allow-list: local development plus the
// deployed frontends. Entries may carry a single '*' wildcard.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"https://proteinlab-a4nqpz1f8-donalds-projects-57c2319a.vercel.app",
	"https://*.vercel.app",
}

// Config is everything main needs to assemble the server.
type Config struct {
	Addr         string
	LogLevel     zapcore.Level
	LogEncoding  string
	StoreBackend string
	CORSOrigins  []string

	// Warnings holds fallback notices collected while reading the
	// environment, logged by main after the logger is up.
	Warnings []string
}

// FromEnv reads the PROTEINLAB_* variables, falling back to defaults for
// anything unset or unparseable. It never fails; bad values surface as
// Warnings instead.
func FromEnv() Config {
	cfg := Config{
		Addr:         DefaultAddr,
		LogLevel:     zapcore.InfoLevel,
		LogEncoding:  EncodingConsole,
		StoreBackend: DefaultBackend,
		CORSOrigins:  DefaultCORSOrigins,
	}

	if addr := os.Getenv("PROTEINLAB_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if raw := os.Getenv("PROTEINLAB_LOG_LEVEL"); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("Invalid PROTEINLAB_LOG_LEVEL %q, using info", raw))
		} else {
			cfg.LogLevel = level
		}
	}

	if encoding := os.Getenv("PROTEINLAB_LOG_ENCODING"); encoding != "" {
		switch encoding {
		case EncodingConsole, EncodingJSON:
			cfg.LogEncoding = encoding
		default:
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("Invalid PROTEINLAB_LOG_ENCODING %q, using console", encoding))
		}
	}

	// Backend names are validated by the store constructor.
	if backend := os.Getenv("PROTEINLAB_STORE"); backend != "" {
		cfg.StoreBackend = backend
	}

	if origins := os.Getenv("PROTEINLAB_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitOrigins(origins)
	}

	return cfg
}

// splitOrigins parses a comma-separated origin list, trimming whitespace and
// dropping empty entries so trailing commas are harmless.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return DefaultCORSOrigins
	}
	return origins
}
