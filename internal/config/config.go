// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"OPAGE_DB_PATH" envDefault:"./data/opage.db"`
	ServerHost string `env:"OPAGE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"OPAGE_SERVER_PORT" envDefault:"3000"`
	Env        string `env:"OPAGE_ENV" envDefault:"development"`
	LogLevel   string `env:"OPAGE_LOG_LEVEL" envDefault:"info"`

	// CORS configuration. Comma-separated origins; "*" allows any
	// origin, which is the default since the builder frontend runs on
	// its own dev server and the API carries no credentials.
	CORSAllowedOrigins string `env:"OPAGE_CORS_ORIGINS" envDefault:"*"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// AllowedOrigins returns the configured CORS origins as a slice.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("OPAGE_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	return cfg, nil
}
