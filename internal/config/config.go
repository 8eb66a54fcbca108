// Package config loads server configuration from environment variables.
// CLI flags take precedence over anything set here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the runtime configuration for the darkfluid server.
type Server struct {
	// Port the HTTP listener binds to.
	Port int `env:"DARKFLUID_PORT" envDefault:"8080"`
	// DataDir optionally overrides embedded content documents with
	// *.json files. Empty means embedded content only.
	DataDir string `env:"DARKFLUID_DATA_DIR"`
	// WarID is the war season identifier reported to clients.
	WarID int `env:"DARKFLUID_WAR_ID" envDefault:"801"`
	// WarStart is the war season start instant in RFC 3339 form, used to
	// compute timeSinceStart.
	WarStart string `env:"DARKFLUID_WAR_START" envDefault:"2024-01-23T12:05:13Z"`
}

// FromEnv parses a Server configuration from the process environment.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
