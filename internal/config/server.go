// SPDX-License-Identifier: MIT

// Package config loads process configuration for the spline editor hosts.
//
// The HTTP server reads environment variables (prefix SPLINED); the batch
// CLI reads an INI-style file with [Input], [Sampling] and [Output] sections.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every server variable, e.g. SPLINED_PORT.
const EnvPrefix = "SPLINED"

// Server configures cmd/splined.
type Server struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"5m"`
	MaxPoints       int           `envconfig:"MAX_POINTS" default:"256"`
	CanvasWidth     float64       `envconfig:"CANVAS_WIDTH" default:"640"`
	CanvasHeight    float64       `envconfig:"CANVAS_HEIGHT" default:"480"`
	MaxColumns      int           `envconfig:"MAX_COLUMNS" default:"4096"`
	HitRadius       float64       `envconfig:"HIT_RADIUS" default:"12"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	OriginPatterns  []string      `envconfig:"ORIGIN_PATTERNS" default:"localhost:5173,localhost:3000"`
}

// LoadServer reads Server from the environment and validates it.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the server cannot run with.
func (c *Server) Validate() error {
	switch {
	case c.Port < 0 || c.Port > 65535:
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	case c.SessionTTL <= 0:
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	case c.CleanupInterval <= 0:
		return fmt.Errorf("config: CLEANUP_INTERVAL must be positive, got %s", c.CleanupInterval)
	case c.MaxPoints < 1:
		return fmt.Errorf("config: MAX_POINTS must be >= 1, got %d", c.MaxPoints)
	case !(c.CanvasWidth > 0) || !(c.CanvasHeight > 0):
		return fmt.Errorf("config: canvas %gx%g must be positive", c.CanvasWidth, c.CanvasHeight)
	case c.MaxColumns < 2:
		return fmt.Errorf("config: MAX_COLUMNS must be >= 2, got %d", c.MaxColumns)
	case !(c.HitRadius > 0) || math.IsInf(c.HitRadius, 0):
		return fmt.Errorf("config: HIT_RADIUS must be positive and finite, got %g", c.HitRadius)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Addr returns the listen address.
func (c *Server) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// ParseLevel maps debug|info|warn|error to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: LOG_LEVEL %q: %w", s, err)
	}

	return lvl, nil
}
