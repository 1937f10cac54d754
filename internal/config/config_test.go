// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvspline/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	cfg, err := config.LoadServer()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 256, cfg.MaxPoints)
	assert.Equal(t, 4096, cfg.MaxColumns)
	assert.Equal(t, 12.0, cfg.HitRadius)
	assert.Equal(t, []string{"localhost:5173", "localhost:3000"}, cfg.OriginPatterns)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadServer_Env(t *testing.T) {
	t.Setenv("SPLINED_PORT", "9000")
	t.Setenv("SPLINED_SESSION_TTL", "90s")
	t.Setenv("SPLINED_CANVAS_WIDTH", "1024")
	t.Setenv("SPLINED_LOG_LEVEL", "debug")

	cfg, err := config.LoadServer()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)
	assert.Equal(t, 1024.0, cfg.CanvasWidth)

	lvl, err := config.ParseLevel(cfg.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadServer_Invalid(t *testing.T) {
	cases := map[string]string{
		"SPLINED_MAX_POINTS":   "0",
		"SPLINED_CANVAS_WIDTH": "-1",
		"SPLINED_LOG_LEVEL":    "loud",
		"SPLINED_PORT":         "not-a-number",
		"SPLINED_MAX_COLUMNS":  "1",
		"SPLINED_HIT_RADIUS":   "0",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := config.LoadServer()
			assert.Error(t, err)
		})
	}
}

func TestParseCLI_Example(t *testing.T) {
	cfg, err := config.ParseCLI(config.ExampleCLIFile)
	require.NoError(t, err)
	assert.Equal(t, "sine", cfg.Input.Fixture)
	assert.Equal(t, 12, cfg.Input.Points)
	assert.Equal(t, config.ModePolyline, cfg.Sampling.Mode)
	assert.Equal(t, 5.0, cfg.Sampling.PixelsPerStep)
	assert.Equal(t, config.FormatTable, cfg.Output.Format)
}

func TestReadCLI_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ini")
	doc := "[Input]\nFile = pts.yaml\nFormat = yaml\n[Sampling]\nMode = columns\nColumns = 8\n[Output]\nFormat = yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.ReadCLI(path)
	require.NoError(t, err)
	assert.Equal(t, "pts.yaml", cfg.Input.File)
	assert.Equal(t, 1, cfg.Input.YCol, "default kept")
	assert.Equal(t, 8, cfg.Sampling.Columns)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}

func TestParseCLI_Invalid(t *testing.T) {
	cases := map[string]string{
		"no input":      "[Input]\nFixture =\n",
		"same columns":  "[Input]\nFile = a\nXCol = 1\nYCol = 1\n",
		"bad mode":      "[Sampling]\nMode = spiral\n",
		"one column":    "[Sampling]\nMode = columns\nColumns = 1\n",
		"negative step": "[Sampling]\nMinStep = -1\n",
		"infinite step": "[Sampling]\nMinStep = +Inf\n",
		"bad output":    "[Output]\nFormat = csv\n",
		"unknown key":   "[Input]\nColour = red\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseCLI(doc)
			assert.Error(t, err)
		})
	}
}
