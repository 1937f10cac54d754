// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"
)

// Input, output and sampling mode names accepted in CLI files.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"

	ModePolyline = "polyline"
	ModeColumns  = "columns"
)

// ExampleCLIFile documents every key understood by ReadCLI.
const ExampleCLIFile = `[Input]

# Either read points from a file...
# File = points.txt
# Format = table
# XCol = 0
# YCol = 1

# ...or generate them (sine | chirp | pulse | random).
Fixture = sine
Points = 12
Seed = 1

[Sampling]

# polyline: per-segment sampling, columns: one sample per column.
Mode = polyline
MinSteps = 30
PixelsPerStep = 5
Columns = 640

# Adjacent abscissas closer than this are rejected as duplicates.
MinStep = 0

[Output]

Format = table
# File = out.txt
`

// CLI configures cmd/splinecli.
type CLI struct {
	Input struct {
		File    string
		Format  string
		XCol    int
		YCol    int
		Fixture string
		Points  int
		Seed    int64
	}
	Sampling struct {
		Mode          string
		MinSteps      int
		PixelsPerStep float64
		Columns       int
		MinStep       float64
	}
	Output struct {
		Format string
		File   string
	}
}

// DefaultCLI returns the configuration used for keys a file leaves unset.
func DefaultCLI() *CLI {
	cfg := &CLI{}
	cfg.Input.Format = FormatTable
	cfg.Input.XCol, cfg.Input.YCol = 0, 1
	cfg.Input.Fixture = "sine"
	cfg.Input.Points = 12
	cfg.Input.Seed = 1
	cfg.Sampling.Mode = ModePolyline
	cfg.Sampling.MinSteps = 30
	cfg.Sampling.PixelsPerStep = 5
	cfg.Sampling.Columns = 640
	cfg.Output.Format = FormatTable

	return cfg
}

// ReadCLI reads path over DefaultCLI and validates the result.
func ReadCLI(path string) (*CLI, error) {
	cfg := DefaultCLI()
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseCLI is ReadCLI over an in-memory document.
func ParseCLI(doc string) (*CLI, error) {
	cfg := DefaultCLI()
	if err := gcfg.ReadStringInto(cfg, doc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *CLI) ValidInput() bool {
	if c.Input.File == "" {
		return c.Input.Fixture != "" && c.Input.Points >= 1
	}

	return validFormat(c.Input.Format) && c.Input.XCol >= 0 && c.Input.YCol >= 0 &&
		c.Input.XCol != c.Input.YCol
}

func (c *CLI) ValidSampling() bool {
	switch c.Sampling.Mode {
	case ModePolyline:
		return c.Sampling.MinSteps >= 1 && c.Sampling.PixelsPerStep > 0
	case ModeColumns:
		return c.Sampling.Columns >= 2
	default:
		return false
	}
}

func (c *CLI) ValidMinStep() bool {
	return c.Sampling.MinStep >= 0 && !math.IsInf(c.Sampling.MinStep, 0)
}

func (c *CLI) ValidOutput() bool { return validFormat(c.Output.Format) }

// Validate reports the first invalid section.
func (c *CLI) Validate() error {
	switch {
	case !c.ValidInput():
		return fmt.Errorf("config: invalid [Input]: need File with Format table|yaml and distinct columns, or Fixture with Points >= 1")
	case !c.ValidSampling():
		return fmt.Errorf("config: invalid [Sampling] for mode %q", c.Sampling.Mode)
	case !c.ValidMinStep():
		return fmt.Errorf("config: invalid 'MinStep' value %g", c.Sampling.MinStep)
	case !c.ValidOutput():
		return fmt.Errorf("config: invalid [Output] format %q", c.Output.Format)
	}

	return nil
}

func validFormat(f string) bool { return f == FormatTable || f == FormatYAML }
