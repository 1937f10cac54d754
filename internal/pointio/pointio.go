// SPDX-License-Identifier: MIT

// Package pointio reads and writes control-point files for the CLI.
//
// Two formats are supported:
//
//	table  whitespace-separated numeric columns, one point per row
//	yaml   a document with a "points" list of {x, y} mappings
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/phil-mansfield/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvspline/spline"
)

// Supported format names.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ErrFormat indicates an unknown format name.
var ErrFormat = errors.New("pointio: unknown format")

// Document is the YAML file layout.
type Document struct {
	Points []spline.Point `yaml:"points"`
}

// ReadTable reads columns xCol and yCol of a whitespace-separated table.
func ReadTable(path string, xCol, yCol int) ([]spline.Point, error) {
	cols, err := table.ReadTable(path, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, fmt.Errorf("pointio: read table %s: %w", path, err)
	}
	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("pointio: %s: column lengths %d and %d differ", path, len(xs), len(ys))
	}

	pts := make([]spline.Point, len(xs))
	for i := range pts {
		pts[i] = spline.Point{X: xs[i], Y: ys[i]}
	}

	return pts, nil
}

// WriteTable writes one "x y" row per point with full float precision.
func WriteTable(w io.Writer, pts []spline.Point) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, p := range pts {
		buf = strconv.AppendFloat(buf[:0], p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("pointio: write table: %w", err)
		}
	}

	return bw.Flush()
}

// DecodeYAML reads a Document from r.
func DecodeYAML(r io.Reader) ([]spline.Point, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("pointio: decode yaml: %w", err)
	}

	return doc.Points, nil
}

// EncodeYAML writes pts as a Document.
func EncodeYAML(w io.Writer, pts []spline.Point) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Points: pts}); err != nil {
		return fmt.Errorf("pointio: encode yaml: %w", err)
	}

	return enc.Close()
}

// ReadFile reads path in the given format. Columns apply to tables only.
func ReadFile(path, format string, xCol, yCol int) ([]spline.Point, error) {
	switch format {
	case FormatTable:
		return ReadTable(path, xCol, yCol)
	case FormatYAML:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("pointio: %w", err)
		}
		defer f.Close()

		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Write encodes pts to w in the given format.
func Write(w io.Writer, format string, pts []spline.Point) error {
	switch format {
	case FormatTable:
		return WriteTable(w, pts)
	case FormatYAML:
		return EncodeYAML(w, pts)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}
