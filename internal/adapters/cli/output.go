// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides output adapters for CLI operations.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/janderssonse/atlas/internal/domain"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when an unsupported output format is requested.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// maxCellWidth truncates long cells such as alternative spellings in text tables.
const maxCellWidth = 48

// OutputAdapter implements domain.OutputPort for CLI output.
type OutputAdapter struct {
	writer io.Writer
	format OutputFormat
	quiet  bool
}

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs a human-readable aligned table.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
	// YAMLFormat outputs machine-readable YAML.
	YAMLFormat
	// PlainFormat outputs tab-separated values without decoration.
	PlainFormat
)

// NewOutputAdapter creates a new output adapter with the specified configuration.
func NewOutputAdapter(format OutputFormat, quiet bool) *OutputAdapter {
	return NewOutputAdapterWithWriter(os.Stdout, format, quiet)
}

// NewOutputAdapterWithWriter creates a new output adapter with a custom writer for testing.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Format returns the configured output format.
func (o *OutputAdapter) Format() OutputFormat {
	return o.format
}

// Structured reports whether results are emitted as JSON or YAML documents.
func (o *OutputAdapter) Structured() bool {
	return o.format == JSONFormat || o.format == YAMLFormat
}

// Success outputs a success message with optional structured data.
func (o *OutputAdapter) Success(message string, data any) error {
	if o.quiet && data == nil {
		return nil
	}

	if o.Structured() && data != nil {
		return o.outputStructured(data)
	}

	if message != "" && !o.quiet {
		_, _ = fmt.Fprintln(o.writer, message)
	}

	return nil
}

// Error outputs an error message.
func (o *OutputAdapter) Error(message string) error {
	if o.quiet {
		return nil
	}

	if o.Structured() {
		return o.outputStructured(map[string]string{"error": message})
	}

	_, _ = fmt.Fprintf(o.writer, "Error: %s\n", message)

	return nil
}

// Info outputs an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.Structured() {
		return o.outputStructured(map[string]string{"info": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Table outputs tabular data.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.quiet {
		return nil
	}

	switch o.format {
	case JSONFormat, YAMLFormat:
		return o.outputStructured(map[string]any{
			"headers": headers,
			"rows":    rows,
		})
	case PlainFormat:
		for _, row := range rows {
			_, _ = fmt.Fprintln(o.writer, strings.Join(row, "\t"))
		}

		return nil
	case TextFormat:
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(headers))

		for i := range headers {
			if i >= len(row) {
				continue
			}

			cell := runewidth.Truncate(row[i], maxCellWidth, "…")
			cells[r][i] = cell
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", widths[i])
	}

	o.writeRow(headers, widths)
	o.writeRow(separators, widths)

	for _, row := range cells {
		o.writeRow(row, widths)
	}

	return nil
}

// IsQuiet returns true if output should be suppressed.
func (o *OutputAdapter) IsQuiet() bool {
	return o.quiet
}

func (o *OutputAdapter) writeRow(cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			padded[i] = cell
			continue
		}

		padded[i] = runewidth.FillRight(cell, widths[i])
	}

	_, _ = fmt.Fprintln(o.writer, strings.TrimRight(strings.Join(padded, "  "), " "))
}

// outputStructured outputs data as JSON or YAML.
func (o *OutputAdapter) outputStructured(data any) error {
	if o.format == YAMLFormat {
		encoder := yaml.NewEncoder(o.writer)
		encoder.SetIndent(2)

		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return nil
	}

	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "text", "table":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	case "plain", "tsv":
		return PlainFormat, nil
	default:
		return TextFormat, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// OutputFromFlags creates an OutputAdapter from the global CLI flags.
// JSON wins over YAML, which wins over plain.
func OutputFromFlags(writer io.Writer, jsonFlag, yamlFlag, plainFlag, quietFlag bool) *OutputAdapter {
	format := TextFormat

	switch {
	case jsonFlag:
		format = JSONFormat
	case yamlFlag:
		format = YAMLFormat
	case plainFlag:
		format = PlainFormat
	}

	return NewOutputAdapterWithWriter(writer, format, quietFlag)
}

var _ domain.OutputPort = (*OutputAdapter)(nil)
