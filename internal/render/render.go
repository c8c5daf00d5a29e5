// Package render writes command results to an output stream as text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Table is a result made of named columns. Rows carries the text cells and
// Records the structured form written by the JSON and YAML encoders.
type Table struct {
	Headers []string
	Rows    [][]string
	Records any
}

// Renderer writes a Table in one output format.
type Renderer struct {
	format string
	out    io.Writer
}

func New(format string, out io.Writer) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Renderer{format: format, out: out}, nil
}

func (r *Renderer) Render(table Table) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(table.Records)
	case FormatYAML:
		return r.renderYAML(table.Records)
	default:
		return r.renderText(table)
	}
}

func (r *Renderer) renderText(table Table) error {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	if len(table.Headers) > 0 {
		fmt.Fprintln(w, strings.Join(table.Headers, "\t"))
	}
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func (r *Renderer) renderJSON(records any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode json output: %w", err)
	}

	return nil
}

func (r *Renderer) renderYAML(records any) error {
	b, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode yaml output: %w", err)
	}

	_, err = r.out.Write(b)
	return err
}
