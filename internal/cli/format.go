package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// formatter writes structured data in one output format.
type formatter interface {
	Format(w io.Writer, data any) error
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// Ensure formatters implement formatter.
var (
	_ formatter = jsonFormatter{}
	_ formatter = yamlFormatter{}
)

// newFormatter returns the structured formatter for format, or nil for text.
func newFormatter(format string) (formatter, error) {
	switch format {
	case formatJSON:
		return jsonFormatter{}, nil
	case formatYAML:
		return yamlFormatter{}, nil
	case formatText, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "o", formatText, "Output format: text, json or yaml")
}

// render writes data with the structured formatter for format,
// or calls text for the text format.
func render(w io.Writer, format string, data any, text func(io.Writer)) error {
	f, err := newFormatter(format)
	if err != nil {
		return err
	}
	if f == nil {
		text(w)
		return nil
	}
	return f.Format(w, data)
}
