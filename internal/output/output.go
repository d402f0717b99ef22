package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatJSON

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use json or yaml)", s)
	}
}

// Print serializes v to stdout in the current output format.
// A nil v prints the literal null.
func Print(v interface{}) error {
	return Encode(os.Stdout, v, OutputFormat, PrettyOutput)
}

// Encode writes v to w as a single JSON or YAML document.
func Encode(w io.Writer, v interface{}, format Format, pretty bool) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, v, pretty)
	case FormatYAML:
		return encodeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func encodeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
