package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// render writes v as JSON, YAML or TOML, or calls table for the default format.
func render(w io.Writer, format string, v interface{}, table func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		table(w)
		return nil
	}
}
