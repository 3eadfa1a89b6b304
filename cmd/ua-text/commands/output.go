package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

// texter is implemented by reports that have a human-readable form.
type texter interface {
	Text() string
}

// Render writes v to w in the given format. Text output requires v to be a
// texter or a slice of texters.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case FormatText:
		return renderText(w, v)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func renderText(w io.Writer, v any) error {
	switch t := v.(type) {
	case texter:
		_, err := fmt.Fprintln(w, t.Text())
		return err
	case []URLReport:
		for _, r := range t {
			if _, err := fmt.Fprintln(w, r.Text()); err != nil {
				return err
			}
		}
		return nil
	case []StatusReport:
		for _, r := range t {
			if _, err := fmt.Fprintln(w, r.Text()); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("no text form for %T", v)
	}
}
