package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies a widget file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension. JSONC files decode
// as JSON once comments and trailing commas are stripped.
func FormatFromPath(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json", ".jsonc":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Parse decodes and validates a single widget file. Unknown keys are errors.
func Parse(format Format, data []byte) (Document, error) {
	doc, err := decode(format, data)
	if err != nil {
		return Document{}, err
	}
	if err := newValidator().Struct(doc); err != nil {
		return Document{}, fmt.Errorf("document: validate: %w", err)
	}
	return doc, nil
}

func decode(format Format, data []byte) (Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("document: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("document: decode json: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("document: unsupported format %q", format)
	}
	return doc, nil
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Encode writes doc in format. The output parses back to an equal document.
func Encode(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("document: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("document: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("document: unsupported format %q", format)
	}
}
