// Package profile decodes brand profiles from JSON or YAML, validates them
// against an embedded OpenAPI 3 component schema and resolves theme-manifest
// presets into brand identities.
//
// Schema problems are reported as Issues and never stop decoding: the
// engine's own normalisation replaces any value it cannot use.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandkit/pkg/engine"
	"github.com/goliatone/go-brandkit/pkg/model"
)

// Format is a profile encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned when a format cannot be determined.
var ErrUnknownFormat = errors.New("profile: unknown format")

// Profile is a stored brand profile: the brand identity plus the preferred
// template, mode and customization for its documents. Theme and Variant name
// an optional preset applied beneath the brand values.
type Profile struct {
	ID            string                    `json:"id,omitempty" yaml:"id,omitempty"`
	TemplateID    string                    `json:"templateId,omitempty" yaml:"templateId,omitempty"`
	Mode          string                    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Theme         string                    `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variant       string                    `json:"variant,omitempty" yaml:"variant,omitempty"`
	Brand         model.BrandIdentity       `json:"brand" yaml:"brand"`
	Customization model.CustomizationConfig `json:"customization" yaml:"customization"`
}

// Request converts the profile into an engine request.
func (p Profile) Request() engine.Request {
	return engine.Request{
		TemplateID: p.TemplateID,
		Brand:      p.Brand,
		Custom:     p.Customization,
		Mode:       p.Mode,
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses data and validates it against the BrandProfile schema.
// Syntax errors and non-object documents return an error; schema violations
// are returned as issues alongside the best-effort profile.
func Decode(data []byte, format Format) (Profile, []Issue, error) {
	canonical, raw, err := toJSON(data, format)
	if err != nil {
		return Profile{}, nil, err
	}

	issues, err := Validate(SchemaBrandProfile, raw)
	if err != nil {
		return Profile{}, nil, err
	}

	var p Profile
	if err := json.Unmarshal(canonical, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Profile{}, nil, fmt.Errorf("profile: decode: %w", err)
		}
	}
	return p, issues, nil
}

// Encode serialises a profile in the given format.
func Encode(p Profile, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("profile: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, fmt.Errorf("profile: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("profile: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// toJSON returns the canonical JSON encoding of data and its generic decoded
// form. YAML documents are converted so both formats validate identically.
func toJSON(data []byte, format Format) ([]byte, map[string]any, error) {
	var decoded any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, nil, fmt.Errorf("profile: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, nil, fmt.Errorf("profile: parse yaml: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	canonical, err := json.Marshal(decoded)
	if err != nil {
		return nil, nil, fmt.Errorf("profile: convert to json: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(canonical, &raw); err != nil {
		return nil, nil, errors.New("profile: document must be an object")
	}
	if raw == nil {
		return nil, nil, errors.New("profile: document is empty")
	}
	return canonical, raw, nil
}
