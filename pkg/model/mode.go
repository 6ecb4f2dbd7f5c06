package model

import "strings"

// RenderMode selects the fidelity of the output.
type RenderMode string

const (
	// ModePreview targets a bounded on-screen container.
	ModePreview RenderMode = "preview"
	// ModeProduction targets a US Letter page for export and print.
	ModeProduction RenderMode = "production"
	// ModeEmail targets rich-text clipboard copies pasted into email clients.
	ModeEmail RenderMode = "email"
)

// DefaultRenderMode is used when the requested mode is missing or unknown.
const DefaultRenderMode = ModePreview

// RenderModes lists every supported mode.
func RenderModes() []RenderMode {
	return []RenderMode{ModePreview, ModeProduction, ModeEmail}
}

// Valid reports whether m is a supported mode.
func (m RenderMode) Valid() bool {
	switch m {
	case ModePreview, ModeProduction, ModeEmail:
		return true
	default:
		return false
	}
}

// ParseRenderMode resolves raw to a mode. Blank input resolves to the
// default without a correction; unknown input resolves to the default and
// returns a correction describing the substitution.
func ParseRenderMode(raw string) (RenderMode, *Correction) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultRenderMode, nil
	}
	if mode := RenderMode(value); mode.Valid() {
		return mode, nil
	}
	return DefaultRenderMode, &Correction{
		Field:    "mode",
		Value:    raw,
		Fallback: string(DefaultRenderMode),
		Reason:   ReasonUnknownValue,
	}
}
