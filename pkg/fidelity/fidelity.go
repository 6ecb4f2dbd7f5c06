// Package fidelity maps customization choices to concrete size, spacing and
// typography tokens for each render mode.
//
// All tables are expressed once in production points. Other modes multiply
// every length by their FontScaleFactor, so the proportions between any two
// tokens are identical across modes up to rounding.
package fidelity

import (
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Letter page geometry in points (8.5in x 11in).
const (
	LetterWidthPt  = 612.0
	LetterHeightPt = 792.0
)

// PreviewWidthPx is the maximum width of the on-screen preview box.
const PreviewWidthPx = 480.0

// EmailWidthPx is the conventional maximum width of an email body.
const EmailWidthPx = 600.0

// Scale describes the base unit and container of a render mode.
type Scale struct {
	Mode            model.RenderMode
	Unit            string
	ContainerWidth  float64
	ContainerHeight float64
	FontScaleFactor float64
}

// Length converts a base-table value (production points) to this scale.
func (s Scale) Length(base float64) style.Length {
	return style.Length{Value: style.Round(base * s.FontScaleFactor), Unit: s.Unit}
}

// Width returns the container width as a length.
func (s Scale) Width() style.Length {
	return style.Length{Value: style.Round(s.ContainerWidth), Unit: s.Unit}
}

// Height returns the container height as a length. Zero means the
// container grows with its content.
func (s Scale) Height() style.Length {
	return style.Length{Value: style.Round(s.ContainerHeight), Unit: s.Unit}
}

// Paged reports whether the mode renders onto a fixed page box.
func (s Scale) Paged() bool {
	return s.ContainerHeight > 0
}

var scales = map[model.RenderMode]Scale{
	model.ModeProduction: {
		Mode:            model.ModeProduction,
		Unit:            style.UnitPt,
		ContainerWidth:  LetterWidthPt,
		ContainerHeight: LetterHeightPt,
		FontScaleFactor: 1,
	},
	model.ModePreview: {
		Mode:            model.ModePreview,
		Unit:            style.UnitPx,
		ContainerWidth:  PreviewWidthPx,
		ContainerHeight: style.Round(LetterHeightPt * PreviewWidthPx / LetterWidthPt),
		FontScaleFactor: PreviewWidthPx / LetterWidthPt,
	},
	model.ModeEmail: {
		Mode:            model.ModeEmail,
		Unit:            style.UnitPx,
		ContainerWidth:  EmailWidthPx,
		FontScaleFactor: 1,
	},
}

// ScaleFor returns the scale for mode. Unknown modes use the preview scale.
func ScaleFor(mode model.RenderMode) Scale {
	if s, ok := scales[mode]; ok {
		return s
	}
	return scales[model.DefaultRenderMode]
}
