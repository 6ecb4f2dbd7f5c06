package fidelity

import "github.com/goliatone/go-brandkit/pkg/model"

// Base tables, in production points. Letter spacing is em based and does not
// scale with the mode.

var headerHeights = map[model.HeaderHeight]float64{
	model.HeaderSmall:  72,
	model.HeaderMedium: 108,
	model.HeaderLarge:  144,
}

var margins = map[model.Margins]float64{
	model.MarginsNarrow:   36,
	model.MarginsStandard: 54,
	model.MarginsWide:     72,
}

type typeScale struct {
	body     float64
	headline float64
	caption  float64
}

var typeScales = map[model.FontSize]typeScale{
	model.FontSmall:  {body: 10, headline: 20, caption: 8},
	model.FontMedium: {body: 11, headline: 24, caption: 9},
	model.FontLarge:  {body: 13, headline: 28, caption: 10},
}

var letterSpacings = map[model.LetterSpacing]float64{
	model.SpacingTight:  -0.02,
	model.SpacingNormal: 0,
	model.SpacingWide:   0.06,
}

const (
	baseGap        = 12.0
	baseRule       = 2.0
	baseLineHeight = 1.45
	logoRatio      = 0.5
)

// HeaderHeightPt returns the base header height for h.
func HeaderHeightPt(h model.HeaderHeight) float64 {
	if v, ok := headerHeights[h]; ok {
		return v
	}
	return headerHeights[model.DefaultHeaderHeight]
}

// MarginPt returns the base margin for m.
func MarginPt(m model.Margins) float64 {
	if v, ok := margins[m]; ok {
		return v
	}
	return margins[model.DefaultMargins]
}

func typeScaleFor(f model.FontSize) typeScale {
	if v, ok := typeScales[f]; ok {
		return v
	}
	return typeScales[model.DefaultFontSize]
}

func letterSpacingFor(s model.LetterSpacing) float64 {
	if v, ok := letterSpacings[s]; ok {
		return v
	}
	return letterSpacings[model.DefaultLetterSpacing]
}
