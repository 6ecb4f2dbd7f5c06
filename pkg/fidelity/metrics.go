package fidelity

import (
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Metrics are the resolved tokens a template renders with.
type Metrics struct {
	Scale Scale

	HeaderHeight style.Length
	Margin       style.Length
	Gap          style.Length
	Rule         style.Length
	LogoSize     style.Length

	BodySize     style.Length
	HeadlineSize style.Length
	CaptionSize  style.Length
	LineHeight   float64

	LetterSpacing style.Length
}

// Resolve maps custom through the token tables for mode. Enum values that
// are not in the tables resolve to their documented defaults.
func Resolve(custom model.CustomizationConfig, mode model.RenderMode) Metrics {
	scale := ScaleFor(mode)
	header := HeaderHeightPt(custom.HeaderHeight)
	types := typeScaleFor(custom.FontSize)

	return Metrics{
		Scale:         scale,
		HeaderHeight:  scale.Length(header),
		Margin:        scale.Length(MarginPt(custom.Margins)),
		Gap:           scale.Length(baseGap),
		Rule:          scale.Length(baseRule),
		LogoSize:      scale.Length(header * logoRatio),
		BodySize:      scale.Length(types.body),
		HeadlineSize:  scale.Length(types.headline),
		CaptionSize:   scale.Length(types.caption),
		LineHeight:    baseLineHeight,
		LetterSpacing: style.Em(letterSpacingFor(custom.LetterSpacing)),
	}
}
