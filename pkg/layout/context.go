// Package layout holds the structural pieces shared by every template
// skeleton: the page container, header and content regions, the brand row,
// the contact footer, the date line and the watermark.
//
// Customization semantics live here so that every skeleton honours them the
// same way; skeletons only decide where the pieces go.
package layout

import (
	"strconv"

	"github.com/goliatone/go-brandkit/pkg/fidelity"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Context carries normalised inputs and resolved tokens for one render.
type Context struct {
	TemplateID string
	Brand      model.BrandIdentity
	Custom     model.CustomizationConfig
	Mode       model.RenderMode
	Metrics    fidelity.Metrics
}

// NewContext normalises the inputs and resolves fidelity tokens. Inputs that
// were already normalised pass through unchanged.
func NewContext(templateID string, brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) Context {
	brand, _ = brand.Normalize()
	custom, _ = custom.Normalize()
	if !mode.Valid() {
		mode = model.DefaultRenderMode
	}
	return Context{
		TemplateID: templateID,
		Brand:      brand,
		Custom:     custom,
		Mode:       mode,
		Metrics:    fidelity.Resolve(custom, mode),
	}
}

// Email reports whether the render targets email clients.
func (c Context) Email() bool {
	return c.Mode == model.ModeEmail
}

// TextStyle is the base body typography.
func (c Context) TextStyle() style.Style {
	m := c.Metrics
	return style.New(
		"font-family", style.FontStack(c.Brand.Fonts.Body),
		"font-size", m.BodySize.String(),
		"line-height", formatFloat(m.LineHeight),
		"color", c.Brand.Colors.Text,
		"letter-spacing", m.LetterSpacing.String(),
	)
}

// HeadlineStyle is the typography used for the brand name.
func (c Context) HeadlineStyle(color string, size style.Length) style.Style {
	if size.IsZero() {
		size = c.Metrics.HeadlineSize
	}
	return style.New(
		"margin", "0",
		"font-family", style.FontStack(c.Brand.Fonts.Headline),
		"font-size", size.String(),
		"font-weight", "700",
		"line-height", "1.15",
		"color", color,
		"letter-spacing", c.Metrics.LetterSpacing.String(),
	)
}

// CaptionStyle is the small typography used for footers and date lines.
func (c Context) CaptionStyle(color string) style.Style {
	return style.New(
		"font-family", style.FontStack(c.Brand.Fonts.Body),
		"font-size", c.Metrics.CaptionSize.String(),
		"line-height", formatFloat(c.Metrics.LineHeight),
		"color", color,
		"letter-spacing", c.Metrics.LetterSpacing.String(),
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(style.Round(v), 'f', -1, 64)
}
