package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// ModernHeader renders a full-width primary band with an accent underline.
func ModernHeader(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(ModernHeaderID, brand, custom, mode)
	m := c.Metrics

	header := layout.Header("div", m.HeaderHeight, style.New(
		"box-sizing", "border-box",
		"background-color", c.Brand.Colors.Primary,
		"padding", style.Box(style.Length{}, m.Margin),
		"border-bottom", m.Rule.String()+" solid "+c.Brand.Colors.Accent,
	), layout.BrandRow(c, layout.BrandRowOptions{NameColor: "#ffffff", Fill: true}))

	footer := layout.Footer(c, layout.FooterOptions{
		Style: style.New(
			"border-top", "1px solid "+c.Brand.Colors.Secondary,
			"padding-top", m.Gap.String(),
		),
	})

	content := layout.Content("div", m.Margin, style.Style{},
		layout.DateLine(c, "right"),
		layout.BodyArea(c),
		footer,
	)

	return layout.Page(c, header, content)
}
