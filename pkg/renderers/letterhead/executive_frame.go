package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// ExecutiveFrame renders the document inside a primary-colour frame opened
// by a secondary-colour header strip.
func ExecutiveFrame(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(ExecutiveFrameID, brand, custom, mode)
	m := c.Metrics
	colors := c.Brand.Colors

	header := layout.Header("div", m.HeaderHeight, style.New(
		"box-sizing", "border-box",
		"background-color", colors.Secondary,
		"padding", style.Box(style.Length{}, m.Margin),
		"border-bottom", m.Rule.String()+" solid "+colors.Accent,
	), layout.BrandRow(c, layout.BrandRowOptions{NameColor: "#ffffff", Fill: true}))

	footer := layout.Footer(c, layout.FooterOptions{
		Align: "center",
		Color: colors.Text,
		Style: style.New(
			"border-top", m.Rule.Scale(0.5).String()+" solid "+colors.Secondary,
			"padding-top", m.Gap.String(),
		),
	})

	content := layout.Content("div", m.Margin, style.Style{},
		layout.DateLine(c, "right"),
		layout.BodyArea(c),
		footer,
	)

	frame := markup.El("div", style.New(
		"box-sizing", "border-box",
		"margin", m.Gap.String(),
		"border", m.Rule.String()+" solid "+colors.Primary,
	), header, content)

	return layout.Page(c, frame)
}
