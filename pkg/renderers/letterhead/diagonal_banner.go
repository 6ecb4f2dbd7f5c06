package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// DiagonalBanner renders a header split between a primary block and an
// accent tail joined by a diagonal wedge. Clients that drop gradients fall
// back to a solid accent wedge.
func DiagonalBanner(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(DiagonalBannerID, brand, custom, mode)
	m := c.Metrics
	colors := c.Brand.Colors

	block := layout.Cell(style.New(
		"width", "68%",
		"background-color", colors.Primary,
		"vertical-align", "middle",
		"padding", style.Box(style.Length{}, m.Gap, style.Length{}, m.Margin),
	), layout.BrandRow(c, layout.BrandRowOptions{NameColor: "#ffffff", Fill: true}))

	wedge := layout.Cell(style.New(
		"width", m.HeaderHeight.Scale(0.5).String(),
		"background-color", colors.Accent,
		"background-image", "linear-gradient(115deg, "+colors.Primary+" 50%, "+colors.Accent+" 50%)",
		"font-size", "0",
		"line-height", "0",
	))

	tail := layout.Cell(style.New("background-color", colors.Accent))

	header := layout.Header("div", m.HeaderHeight, style.New("box-sizing", "border-box"),
		layout.Table(style.New("height", "100%"), layout.Row(block, wedge, tail)),
	)

	footer := layout.Footer(c, layout.FooterOptions{
		Style: style.New(
			"border-left", m.Rule.Scale(2).String()+" solid "+colors.Accent,
			"padding-left", m.Gap.String(),
		),
	})

	content := layout.Content("div", m.Margin, style.Style{},
		layout.DateLine(c, "left"),
		layout.BodyArea(c),
		footer,
	)

	return layout.Page(c, header, content)
}
