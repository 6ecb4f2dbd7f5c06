package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// ClassicCentered renders a white header with the name in the primary colour,
// closed by a double rule, with a centred date line and footer.
func ClassicCentered(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(ClassicCenteredID, brand, custom, mode)
	m := c.Metrics

	header := layout.Header("div", m.HeaderHeight, style.New(
		"box-sizing", "border-box",
		"padding", style.Box(style.Length{}, m.Margin),
		"text-align", "center",
		"border-bottom", m.Rule.Scale(2).String()+" double "+c.Brand.Colors.Secondary,
	), layout.BrandRow(c, layout.BrandRowOptions{NameColor: c.Brand.Colors.Primary, Fill: true}))

	footer := layout.Footer(c, layout.FooterOptions{
		Align: "center",
		Style: style.New(
			"border-top", "1px solid "+c.Brand.Colors.Accent,
			"padding-top", m.Gap.String(),
		),
	})

	content := layout.Content("div", m.Margin, style.Style{},
		layout.DateLine(c, "center"),
		layout.BodyArea(c),
		footer,
	)

	return layout.Page(c, header, content)
}
