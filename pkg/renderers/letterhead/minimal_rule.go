package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// MinimalRule renders a plain white header over a thin accent rule. Only the
// brand name carries the primary colour.
func MinimalRule(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(MinimalRuleID, brand, custom, mode)
	m := c.Metrics

	header := layout.Header("div", m.HeaderHeight, style.New(
		"box-sizing", "border-box",
		"padding", style.Box(style.Length{}, m.Margin),
		"border-bottom", m.Rule.Scale(0.5).String()+" solid "+c.Brand.Colors.Accent,
	), layout.BrandRow(c, layout.BrandRowOptions{
		NameColor: c.Brand.Colors.Primary,
		NameSize:  m.HeadlineSize.Scale(0.85),
		Fill:      true,
	}))

	content := layout.Content("div", m.Margin, style.Style{},
		layout.DateLine(c, "left"),
		layout.BodyArea(c),
		layout.Footer(c, layout.FooterOptions{}),
	)

	return layout.Page(c, header, content)
}
