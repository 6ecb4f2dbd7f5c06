package signature

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Banner renders a stacked signature: a primary band with the brand row,
// an accent rule and the contact line.
func Banner(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(BannerID, brand, custom, mode)
	m := c.Metrics
	t := resolve(m)
	colors := c.Brand.Colors

	header := layout.Header("td", t.header, style.New(
		"background-color", colors.Primary,
		"vertical-align", "middle",
		"padding", style.Box(style.Length{}, t.padding),
	), layout.BrandRow(c, layout.BrandRowOptions{
		NameColor: "#ffffff",
		NameSize:  t.headline,
		LogoSize:  t.logo,
	}))

	rule := layout.Cell(style.New(
		"height", m.Rule.String(),
		"background-color", colors.Accent,
		"font-size", "0",
		"line-height", "0",
	))

	content := layout.Content("td", t.padding, style.Style{},
		layout.Footer(c, layout.FooterOptions{}),
	)

	table := layout.Table(style.New("border", "1px solid "+colors.Secondary),
		layout.Row(header),
		layout.Row(rule),
		layout.Row(content),
	)
	return layout.Card(c, table)
}
