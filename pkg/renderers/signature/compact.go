package signature

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Compact renders a one-row signature: the logo cell and the details cell,
// ordered by the logo position. A centred logo stacks above the details.
func Compact(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(CompactID, brand, custom, mode)
	m := c.Metrics
	t := resolve(m)
	colors := c.Brand.Colors

	position := c.Custom.LogoPosition
	divider := "border-right"
	if position == model.LogoRight {
		divider = "border-left"
	}

	logoStyle := style.New(
		"vertical-align", "middle",
		"padding", style.Box(style.Length{}, t.padding),
	)
	if position == model.LogoCenter {
		logoStyle = logoStyle.Set("text-align", "center").
			Set("border-bottom", m.Rule.String()+" solid "+colors.Accent)
	} else {
		logoStyle = logoStyle.SetLength("width", t.logo).
			Set(divider, m.Rule.String()+" solid "+colors.Accent)
	}

	logo := layout.Logo(c, t.logo)
	if logo != nil && position == model.LogoCenter {
		logo.Style = logo.Style.Set("margin", "0 auto")
	}
	header := layout.Header("td", t.header, logoStyle, logo)

	detailsStyle := style.New("vertical-align", "middle")
	if position == model.LogoCenter {
		detailsStyle = detailsStyle.Set("text-align", "center")
	}
	align := "left"
	if position == model.LogoCenter {
		align = "center"
	}
	details := layout.Content("td", t.padding, detailsStyle,
		layout.BrandName(c, colors.Primary, t.headline),
		layout.Footer(c, layout.FooterOptions{Align: align, Stacked: true}),
	)

	var table *markup.Node
	switch position {
	case model.LogoCenter:
		table = layout.Table(style.Style{}, layout.Row(header), layout.Row(details))
	case model.LogoRight:
		table = layout.Table(style.Style{}, layout.Row(details, header))
	default:
		table = layout.Table(style.Style{}, layout.Row(header, details))
	}

	return layout.Card(c, table)
}
