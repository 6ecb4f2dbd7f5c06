package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// sidebarWidthPt is the base width of the coloured column.
const sidebarWidthPt = 132.0

// SidebarAccent renders a two-column table: a primary sidebar carrying the
// stacked contact details, and the main column with header and body.
func SidebarAccent(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node {
	c := layout.NewContext(SidebarAccentID, brand, custom, mode)
	m := c.Metrics
	sidebarWidth := m.Scale.Length(sidebarWidthPt)

	accentBar := markup.El("div", style.New(
		"width", m.Gap.Scale(3).String(),
		"height", m.Rule.Scale(2).String(),
		"background-color", c.Brand.Colors.Accent,
		"margin-bottom", m.Gap.String(),
		"font-size", "0",
		"line-height", "0",
	))

	sidebar := layout.Cell(style.New(
		"width", sidebarWidth.String(),
		"background-color", c.Brand.Colors.Primary,
		"vertical-align", "bottom",
		"padding", style.Box(m.Margin, m.Gap.Scale(1.5)),
	),
		accentBar,
		layout.Footer(c, layout.FooterOptions{Color: "#ffffff", Stacked: true}),
	)

	header := layout.Header("div", m.HeaderHeight, style.New(
		"box-sizing", "border-box",
		"padding", style.Box(style.Length{}, m.Margin),
		"border-bottom", m.Rule.String()+" solid "+c.Brand.Colors.Accent,
	), layout.BrandRow(c, layout.BrandRowOptions{Fill: true}))

	content := layout.Content("div", m.Margin, style.Style{},
		layout.DateLine(c, "right"),
		layout.BodyArea(c),
	)

	main := layout.Cell(style.New("vertical-align", "top"), header, content)

	tableStyle := style.Style{}
	if m.Scale.Paged() {
		tableStyle = tableStyle.SetLength("height", m.Scale.Height().Add(m.Margin.Scale(-1)))
	}

	return layout.Page(c, layout.Table(tableStyle, layout.Row(sidebar, main)))
}
