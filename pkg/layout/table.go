package layout

import (
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Table builds a presentation table. Skeletons use tables for every
// multi-column arrangement so output stays readable in email clients and
// document converters.
func Table(st style.Style, rows ...*markup.Node) *markup.Node {
	st = st.Set("border-collapse", "collapse")
	if _, ok := st.Get("width"); !ok {
		st = st.Set("width", "100%")
	}
	return markup.El("table", st, rows...).
		SetAttr("role", "presentation").
		SetAttr("cellpadding", "0").
		SetAttr("cellspacing", "0").
		SetAttr("border", "0")
}

// Row builds a table row.
func Row(cells ...*markup.Node) *markup.Node {
	return markup.El("tr", style.Style{}, cells...)
}

// Cell builds a table cell.
func Cell(st style.Style, children ...*markup.Node) *markup.Node {
	return markup.El("td", st, children...)
}

// BrandRowOptions tune the brand row for a skeleton.
type BrandRowOptions struct {
	NameColor string
	NameSize  style.Length
	LogoSize  style.Length
	// Fill stretches the row to the height of its container.
	Fill bool
}

// BrandRow places the logo and brand name according to the logo position:
// logo then name for left, name then logo for right, and both stacked and
// centred for center. Without a logo only the name cell is rendered.
func BrandRow(c Context, opts BrandRowOptions) *markup.Node {
	m := c.Metrics
	logoSize := opts.LogoSize
	if logoSize.IsZero() {
		logoSize = m.LogoSize
	}
	nameColor := opts.NameColor
	if nameColor == "" {
		nameColor = c.Brand.Colors.Primary
	}

	logo := Logo(c, logoSize)
	name := BrandName(c, nameColor, opts.NameSize)
	cellStyle := style.New("vertical-align", "middle")

	var row *markup.Node
	switch c.Custom.LogoPosition {
	case model.LogoCenter:
		if logo != nil {
			logo.Style = logo.Style.Set("margin", "0 auto "+m.Gap.String())
		}
		row = Row(Cell(cellStyle.Set("text-align", "center"), logo, name))
	case model.LogoRight:
		var logoCell *markup.Node
		if logo != nil {
			logoCell = Cell(cellStyle.Set("text-align", "right").
				SetLength("width", logoSize).
				SetLength("padding-left", m.Gap), logo)
			logo.Style = logo.Style.Set("margin-left", "auto")
		}
		row = Row(Cell(cellStyle.Set("text-align", "left"), name), logoCell)
	default:
		var logoCell *markup.Node
		if logo != nil {
			logoCell = Cell(cellStyle.
				SetLength("width", logoSize).
				SetLength("padding-right", m.Gap), logo)
		}
		row = Row(logoCell, Cell(cellStyle.Set("text-align", "left"), name))
	}

	st := style.Style{}
	if opts.Fill {
		st = st.Set("height", "100%")
	}
	return Table(st, row)
}
