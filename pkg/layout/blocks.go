package layout

import (
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Element roles used by every skeleton.
const (
	RolePage      = "page"
	RoleHeader    = "header"
	RoleContent   = "content"
	RoleBody      = "body"
	RoleFooter    = "footer"
	RoleWatermark = "watermark"
	RoleLogo      = "logo"
	RoleBrandName = "brand-name"
	RoleDate      = "date"
)

// bodyAreaPt is the minimum writing area of a paged letterhead.
const bodyAreaPt = 360.0

// Page wraps a letterhead skeleton in the document container. Paged modes
// size it to the full sheet and reserve a bottom band of one margin for the
// watermark so it never overlaps content.
func Page(c Context, children ...*markup.Node) *markup.Node {
	return container(c, true, children)
}

// Card wraps a signature skeleton. It matches Page except that paged modes
// do not stretch it to the sheet height.
func Card(c Context, children ...*markup.Node) *markup.Node {
	return container(c, false, children)
}

func container(c Context, sheet bool, children []*markup.Node) *markup.Node {
	m := c.Metrics
	st := c.TextStyle().
		Set("background-color", "#ffffff").
		Set("box-sizing", "border-box").
		Set("margin", "0 auto")
	if m.Scale.Paged() {
		st = st.Set("position", "relative").SetLength("width", m.Scale.Width())
		if sheet {
			st = st.SetLength("min-height", m.Scale.Height())
		}
		st = st.SetLength("padding-bottom", m.Margin).Set("overflow", "hidden")
	} else {
		st = st.Set("width", "100%").SetLength("max-width", m.Scale.Width())
	}

	page := markup.El("div", st, children...)
	page.SetAttr("data-role", RolePage).
		SetAttr("data-template", c.TemplateID).
		SetAttr("data-mode", string(c.Mode))
	return page.Append(Watermark(c))
}

// Header builds the header region with the given height. Skeletons that
// shrink the header (signatures) pass a scaled height; the same proportion
// applies in every mode.
func Header(tag string, height style.Length, st style.Style, children ...*markup.Node) *markup.Node {
	st = st.SetLength("height", height)
	return markup.El(tag, st, children...).SetAttr("data-role", RoleHeader)
}

// Content builds the main content region, padded by one margin token.
func Content(tag string, padding style.Length, st style.Style, children ...*markup.Node) *markup.Node {
	st = st.SetLength("padding", padding)
	return markup.El(tag, st, children...).SetAttr("data-role", RoleContent)
}

// BodyArea is the empty writing area of a letterhead. Email renders have no
// writing area.
func BodyArea(c Context) *markup.Node {
	if c.Email() {
		return nil
	}
	st := style.New("min-height", c.Metrics.Scale.Length(bodyAreaPt).String())
	return markup.El("div", st).SetAttr("data-role", RoleBody)
}

// Logo returns the logo image or nil when the brand has none.
func Logo(c Context, size style.Length) *markup.Node {
	if !c.Brand.HasLogo() {
		return nil
	}
	st := style.New(
		"display", "block",
		"height", size.String(),
		"width", "auto",
		"max-width", size.Scale(3).String(),
		"border", "0",
	)
	return markup.El("img", st).
		SetAttr("src", c.Brand.LogoURL).
		SetAttr("alt", c.Brand.Name).
		SetAttr("data-role", RoleLogo)
}

// BrandName renders the brand name as a headline.
func BrandName(c Context, color string, size style.Length) *markup.Node {
	return markup.El("div", c.HeadlineStyle(color, size), markup.Text(c.Brand.Name)).
		SetAttr("data-role", RoleBrandName)
}

// DateLine renders the caller supplied document date, or nil when unset.
func DateLine(c Context, align string) *markup.Node {
	if c.Custom.DocumentDate == "" {
		return nil
	}
	st := c.CaptionStyle(c.Brand.Colors.Secondary).
		Set("text-align", align).
		SetLength("margin-bottom", c.Metrics.Gap)
	return markup.El("div", st, markup.Text(c.Custom.DocumentDate)).SetAttr("data-role", RoleDate)
}

// Watermark renders the decorative brand-name overlay, or nil when disabled.
// Paged modes pin it inside the reserved bottom band; email renders flow it
// after the content because email clients ignore positioning.
func Watermark(c Context) *markup.Node {
	if !c.Custom.IncludeWatermark {
		return nil
	}
	m := c.Metrics
	st := style.New(
		"font-family", style.FontStack(c.Brand.Fonts.Headline),
		"font-size", m.HeadlineSize.String(),
		"font-weight", "700",
		"color", c.Brand.Colors.Secondary,
		"opacity", "0.12",
		"text-align", "center",
		"text-transform", "uppercase",
		"letter-spacing", "0.2em",
		"white-space", "nowrap",
		"overflow", "hidden",
		"pointer-events", "none",
		"user-select", "none",
	)
	if m.Scale.Paged() {
		st = st.Set("position", "absolute").
			Set("left", "0").
			Set("right", "0").
			Set("bottom", "0").
			SetLength("height", m.Margin).
			SetLength("line-height", m.Margin)
	} else {
		st = st.SetLength("padding-top", m.Gap)
	}
	return markup.El("div", st, markup.Text(c.Brand.Name)).
		SetAttr("data-role", RoleWatermark).
		SetAttr("aria-hidden", "true")
}

// FooterOptions tune the footer for a skeleton. Semantics (which fields are
// shown) always come from the customization.
type FooterOptions struct {
	Color   string
	Align   string
	Stacked bool
	Style   style.Style
}

// Footer renders the contact block according to the footer style: nothing
// for none, the contact summary for minimal and every non-empty field for
// full. It returns nil when there is nothing to show.
func Footer(c Context, opts FooterOptions) *markup.Node {
	var lines []model.ContactLine
	switch c.Custom.FooterStyle {
	case model.FooterNone:
		return nil
	case model.FooterMinimal:
		lines = c.Brand.Contact.Summary()
	default:
		lines = c.Brand.Contact.Lines()
	}
	if len(lines) == 0 {
		return nil
	}

	color := opts.Color
	if color == "" {
		color = c.Brand.Colors.Secondary
	}
	align := opts.Align
	if align == "" {
		align = "left"
	}
	st := c.CaptionStyle(color).Set("text-align", align).Merge(opts.Style)

	footer := markup.El("div", st).
		SetAttr("data-role", RoleFooter).
		SetAttr("data-footer-style", string(c.Custom.FooterStyle))

	for i, line := range lines {
		if opts.Stacked {
			footer.Append(markup.El("div", style.Style{}, markup.Text(line.Value)).SetAttr("data-field", string(line.Field)))
			continue
		}
		if i > 0 {
			footer.Append(markup.Text(" · "))
		}
		footer.Append(markup.El("span", style.Style{}, markup.Text(line.Value)).SetAttr("data-field", string(line.Field)))
	}
	return footer
}
