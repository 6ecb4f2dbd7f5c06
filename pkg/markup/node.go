package markup

import (
	"html"
	"io"
	"strings"

	"github.com/goliatone/go-brandkit/pkg/style"
)

// Attr is a single element attribute. Attributes render in insertion order.
type Attr struct {
	Name  string
	Value string
}

// Node is an element or a text leaf. Text nodes have an empty Tag.
type Node struct {
	Tag      string
	Attrs    []Attr
	Style    style.Style
	Text     string
	Children []*Node
}

var voidElements = map[string]struct{}{
	"img":  {},
	"br":   {},
	"hr":   {},
	"meta": {},
}

// El builds an element. Nil children are skipped so optional blocks can be
// passed inline.
func El(tag string, st style.Style, children ...*Node) *Node {
	n := &Node{Tag: strings.ToLower(strings.TrimSpace(tag)), Style: st}
	return n.Append(children...)
}

// Text builds a text leaf. The value is escaped on render.
func Text(value string) *Node {
	return &Node{Text: value}
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == ""
}

// Append adds non-nil children and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			continue
		}
		n.Children = append(n.Children, child)
	}
	return n
}

// SetAttr assigns an attribute, replacing an existing value, and returns n.
func (n *Node) SetAttr(name, value string) *Node {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return n
	}
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Render writes the node as HTML.
func (n *Node) Render(w io.Writer) error {
	var b strings.Builder
	n.write(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the node as HTML.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.IsText() {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		writeAttr(b, attr.Name, attr.Value)
	}
	if !n.Style.IsZero() {
		writeAttr(b, "style", n.Style.String())
	}
	b.WriteByte('>')

	if _, void := voidElements[n.Tag]; void {
		return
	}
	for _, child := range n.Children {
		child.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// CountElements returns the number of element nodes in the tree.
func (n *Node) CountElements() int {
	count := 0
	n.Walk(func(node *Node) bool {
		if !node.IsText() {
			count++
		}
		return true
	})
	return count
}

// FindAll returns every element matching pred in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if !node.IsText() && pred(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// FindRole returns elements carrying data-role=role.
func (n *Node) FindRole(role string) []*Node {
	return n.FindAll(func(node *Node) bool {
		value, ok := node.Attr("data-role")
		return ok && value == role
	})
}

// TextContent concatenates every text leaf below n.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(node *Node) bool {
		if node.IsText() {
			b.WriteString(node.Text)
		}
		return true
	})
	return b.String()
}
