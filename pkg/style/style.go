package style

import (
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered, immutable set of CSS declarations. Every mutating
// method returns a copy so partially built styles can be shared between
// elements without aliasing. Serialisation preserves insertion order, which
// keeps rendered markup byte-stable.
type Style struct {
	decls []Declaration
}

// New builds a Style from property/value pairs. A trailing property without
// a value is ignored.
func New(pairs ...string) Style {
	var s Style
	for i := 0; i+1 < len(pairs); i += 2 {
		s = s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// Set returns a copy with property assigned. Existing properties keep their
// position; new ones are appended. Empty values remove the property.
func (s Style) Set(property, value string) Style {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	if property == "" {
		return s
	}
	if value == "" {
		return s.Del(property)
	}

	out := make([]Declaration, len(s.decls), len(s.decls)+1)
	copy(out, s.decls)
	for i := range out {
		if out[i].Property == property {
			out[i].Value = value
			return Style{decls: out}
		}
	}
	return Style{decls: append(out, Declaration{Property: property, Value: value})}
}

// SetLength is a convenience wrapper for Set with a Length value.
func (s Style) SetLength(property string, value Length) Style {
	return s.Set(property, value.String())
}

// Del returns a copy without property.
func (s Style) Del(property string) Style {
	property = strings.ToLower(strings.TrimSpace(property))
	out := make([]Declaration, 0, len(s.decls))
	for _, decl := range s.decls {
		if decl.Property == property {
			continue
		}
		out = append(out, decl)
	}
	return Style{decls: out}
}

// Get returns the value assigned to property.
func (s Style) Get(property string) (string, bool) {
	property = strings.ToLower(strings.TrimSpace(property))
	for _, decl := range s.decls {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Merge overlays other on top of s.
func (s Style) Merge(other Style) Style {
	out := s
	for _, decl := range other.decls {
		out = out.Set(decl.Property, decl.Value)
	}
	return out
}

// Len reports the number of declarations.
func (s Style) Len() int {
	return len(s.decls)
}

// IsZero reports whether the style has no declarations.
func (s Style) IsZero() bool {
	return len(s.decls) == 0
}

// Declarations returns a copy of the ordered declarations.
func (s Style) Declarations() []Declaration {
	if len(s.decls) == 0 {
		return nil
	}
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// String serialises the style as an inline CSS attribute value.
func (s Style) String() string {
	if len(s.decls) == 0 {
		return ""
	}
	var b strings.Builder
	for i, decl := range s.decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(decl.Property)
		b.WriteByte(':')
		b.WriteString(decl.Value)
	}
	return b.String()
}
