package style

import (
	"strings"

	"github.com/microcosm-cc/bluemonday/css"
)

// GenericFallback is appended to every font stack so documents degrade to a
// neutral face when the brand family is not installed.
const GenericFallback = "Arial, Helvetica, sans-serif"

// ValidColor reports whether value is a CSS colour token (hex, rgb/rgba,
// hsl/hsla or a named colour). Global keywords such as "inherit" are rejected
// because they do not describe a brand colour.
func ValidColor(value string) bool {
	normalized := NormalizeColor(value)
	if normalized == "" {
		return false
	}
	switch normalized {
	case "initial", "inherit", "unset", "currentcolor", "transparent":
		return false
	}
	return css.ColorHandler(normalized)
}

// NormalizeColor lowercases and trims a colour token.
func NormalizeColor(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ValidFontFamily reports whether value is a single family name that can be
// safely embedded in an inline font stack.
func ValidFontFamily(value string) bool {
	family := NormalizeFontFamily(value)
	if family == "" || strings.Contains(family, ",") {
		return false
	}
	switch strings.ToLower(family) {
	case "initial", "inherit":
		return false
	}
	return css.FontFamilyHandler(family)
}

// NormalizeFontFamily trims surrounding whitespace and quotes.
func NormalizeFontFamily(value string) string {
	family := strings.TrimSpace(value)
	family = strings.Trim(family, `'"`)
	return strings.Join(strings.Fields(family), " ")
}

// FontStack quotes family and appends the generic fallback stack.
func FontStack(family string) string {
	family = NormalizeFontFamily(family)
	if family == "" {
		return GenericFallback
	}
	return "'" + family + "', " + GenericFallback
}
