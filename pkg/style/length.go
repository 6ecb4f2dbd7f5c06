package style

import (
	"math"
	"strconv"
	"strings"
)

// Units understood by Length.
const (
	UnitPt = "pt"
	UnitPx = "px"
	UnitEm = "em"
	UnitPc = "%"
)

// Length is a CSS dimension. Values are kept at two decimal places so token
// tables produce stable output across platforms.
type Length struct {
	Value float64
	Unit  string
}

// Pt returns a length in points.
func Pt(v float64) Length { return Length{Value: Round(v), Unit: UnitPt} }

// Px returns a length in CSS pixels.
func Px(v float64) Length { return Length{Value: Round(v), Unit: UnitPx} }

// Em returns a length relative to the current font size.
func Em(v float64) Length { return Length{Value: Round(v), Unit: UnitEm} }

// Percent returns a percentage length.
func Percent(v float64) Length { return Length{Value: Round(v), Unit: UnitPc} }

// Scale multiplies the value by factor, keeping the unit.
func (l Length) Scale(factor float64) Length {
	return Length{Value: Round(l.Value * factor), Unit: l.Unit}
}

// Add sums two lengths sharing a unit. Mismatched units keep l unchanged.
func (l Length) Add(other Length) Length {
	if l.Unit != other.Unit && other.Value != 0 {
		return l
	}
	return Length{Value: Round(l.Value + other.Value), Unit: l.Unit}
}

// IsZero reports whether the length is zero.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// String renders the length for inline CSS; zero lengths drop the unit.
func (l Length) String() string {
	if l.Value == 0 {
		return "0"
	}
	return strconv.FormatFloat(Round(l.Value), 'f', -1, 64) + l.Unit
}

// ParseLength reads the first token of a CSS value as a Length. It accepts
// the output of String and is used when inspecting rendered styles.
func ParseLength(raw string) (Length, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return Length{}, false
	}
	token := fields[0]
	if token == "0" {
		return Length{}, true
	}
	for _, unit := range []string{UnitPt, UnitPx, UnitEm, UnitPc} {
		if !strings.HasSuffix(token, unit) {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSuffix(token, unit), 64)
		if err != nil {
			return Length{}, false
		}
		return Length{Value: value, Unit: unit}, true
	}
	return Length{}, false
}

// Round keeps two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Box renders a CSS shorthand from one to four lengths.
func Box(values ...Length) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, " ")
}
