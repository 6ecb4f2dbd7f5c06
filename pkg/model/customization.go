package model

// HeaderHeight selects the header band size.
type HeaderHeight string

const (
	HeaderSmall  HeaderHeight = "small"
	HeaderMedium HeaderHeight = "medium"
	HeaderLarge  HeaderHeight = "large"
)

// FooterStyle selects how much of the contact block is rendered.
type FooterStyle string

const (
	FooterNone    FooterStyle = "none"
	FooterMinimal FooterStyle = "minimal"
	FooterFull    FooterStyle = "full"
)

// LogoPosition selects which side of the header region holds the logo.
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

// FontSize selects the typographic scale.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Margins selects page margins.
type Margins string

const (
	MarginsNarrow   Margins = "narrow"
	MarginsStandard Margins = "standard"
	MarginsWide     Margins = "wide"
)

// LetterSpacing selects tracking for all text.
type LetterSpacing string

const (
	SpacingTight  LetterSpacing = "tight"
	SpacingNormal LetterSpacing = "normal"
	SpacingWide   LetterSpacing = "wide"
)

// Customization defaults.
const (
	DefaultHeaderHeight  = HeaderMedium
	DefaultFooterStyle   = FooterFull
	DefaultLogoPosition  = LogoLeft
	DefaultFontSize      = FontMedium
	DefaultMargins       = MarginsStandard
	DefaultLetterSpacing = SpacingNormal
)

// CustomizationConfig holds per-document layout choices. DocumentDate is a
// caller-supplied label; renderers never read the clock.
type CustomizationConfig struct {
	HeaderHeight     HeaderHeight  `json:"headerHeight,omitempty" yaml:"headerHeight,omitempty"`
	FooterStyle      FooterStyle   `json:"footerStyle,omitempty" yaml:"footerStyle,omitempty"`
	LogoPosition     LogoPosition  `json:"logoPosition,omitempty" yaml:"logoPosition,omitempty"`
	FontSize         FontSize      `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Margins          Margins       `json:"margins,omitempty" yaml:"margins,omitempty"`
	LetterSpacing    LetterSpacing `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	IncludeWatermark bool          `json:"includeWatermark,omitempty" yaml:"includeWatermark,omitempty"`
	DocumentDate     string        `json:"documentDate,omitempty" yaml:"documentDate,omitempty"`
}

// DefaultCustomization returns the fully defaulted configuration.
func DefaultCustomization() CustomizationConfig {
	return CustomizationConfig{
		HeaderHeight:  DefaultHeaderHeight,
		FooterStyle:   DefaultFooterStyle,
		LogoPosition:  DefaultLogoPosition,
		FontSize:      DefaultFontSize,
		Margins:       DefaultMargins,
		LetterSpacing: DefaultLetterSpacing,
	}
}

// HeaderHeights lists the accepted values in display order.
func HeaderHeights() []HeaderHeight {
	return []HeaderHeight{HeaderSmall, HeaderMedium, HeaderLarge}
}

// FooterStyles lists the accepted values in display order.
func FooterStyles() []FooterStyle {
	return []FooterStyle{FooterNone, FooterMinimal, FooterFull}
}

// LogoPositions lists the accepted values in display order.
func LogoPositions() []LogoPosition {
	return []LogoPosition{LogoLeft, LogoCenter, LogoRight}
}

// FontSizes lists the accepted values in display order.
func FontSizes() []FontSize {
	return []FontSize{FontSmall, FontMedium, FontLarge}
}

// MarginOptions lists the accepted values in display order.
func MarginOptions() []Margins {
	return []Margins{MarginsNarrow, MarginsStandard, MarginsWide}
}

// LetterSpacings lists the accepted values in display order.
func LetterSpacings() []LetterSpacing {
	return []LetterSpacing{SpacingTight, SpacingNormal, SpacingWide}
}
