package model

// Correction reasons.
const (
	ReasonUnknownValue      = "unknown_value"
	ReasonInvalidToken      = "invalid_token"
	ReasonUnsupportedScheme = "unsupported_scheme"
	ReasonUnknownTemplate   = "unknown_template"
)

// Correction records an input value the engine replaced with a default.
type Correction struct {
	Field    string `json:"field"`
	Value    string `json:"value"`
	Fallback string `json:"fallback"`
	Reason   string `json:"reason"`
}
