// Package letterhead implements the letterhead template skeletons. Every
// skeleton is a table based layout with inline styles only, built from the
// shared pieces in pkg/layout.
package letterhead

import (
	"github.com/goliatone/go-brandkit/pkg/render"
)

// Template IDs.
const (
	ModernHeaderID    = "modern_header"
	ClassicCenteredID = "classic_centered"
	SidebarAccentID   = "sidebar_accent"
	DiagonalBannerID  = "diagonal_banner"
	MinimalRuleID     = "minimal_rule"
	ExecutiveFrameID  = "executive_frame"
)

// Descriptors returns the letterhead templates in catalog order.
func Descriptors() []render.Descriptor {
	return []render.Descriptor{
		{
			ID:          ModernHeaderID,
			DisplayName: "Modern Header",
			Category:    render.CategoryLetterhead,
			Description: "Full-width colour band carrying the logo and name, with the contact line in the footer.",
			Render:      ModernHeader,
		},
		{
			ID:          ClassicCenteredID,
			DisplayName: "Classic Centered",
			Category:    render.CategoryLetterhead,
			Description: "Traditional letterhead with the name over a double rule and a centred footer.",
			Render:      ClassicCentered,
		},
		{
			ID:          SidebarAccentID,
			DisplayName: "Sidebar Accent",
			Category:    render.CategoryLetterhead,
			Description: "Coloured sidebar column holding the contact details next to the writing area.",
			Render:      SidebarAccent,
		},
		{
			ID:          DiagonalBannerID,
			DisplayName: "Diagonal Banner",
			Category:    render.CategoryLetterhead,
			Description: "Split banner with a primary block that breaks diagonally into the accent colour.",
			Render:      DiagonalBanner,
		},
		{
			ID:          MinimalRuleID,
			DisplayName: "Minimal Rule",
			Category:    render.CategoryLetterhead,
			Description: "White header separated from the body by a thin accent rule.",
			Render:      MinimalRule,
		},
		{
			ID:          ExecutiveFrameID,
			DisplayName: "Executive Frame",
			Category:    render.CategoryLetterhead,
			Description: "Bordered frame with a secondary-colour header strip.",
			Render:      ExecutiveFrame,
		},
	}
}
