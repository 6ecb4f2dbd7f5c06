// Package signature implements the email signature template skeletons.
// Signatures reuse the letterhead tokens at half scale for the header and
// content regions, so the header to margin proportion matches letterheads.
package signature

import (
	"github.com/goliatone/go-brandkit/pkg/fidelity"
	"github.com/goliatone/go-brandkit/pkg/render"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Template IDs.
const (
	CompactID = "signature_compact"
	BannerID  = "signature_banner"
)

// shrink is the factor applied to letterhead tokens.
const shrink = 0.5

// Descriptors returns the signature templates in catalog order.
func Descriptors() []render.Descriptor {
	return []render.Descriptor{
		{
			ID:          CompactID,
			DisplayName: "Compact Signature",
			Category:    render.CategoryEmailSignature,
			Description: "Single-row signature with the logo beside the name and contact details.",
			Render:      Compact,
		},
		{
			ID:          BannerID,
			DisplayName: "Banner Signature",
			Category:    render.CategoryEmailSignature,
			Description: "Stacked signature opened by a primary colour band and an accent rule.",
			Render:      Banner,
		},
	}
}

type tokens struct {
	header   style.Length
	padding  style.Length
	logo     style.Length
	headline style.Length
}

func resolve(m fidelity.Metrics) tokens {
	return tokens{
		header:   m.HeaderHeight.Scale(shrink),
		padding:  m.Margin.Scale(shrink),
		logo:     m.LogoSize.Scale(shrink),
		headline: m.HeadlineSize.Scale(0.75),
	}
}
