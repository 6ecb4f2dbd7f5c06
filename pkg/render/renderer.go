package render

import (
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
)

// Category groups templates by the artefact they produce.
type Category string

const (
	CategoryLetterhead     Category = "letterhead"
	CategoryEmailSignature Category = "email_signature"
)

// Categories lists categories in display order.
func Categories() []Category {
	return []Category{CategoryLetterhead, CategoryEmailSignature}
}

// Label returns the human readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryLetterhead:
		return "Letterhead"
	case CategoryEmailSignature:
		return "Email signature"
	default:
		return string(c)
	}
}

// RenderFunc turns a brand, a customization and a mode into a markup tree.
// Implementations must be total and deterministic: every input produces a
// tree, and equal inputs produce equal trees.
type RenderFunc func(brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) *markup.Node

// Descriptor is a registry entry for one template variant.
type Descriptor struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	Render      RenderFunc `json:"-"`
}

// Group is the set of descriptors sharing a category.
type Group struct {
	Category  Category     `json:"category"`
	Label     string       `json:"label"`
	Templates []Descriptor `json:"templates"`
}
