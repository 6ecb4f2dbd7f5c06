package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandkit/pkg/model"
)

// Token keys read from theme manifests.
const (
	TokenPrimary      = "primary"
	TokenSecondary    = "secondary"
	TokenAccent       = "accent"
	TokenText         = "text"
	TokenFontHeadline = "font.headline"
	TokenFontBody     = "font.body"
	// AssetLogo names the manifest asset used as the brand logo.
	AssetLogo = "logo"
)

// ErrThemeNotFound is returned when a preset name or variant is unknown.
var ErrThemeNotFound = errors.New("profile: theme not found")

//go:embed presets/presets.yaml
var presetDocument []byte

type presetFile struct {
	Name     string                   `yaml:"name"`
	Version  string                   `yaml:"version"`
	Tokens   map[string]string        `yaml:"tokens"`
	Assets   presetAssets             `yaml:"assets"`
	Variants map[string]presetVariant `yaml:"variants"`
}

type presetVariant struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets presetAssets      `yaml:"assets"`
}

type presetAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// PresetSelector resolves brand presets expressed as go-theme manifests.
type PresetSelector struct {
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*PresetSelector)(nil)

// NewPresetSelector builds a selector over manifests. Later manifests with
// the same name replace earlier ones.
func NewPresetSelector(manifests ...*theme.Manifest) *PresetSelector {
	s := &PresetSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		s.manifests[strings.TrimSpace(manifest.Name)] = manifest
	}
	return s
}

// DefaultPresets returns a selector over the embedded presets.
func DefaultPresets() (*PresetSelector, error) {
	manifests, err := ParsePresets(presetDocument)
	if err != nil {
		return nil, err
	}
	return NewPresetSelector(manifests...), nil
}

// ParsePresets decodes a YAML list of presets into theme manifests.
func ParsePresets(data []byte) ([]*theme.Manifest, error) {
	var files []presetFile
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("profile: parse presets: %w", err)
	}

	out := make([]*theme.Manifest, 0, len(files))
	for _, file := range files {
		if strings.TrimSpace(file.Name) == "" {
			return nil, errors.New("profile: preset name is required")
		}
		manifest := &theme.Manifest{
			Name:    file.Name,
			Version: file.Version,
			Tokens:  file.Tokens,
			Assets: theme.Assets{
				Prefix: file.Assets.Prefix,
				Files:  file.Assets.Files,
			},
		}
		if len(file.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
			for name, variant := range file.Variants {
				manifest.Variants[name] = theme.Variant{
					Tokens: variant.Tokens,
					Assets: theme.Assets{
						Prefix: variant.Assets.Prefix,
						Files:  variant.Assets.Files,
					},
				}
			}
		}
		out = append(out, manifest)
	}
	return out, nil
}

// Names lists the available presets alphabetically.
func (s *PresetSelector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the manifest for name. An empty variant selects the base
// tokens; an unknown variant is an error.
func (s *PresetSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q variant %q", ErrThemeNotFound, name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// SelectionTokens merges the base manifest tokens with the selected variant.
func SelectionTokens(selection *theme.Selection) map[string]string {
	out := map[string]string{}
	if selection == nil || selection.Manifest == nil {
		return out
	}
	for key, value := range selection.Manifest.Tokens {
		out[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// SelectionAsset resolves a named asset URL, preferring the variant's files.
func SelectionAsset(selection *theme.Selection, name string) string {
	if selection == nil || selection.Manifest == nil {
		return ""
	}
	prefix := selection.Manifest.Assets.Prefix
	file := selection.Manifest.Assets.Files[name]
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		if f, ok := variant.Assets.Files[name]; ok {
			file = f
		}
	}
	if file == "" {
		return ""
	}
	if prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}

// ApplySelection fills blank brand fields from the selected preset. Values
// already set on the brand win over preset tokens.
func ApplySelection(brand model.BrandIdentity, selection *theme.Selection) model.BrandIdentity {
	tokens := SelectionTokens(selection)
	fill := func(dst *string, key string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = tokens[key]
		}
	}
	fill(&brand.Colors.Primary, TokenPrimary)
	fill(&brand.Colors.Secondary, TokenSecondary)
	fill(&brand.Colors.Accent, TokenAccent)
	fill(&brand.Colors.Text, TokenText)
	fill(&brand.Fonts.Headline, TokenFontHeadline)
	fill(&brand.Fonts.Body, TokenFontBody)
	if strings.TrimSpace(brand.LogoURL) == "" {
		brand.LogoURL = SelectionAsset(selection, AssetLogo)
	}
	return brand
}

// Resolve applies the profile's theme preset, if any, to its brand.
func (p Profile) Resolve(selector theme.ThemeSelector) (Profile, error) {
	if strings.TrimSpace(p.Theme) == "" || selector == nil {
		return p, nil
	}
	selection, err := selector.Select(p.Theme, p.Variant)
	if err != nil {
		return p, err
	}
	p.Brand = ApplySelection(p.Brand, selection)
	return p, nil
}
