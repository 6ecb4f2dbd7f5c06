// Package testsupport holds brand fixtures and golden-file helpers shared by
// package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/profile"
)

// TechCorpBrand returns the reference brand used across render tests.
func TechCorpBrand() model.BrandIdentity {
	return model.BrandIdentity{
		Name:    "TechCorp Solutions",
		LogoURL: "https://cdn.techcorp.test/logo.png",
		Colors: model.Colors{
			Primary:   "#2563eb",
			Secondary: "#64748b",
			Accent:    "#f59e0b",
			Text:      "#1f2937",
		},
		Fonts: model.Fonts{Headline: "Inter", Body: "Inter"},
		Contact: model.Contact{
			Address: "123 Innovation Drive, San Francisco, CA 94105",
			Phone:   "+1 (555) 123-4567",
			Email:   "contact@techcorp.com",
			Website: "www.techcorp.com",
		},
	}
}

// TechCorpProfile wraps TechCorpBrand in a stored profile.
func TechCorpProfile() profile.Profile {
	return profile.Profile{
		ID:         "techcorp",
		TemplateID: "modern_header",
		Mode:       string(model.ModeProduction),
		Brand:      TechCorpBrand(),
		Customization: model.CustomizationConfig{
			HeaderHeight: model.HeaderMedium,
			FooterStyle:  model.FooterFull,
			LogoPosition: model.LogoLeft,
		},
	}
}

// LoadProfile decodes a profile fixture, failing the test on syntax errors
// or schema issues.
func LoadProfile(t *testing.T, path string) profile.Profile {
	t.Helper()

	p, err := LoadProfileFromPath(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return p
}

// LoadProfileFromPath returns the profile without requiring testing.T.
func LoadProfileFromPath(path string) (profile.Profile, error) {
	if path == "" {
		return profile.Profile{}, errors.New("testsupport: profile path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("testsupport: read profile: %w", err)
	}
	format, err := profile.FormatFromPath(path)
	if err != nil {
		return profile.Profile{}, err
	}
	p, issues, err := profile.Decode(data, format)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("testsupport: decode profile: %w", err)
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return profile.Profile{}, fmt.Errorf("testsupport: profile %s: %s", path, strings.Join(msgs, "; "))
	}
	return p, nil
}

// WriteProfile encodes p into dir using the file extension's format and
// returns the path.
func WriteProfile(t *testing.T, dir, name string, p profile.Profile) string {
	t.Helper()

	path := filepath.Join(dir, name)
	format, err := profile.FormatFromPath(path)
	if err != nil {
		t.Fatalf("profile format: %v", err)
	}
	data, err := profile.Encode(p, format)
	if err != nil {
		t.Fatalf("encode profile: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir profile dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
