package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/profile"
	"github.com/goliatone/go-brandkit/pkg/testsupport"
)

func techCorp() profile.Profile {
	return testsupport.TechCorpProfile()
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, format := range []profile.Format{profile.FormatYAML, profile.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			s := NewFileStore(filepath.Join(t.TempDir(), "profiles"), format)

			if err := s.Put(ctx, techCorp()); err != nil {
				t.Fatalf("put: %v", err)
			}
			if _, err := os.Stat(filepath.Join(s.dir, "techcorp."+string(format))); err != nil {
				t.Fatalf("expected file in %s format: %v", format, err)
			}

			got, err := s.Get(ctx, "techcorp")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if diff := cmp.Diff(techCorp(), got); diff != "" {
				t.Fatalf("profile mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileStoreReplacesOtherFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "techcorp.json"), []byte(`{"brand":{"name":"Old"}}`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewFileStore(dir, profile.FormatYAML)
	if err := s.Put(ctx, techCorp()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "techcorp.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected json copy to be replaced, stat err %v", err)
	}
	got, err := s.Get(ctx, "techcorp")
	if err != nil || got.Brand.Name != "TechCorp Solutions" {
		t.Fatalf("unexpected profile %+v err %v", got.Brand, err)
	}
}

func TestFileStoreGetFillsIDFromFilename(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "acme.yml"), []byte("brand:\n  name: Acme\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := NewFileStore(dir, "").Get(context.Background(), "acme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "acme" || got.Brand.Name != "Acme" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestFileStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFileStore(dir, profile.FormatJSON)

	ids, err := s.List(ctx)
	if err != nil || len(ids) != 0 {
		t.Fatalf("expected empty list, got %v err %v", ids, err)
	}

	for _, id := range []string{"zeta", "alpha"} {
		p := techCorp()
		p.ID = id
		if err := s.Put(ctx, p); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ids, err = s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "alpha"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "alpha"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestFileStoreRejectsInvalidIDs(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(t.TempDir(), "")
	for _, id := range []string{"", "../escape", "has space", "a/b"} {
		if _, err := s.Get(ctx, id); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("get %q: expected ErrInvalidID, got %v", id, err)
		}
		p := techCorp()
		p.ID = id
		if err := s.Put(ctx, p); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("put %q: expected ErrInvalidID, got %v", id, err)
		}
	}
}
