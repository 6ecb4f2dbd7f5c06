package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-brandkit/pkg/profile"
)

// FileStore keeps profiles as files named <id>.json, <id>.yaml or <id>.yml.
// New profiles are written in the store's format.
type FileStore struct {
	dir    string
	format profile.Format
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store rooted at dir. An empty format writes YAML.
func NewFileStore(dir string, format profile.Format) *FileStore {
	if format == "" {
		format = profile.FormatYAML
	}
	return &FileStore{dir: dir, format: format}
}

// Get loads the profile. Schema issues are ignored; the engine normalises
// whatever values it cannot use.
func (s *FileStore) Get(ctx context.Context, id string) (profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return profile.Profile{}, err
	}
	if !ValidID(id) {
		return profile.Profile{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	path, err := s.find(id)
	if err != nil {
		return profile.Profile{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("store: read %s: %w", path, err)
	}
	format, err := profile.FormatFromPath(path)
	if err != nil {
		return profile.Profile{}, err
	}
	p, _, err := profile.Decode(data, format)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("store: %s: %w", path, err)
	}
	if p.ID == "" {
		p.ID = id
	}
	return p, nil
}

// Put writes the profile, replacing any existing file for the same id.
func (s *FileStore) Put(ctx context.Context, p profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidID(p.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
	}
	data, err := profile.Encode(p, s.format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("store: create dir: %w", err)
	}
	if existing, err := s.find(p.ID); err == nil {
		if err := os.Remove(existing); err != nil {
			return fmt.Errorf("store: replace %s: %w", existing, err)
		}
	}

	target := filepath.Join(s.dir, p.ID+"."+string(s.format))
	tmp, err := os.CreateTemp(s.dir, "."+p.ID+"-*")
	if err != nil {
		return fmt.Errorf("store: write %s: %w", target, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", target, err)
	}
	return nil
}

// List returns the stored ids sorted alphabetically.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	seen := map[string]struct{}{}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := profile.FormatFromPath(name); err != nil {
			continue
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		if !ValidID(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes the profile file.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	path, err := s.find(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("store: delete %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) find(id string) (string, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(s.dir, id+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, id)
}
