// Package store persists brand profiles. FileStore keeps one JSON or YAML
// document per profile in a directory; Postgres keeps them as JSONB rows.
package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/goliatone/go-brandkit/pkg/profile"
)

var (
	// ErrNotFound is returned when no profile matches the id.
	ErrNotFound = errors.New("store: profile not found")
	// ErrInvalidID is returned for ids that are blank or contain characters
	// outside [A-Za-z0-9_-].
	ErrInvalidID = errors.New("store: invalid profile id")
)

// Store loads and saves brand profiles by id.
type Store interface {
	Get(ctx context.Context, id string) (profile.Profile, error)
	Put(ctx context.Context, p profile.Profile) error
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidID reports whether id can be used as a profile key.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
