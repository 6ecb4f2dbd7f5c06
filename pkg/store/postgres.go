package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goliatone/go-brandkit/pkg/profile"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "brand_profiles"

// Querier is the subset of pgx used by the store. *pgxpool.Pool, *pgx.Conn
// and pgx.Tx satisfy it.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres stores profiles as JSONB documents keyed by id.
type Postgres struct {
	db    Querier
	table string
}

var _ Store = (*Postgres)(nil)

// PostgresOption configures a Postgres store.
type PostgresOption func(*Postgres)

// WithTable overrides the table name.
func WithTable(name string) PostgresOption {
	return func(p *Postgres) {
		if name != "" {
			p.table = name
		}
	}
}

// NewPostgres wraps an existing connection or pool.
func NewPostgres(db Querier, opts ...PostgresOption) *Postgres {
	p := &Postgres{db: db, table: DefaultTable}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OpenPostgres connects a pool for dsn and pings it.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("store: parse pgx config: %w", err)
	}
	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = 3 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("store: connect pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: postgres ping failed: %w", err)
	}
	return pool, nil
}

func (p *Postgres) ident() string {
	return pgx.Identifier{p.table}.Sanitize()
}

// EnsureSchema creates the profile table when missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	sql := `CREATE TABLE IF NOT EXISTS ` + p.ident() + ` (
	id TEXT PRIMARY KEY,
	document JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	if _, err := p.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

// Get loads a profile by id.
func (p *Postgres) Get(ctx context.Context, id string) (profile.Profile, error) {
	if !ValidID(id) {
		return profile.Profile{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var document []byte
	err := p.db.QueryRow(ctx, `SELECT document FROM `+p.ident()+` WHERE id = $1`, id).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return profile.Profile{}, fmt.Errorf("store: get %q: %w", id, err)
	}

	out, _, err := profile.Decode(document, profile.FormatJSON)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("store: get %q: %w", id, err)
	}
	if out.ID == "" {
		out.ID = id
	}
	return out, nil
}

// Put inserts or replaces a profile.
func (p *Postgres) Put(ctx context.Context, prof profile.Profile) error {
	if !ValidID(prof.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, prof.ID)
	}
	document, err := json.Marshal(prof)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", prof.ID, err)
	}
	sql := `INSERT INTO ` + p.ident() + ` (id, document, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`
	if _, err := p.db.Exec(ctx, sql, prof.ID, document); err != nil {
		return fmt.Errorf("store: put %q: %w", prof.ID, err)
	}
	return nil
}

// List returns every stored id in ascending order.
func (p *Postgres) List(ctx context.Context) ([]string, error) {
	rows, err := p.db.Query(ctx, `SELECT id FROM `+p.ident()+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return ids, nil
}

// Delete removes a profile. Deleting a missing id returns ErrNotFound.
func (p *Postgres) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	tag, err := p.db.Exec(ctx, `DELETE FROM `+p.ident()+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}
