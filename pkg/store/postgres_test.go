package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	document []byte
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.document
	return nil
}

type execCall struct {
	sql  string
	args []any
}

type fakeQuerier struct {
	row     fakeRow
	tag     pgconn.CommandTag
	execErr error
	queries []string
	execs   []execCall
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	return f.row
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	return nil, errors.New("not supported")
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return f.tag, f.execErr
}

func TestPostgresGet(t *testing.T) {
	db := &fakeQuerier{row: fakeRow{document: []byte(`{"brand":{"name":"TechCorp Solutions"},"mode":"email"}`)}}
	s := NewPostgres(db, WithTable("profiles"))

	got, err := s.Get(context.Background(), "techcorp")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "techcorp" || got.Brand.Name != "TechCorp Solutions" || got.Mode != "email" {
		t.Fatalf("unexpected profile %+v", got)
	}
	if !strings.Contains(db.queries[0], `FROM "profiles" WHERE id = $1`) {
		t.Fatalf("unexpected query %q", db.queries[0])
	}
}

func TestPostgresGetNotFound(t *testing.T) {
	s := NewPostgres(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}})
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresPutUpserts(t *testing.T) {
	db := &fakeQuerier{tag: pgconn.NewCommandTag("INSERT 0 1")}
	s := NewPostgres(db)

	if err := s.Put(context.Background(), techCorp()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if len(db.execs) != 1 {
		t.Fatalf("expected one exec, got %d", len(db.execs))
	}
	call := db.execs[0]
	if !strings.Contains(call.sql, `INSERT INTO "brand_profiles"`) || !strings.Contains(call.sql, "ON CONFLICT (id)") {
		t.Fatalf("unexpected sql %q", call.sql)
	}
	if call.args[0] != "techcorp" {
		t.Fatalf("unexpected id arg %v", call.args[0])
	}
	var decoded map[string]any
	if err := json.Unmarshal(call.args[1].([]byte), &decoded); err != nil {
		t.Fatalf("document is not json: %v", err)
	}
	if decoded["templateId"] != "modern_header" {
		t.Fatalf("unexpected document %v", decoded)
	}
}

func TestPostgresDelete(t *testing.T) {
	db := &fakeQuerier{tag: pgconn.NewCommandTag("DELETE 1")}
	if err := NewPostgres(db).Delete(context.Background(), "techcorp"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	db = &fakeQuerier{tag: pgconn.NewCommandTag("DELETE 0")}
	if err := NewPostgres(db).Delete(context.Background(), "techcorp"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresTableNameIsQuoted(t *testing.T) {
	db := &fakeQuerier{}
	s := NewPostgres(db, WithTable(`weird"name`))
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if !strings.Contains(db.execs[0].sql, `"weird""name"`) {
		t.Fatalf("table name not sanitized: %q", db.execs[0].sql)
	}
}
