package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"daily-interviewer/internal/domain"
)

//go:embed schema.sql
var schema string

// Index records saved interviews in a local sqlite database.
type Index struct {
	db *sql.DB
}

// New opens or creates the database at path.
func New(path string) (*Index, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create index dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Index{db: db}, nil
}

func (x *Index) Close() error {
	return x.db.Close()
}

// Record stores rec. An empty ID is filled in.
func (x *Index) Record(ctx context.Context, rec domain.InterviewRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	_, err := x.db.ExecContext(ctx,
		"INSERT INTO interviews (id, path, summary, model, exchanges, saved_at) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ID, rec.Path, rec.Summary, rec.Model, rec.Exchanges, rec.SavedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (x *Index) Recent(ctx context.Context, limit int) ([]domain.InterviewRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := x.db.QueryContext(ctx,
		"SELECT id, path, summary, model, exchanges, saved_at FROM interviews ORDER BY saved_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	var out []domain.InterviewRecord
	for rows.Next() {
		var rec domain.InterviewRecord
		if err := rows.Scan(&rec.ID, &rec.Path, &rec.Summary, &rec.Model, &rec.Exchanges, &rec.SavedAt); err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		rec.SavedAt = rec.SavedAt.Local()
		out = append(out, rec)
	}
	return out, rows.Err()
}
