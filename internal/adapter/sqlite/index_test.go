package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"daily-interviewer/internal/domain"
)

func TestRecordAndRecent(t *testing.T) {
	idx, err := New(filepath.Join(t.TempDir(), "nested", "index.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer idx.Close()

	ctx := context.Background()
	base := time.Date(2026, time.October, 17, 21, 0, 0, 0, time.Local)
	for i, path := range []string{"Interviews/a.md", "Interviews/b.md", "Interviews/c.md"} {
		err := idx.Record(ctx, domain.InterviewRecord{
			Path:      path,
			Summary:   "summary " + path,
			Model:     "anthropic/claude-opus-4.5",
			Exchanges: i + 1,
			SavedAt:   base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	recs, err := idx.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Path != "Interviews/c.md" || recs[1].Path != "Interviews/b.md" {
		t.Fatalf("unexpected order: %s, %s", recs[0].Path, recs[1].Path)
	}
	if recs[0].ID == "" || recs[0].Exchanges != 3 {
		t.Fatalf("unexpected record %+v", recs[0])
	}
	if !recs[0].SavedAt.Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("unexpected saved_at %v", recs[0].SavedAt)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")
	ctx := context.Background()

	idx, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := idx.Record(ctx, domain.InterviewRecord{ID: "fixed", Path: "x.md", SavedAt: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	idx.Close()

	idx, err = New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer idx.Close()

	recs, err := idx.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "fixed" {
		t.Fatalf("unexpected records %+v", recs)
	}
}
