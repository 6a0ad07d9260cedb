package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"daily-interviewer/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s, dir
}

func TestNewStoreRejectsMissingDir(t *testing.T) {
	if _, err := NewStore(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing vault")
	}
}

func TestCreateReadModify(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "Interviews/Interview_2026-10-19_203000.md")
	if err != nil || ok {
		t.Fatalf("expected missing note, got %v %v", ok, err)
	}

	if err := s.Create(ctx, "Interviews/Interview_2026-10-19_203000.md", "# Daily Interview"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Interviews", "Interview_2026-10-19_203000.md"))
	if err != nil || string(data) != "# Daily Interview" {
		t.Fatalf("file not written: %q %v", data, err)
	}

	ok, err = s.Exists(ctx, "Interviews/Interview_2026-10-19_203000.md")
	if err != nil || !ok {
		t.Fatalf("expected note to exist, got %v %v", ok, err)
	}

	if err := s.Modify(ctx, "Interviews/Interview_2026-10-19_203000.md", "changed"); err != nil {
		t.Fatalf("Modify: %v", err)
	}
	got, err := s.Read(ctx, "Interviews/Interview_2026-10-19_203000.md")
	if err != nil || got != "changed" {
		t.Fatalf("Read: %q %v", got, err)
	}
}

func TestCreateExisting(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Create(ctx, "note.md", "a"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(ctx, "note.md", "b"); !errors.Is(err, domain.ErrNoteExists) {
		t.Fatalf("expected ErrNoteExists, got %v", err)
	}
	if got, _ := s.Read(ctx, "note.md"); got != "a" {
		t.Fatalf("existing note overwritten: %q", got)
	}
}

func TestMissingNote(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Read(ctx, "Daily/2026-10-19.md"); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound from Read, got %v", err)
	}
	if err := s.Modify(ctx, "Daily/2026-10-19.md", "x"); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound from Modify, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Root(), "Daily")); !os.IsNotExist(err) {
		t.Fatalf("Modify must not create folders")
	}
}

func TestPathEscape(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Read(context.Background(), "../secret.md"); err == nil {
		t.Fatal("expected error for path outside the vault")
	}
}
