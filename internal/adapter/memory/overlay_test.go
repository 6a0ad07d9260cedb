package memory

import (
	"context"
	"errors"
	"testing"

	"daily-interviewer/internal/domain"
)

func TestOverlayKeepsBaseUntouched(t *testing.T) {
	ctx := context.Background()
	base := NewStore()
	base.Put("Daily/2026-10-19.md", "# Monday")
	o := NewOverlay(base)

	if err := o.Modify(ctx, "Daily/2026-10-19.md", "# Monday\nreflection"); err != nil {
		t.Fatalf("modify: %v", err)
	}
	if err := o.Create(ctx, "Interviews/a.md", "transcript"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if got, _ := o.Read(ctx, "Daily/2026-10-19.md"); got != "# Monday\nreflection" {
		t.Fatalf("overlay read: %q", got)
	}
	if got, _ := base.Read(ctx, "Daily/2026-10-19.md"); got != "# Monday" {
		t.Fatalf("base modified: %q", got)
	}
	if paths := base.Paths(); len(paths) != 1 {
		t.Fatalf("base gained notes: %v", paths)
	}
	if changes := o.Changes(); len(changes) != 2 {
		t.Fatalf("unexpected changes %v", changes)
	}
}

func TestOverlayMissingAndExisting(t *testing.T) {
	ctx := context.Background()
	base := NewStore()
	base.Put("note.md", "x")
	o := NewOverlay(base)

	if err := o.Modify(ctx, "missing.md", "y"); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if err := o.Create(ctx, "note.md", "y"); !errors.Is(err, domain.ErrNoteExists) {
		t.Fatalf("expected ErrNoteExists, got %v", err)
	}
}
