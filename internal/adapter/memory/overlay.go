package memory

import (
	"context"
	"fmt"

	"daily-interviewer/internal/domain"
)

// Overlay reads through to a base store but keeps every write in memory.
// The base store is never modified.
type Overlay struct {
	base    domain.NoteStore
	changes *Store
}

func NewOverlay(base domain.NoteStore) *Overlay {
	return &Overlay{
		base:    base,
		changes: NewStore(),
	}
}

func (o *Overlay) Exists(ctx context.Context, path string) (bool, error) {
	if ok, _ := o.changes.Exists(ctx, path); ok {
		return true, nil
	}
	return o.base.Exists(ctx, path)
}

func (o *Overlay) Read(ctx context.Context, path string) (string, error) {
	if ok, _ := o.changes.Exists(ctx, path); ok {
		return o.changes.Read(ctx, path)
	}
	return o.base.Read(ctx, path)
}

func (o *Overlay) Create(ctx context.Context, path, content string) error {
	ok, err := o.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if ok {
		return fmt.Errorf("create %s: %w", path, domain.ErrNoteExists)
	}
	return o.changes.Create(ctx, path, content)
}

func (o *Overlay) Modify(ctx context.Context, path, content string) error {
	ok, err := o.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("modify %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("modify %s: %w", path, domain.ErrNoteNotFound)
	}
	o.changes.Put(path, content)
	return nil
}

// Changes lists the paths written since the overlay was created.
func (o *Overlay) Changes() []string {
	return o.changes.Paths()
}
