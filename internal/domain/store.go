package domain

import "context"

// NoteStore is the document store of the notes vault. Paths are relative
// to the vault root and use forward slashes.
type NoteStore interface {
	// Exists reports a missing note as false with a nil error.
	Exists(ctx context.Context, path string) (bool, error)
	Read(ctx context.Context, path string) (string, error)
	// Create writes a new note, creating parent folders as needed.
	Create(ctx context.Context, path, content string) error
	Modify(ctx context.Context, path, content string) error
}

type InterviewIndex interface {
	Record(ctx context.Context, rec InterviewRecord) error
	Recent(ctx context.Context, limit int) ([]InterviewRecord, error)
}
