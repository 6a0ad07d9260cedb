package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"daily-interviewer/internal/domain"
)

// Store reads and writes notes under a vault directory. Paths are
// vault-relative and always use forward slashes.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open vault %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open vault %s: not a directory", root)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *Store) Read(_ context.Context, path string) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, domain.ErrNoteNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Create writes a new note, creating parent folders as needed.
func (s *Store) Create(_ context.Context, path, content string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create folder for %s: %w", path, err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("create %s: %w", path, domain.ErrNoteExists)
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Modify replaces the content of an existing note.
func (s *Store) Modify(_ context.Context, path, content string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("modify %s: %w", path, domain.ErrNoteNotFound)
	}
	if err != nil {
		return fmt.Errorf("modify %s: %w", path, err)
	}
	if err := os.WriteFile(full, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("modify %s: %w", path, err)
	}
	return nil
}

func (s *Store) resolve(path string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(path, "/")))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("note path %q escapes the vault", path)
	}
	return filepath.Join(s.root, rel), nil
}
