package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"daily-interviewer/internal/domain"
)

// Store keeps notes in memory, keyed by vault-relative path.
type Store struct {
	mu    sync.Mutex
	notes map[string]string
}

func NewStore() *Store {
	return &Store{
		notes: make(map[string]string),
	}
}

// Put seeds a note, replacing any existing content.
func (s *Store) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[clean(path)] = content
}

func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.notes[clean(path)]
	return ok, nil
}

func (s *Store) Read(_ context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.notes[clean(path)]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, domain.ErrNoteNotFound)
	}
	return content, nil
}

func (s *Store) Create(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path = clean(path)
	if _, ok := s.notes[path]; ok {
		return fmt.Errorf("create %s: %w", path, domain.ErrNoteExists)
	}
	s.notes[path] = content
	return nil
}

func (s *Store) Modify(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path = clean(path)
	if _, ok := s.notes[path]; !ok {
		return fmt.Errorf("modify %s: %w", path, domain.ErrNoteNotFound)
	}
	s.notes[path] = content
	return nil
}

// Paths lists stored note paths in lexical order.
func (s *Store) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.notes))
	for p := range s.notes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func clean(path string) string {
	return strings.TrimPrefix(path, "/")
}
