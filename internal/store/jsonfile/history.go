package jsonfile

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/benahmedanass/pomodoro/internal/core/archive"
)

// HistoryFile is the root JSON structure stored on disk.
type HistoryFile struct {
	Entries []archive.Entry `json:"entries"`
}

// HistoryStore persists the plan archive to a JSON file, newest entry first.
type HistoryStore struct {
	path string
	mu   sync.RWMutex
	log  zerolog.Logger
}

// NewHistoryStore creates a history store at the given path.
func NewHistoryStore(path string, log zerolog.Logger) *HistoryStore {
	return &HistoryStore{path: path, log: log}
}

// List returns all archived plans, newest first.
func (s *HistoryStore) List(ctx context.Context) ([]archive.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.loadFile()
	if err != nil {
		return nil, err
	}
	return file.Entries, nil
}

// Push prepends an entry and prunes to the archive bound before writing.
// An empty entry is dropped without touching the file.
func (s *HistoryStore) Push(ctx context.Context, entry archive.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.loadFile()
	if err != nil {
		return err
	}

	next := archive.Push(file.Entries, entry)
	if len(next) == len(file.Entries) && len(entry.Schedule) == 0 {
		return nil
	}

	return save(s.path, HistoryFile{Entries: next})
}

// Clear removes all archived plans.
func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return save(s.path, HistoryFile{Entries: []archive.Entry{}})
}

func (s *HistoryStore) loadFile() (HistoryFile, error) {
	var file HistoryFile
	if err := load(s.path, &file, s.log); err != nil {
		return HistoryFile{}, err
	}
	return file, nil
}
