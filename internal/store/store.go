package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/averyld/teamtalk/internal/models"
)

// Store owns the whole-system state and its JSON file on disk. Every access
// goes through Update or View, which serialize behind a single mutex; Update
// rewrites the whole file after a successful mutation. This is the only
// serialization point in the system.
type Store struct {
	mu   sync.Mutex
	path string
	data *models.Data
}

// Open loads the store from path, creating an empty one if the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: models.NewData()}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, s.save()
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return nil, err
	}
	return s, nil
}

// Update runs fn against the store under the lock and persists the result.
// If fn returns an error nothing is written and any partial in-memory
// mutations it made are rolled back, so memory never diverges from disk.
func (s *Store) Update(fn func(*models.Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	if err := fn(s.data); err != nil {
		restored := models.NewData()
		if json.Unmarshal(snapshot, restored) == nil {
			s.data = restored
		}
		return err
	}
	return s.save()
}

// View runs fn against a read-only view of the store under the lock.
func (s *Store) View(fn func(*models.Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Reset reinitializes the store to empty and persists it.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = models.NewData()
	return s.save()
}

func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.data, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
