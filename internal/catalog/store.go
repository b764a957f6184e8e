package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/storage"
)

var ErrInvalidExercise = errors.New("category and exercise name must not be empty")

// Store keeps the user added exercises and serves them merged with the built-in table.
type Store struct {
	mutex    sync.RWMutex
	provider storage.Provider
	custom   Catalog
}

func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		custom:   Catalog{},
	}
}

func (s *Store) Load(ctx context.Context) error {
	var loaded Catalog
	if _, err := storage.LoadJSON(ctx, s.provider, storage.KeyCustomExercises, &loaded); err != nil {
		if !errors.Is(err, storage.ErrCorrupted) {
			return fmt.Errorf("load custom exercises: %w", err)
		}
		log.Warnf("custom exercises corrupted, starting empty: %s", err)
		loaded = nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.custom = Merge(Catalog{}, loaded)
	return nil
}

// Add stores a user exercise under category. Adding a name that is already
// in that category (built-in or custom) is a no-op and reports added=false.
func (s *Store) Add(ctx context.Context, category, name string) (added bool, err error) {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)
	if category == "" || name == "" {
		return false, ErrInvalidExercise
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if Merge(builtin, s.custom).Contains(category, name) {
		return false, nil
	}

	next := Merge(s.custom, Catalog{{Name: category, Exercises: []string{name}}})
	if err := storage.SaveJSON(ctx, s.provider, storage.KeyCustomExercises, next); err != nil {
		return false, fmt.Errorf("flush custom exercises: %w", err)
	}
	s.custom = next

	return true, nil
}

// Custom returns only the user additions.
func (s *Store) Custom() Catalog {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.custom.Clone()
}

// Merged returns the built-in table followed by the user additions.
func (s *Store) Merged() Catalog {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return Merge(builtin, s.custom)
}
