package bodyweight

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/storage"
	"github.com/2beens/fittrack/pkg"
)

var ErrInvalidWeight = errors.New("body weight must be a positive number")

type Entry struct {
	Date   pkg.Date `json:"date"`
	Weight float64  `json:"weight"`
}

// Store is an append-only body-weight log.
type Store struct {
	mutex    sync.RWMutex
	provider storage.Provider
	entries  []Entry
	now      func() time.Time
}

func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		entries:  []Entry{},
		now:      time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Load(ctx context.Context) error {
	var loaded []Entry
	if _, err := storage.LoadJSON(ctx, s.provider, storage.KeyBodyWeight, &loaded); err != nil {
		if !errors.Is(err, storage.ErrCorrupted) {
			return fmt.Errorf("load body weight: %w", err)
		}
		log.Warnf("body weight log corrupted, starting empty: %s", err)
		loaded = nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries = append([]Entry{}, loaded...)
	return nil
}

// Add appends an entry, dated today when no date is given.
func (s *Store) Add(ctx context.Context, entry Entry) (Entry, error) {
	if entry.Weight <= 0 || math.IsNaN(entry.Weight) || math.IsInf(entry.Weight, 0) {
		return Entry{}, ErrInvalidWeight
	}
	if entry.Date.IsZero() {
		entry.Date = pkg.Today(s.now())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	next := make([]Entry, 0, len(s.entries)+1)
	next = append(next, s.entries...)
	next = append(next, entry)

	if err := storage.SaveJSON(ctx, s.provider, storage.KeyBodyWeight, next); err != nil {
		return Entry{}, fmt.Errorf("flush body weight: %w", err)
	}
	s.entries = next

	return entry, nil
}

// List returns the entries in the order they were added.
func (s *Store) List() []Entry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]Entry{}, s.entries...)
}
