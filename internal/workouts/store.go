package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/storage"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

// Store holds the workout entries in insertion order and mirrors them to the
// provider after every mutation. A mutation whose flush fails leaves the store unchanged.
type Store struct {
	mutex    sync.RWMutex
	provider storage.Provider
	entries  []Entry
	lastID   int64
	version  uint64
	now      func() time.Time
}

func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		entries:  []Entry{},
		now:      time.Now,
	}
}

// WithClock replaces the time source used for ids and default dates.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Load reads the persisted entries. Corrupted data is logged and the store starts empty.
func (s *Store) Load(ctx context.Context) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.load")
	defer span.End()

	var loaded []Entry
	_, err := storage.LoadJSON(ctx, s.provider, storage.KeyWorkouts, &loaded)
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupted) {
			return fmt.Errorf("load workouts: %w", err)
		}
		log.Warnf("workouts data corrupted, starting empty: %s", err)
		loaded = nil
	}

	entries := make([]Entry, 0, len(loaded))
	var lastID int64
	for _, e := range loaded {
		e.Sets = inRangeSets(e)
		if e.ID > lastID {
			lastID = e.ID
		}
		entries = append(entries, e)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries = entries
	s.lastID = lastID
	s.version++

	log.Debugf("loaded %d workout entries", len(entries))
	return nil
}

// inRangeSets drops stored sets outside the accepted bounds (hand edited data).
func inRangeSets(e Entry) []SetRecord {
	sets := make([]SetRecord, 0, len(e.Sets))
	for _, set := range e.Sets {
		if !set.InRange() {
			log.Warnf("workout entry %d: dropping out of range set %+v", e.ID, set)
			continue
		}
		sets = append(sets, set)
	}
	return sets
}

// Save validates the input, appends a new entry and persists the store.
func (s *Store) Save(ctx context.Context, input NewEntry) (Entry, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.save")
	defer span.End()

	sets, err := input.validate()
	if err != nil {
		return Entry{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	entry := s.buildEntry(id, input, sets, now)
	next := make([]Entry, 0, len(s.entries)+1)
	next = append(next, s.entries...)
	next = append(next, entry)

	if err := s.flush(ctx, next); err != nil {
		return Entry{}, err
	}

	s.entries = next
	s.lastID = id
	s.version++

	return entry.Clone(), nil
}

// Replace overwrites the entry with the given id, keeping its position and id.
func (s *Store) Replace(ctx context.Context, id int64, input NewEntry) (Entry, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.replace")
	defer span.End()

	sets, err := input.validate()
	if err != nil {
		return Entry{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Entry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}

	entry := s.buildEntry(id, input, sets, s.now())
	next := append([]Entry{}, s.entries...)
	next[idx] = entry

	if err := s.flush(ctx, next); err != nil {
		return Entry{}, err
	}

	s.entries = next
	s.version++

	return entry.Clone(), nil
}

// Delete removes the entry with the given id. Without confirmation nothing changes.
func (s *Store) Delete(ctx context.Context, id int64, confirmed bool) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.store.delete")
	defer span.End()

	if !confirmed {
		return ErrNotConfirmed
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}

	next := make([]Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)

	if err := s.flush(ctx, next); err != nil {
		return err
	}

	s.entries = next
	s.version++

	return nil
}

// List returns a copy of all entries in store order.
func (s *Store) List() []Entry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		list[i] = e.Clone()
	}
	return list
}

func (s *Store) Get(id int64) (Entry, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Entry{}, false
	}
	return s.entries[idx].Clone(), true
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.entries)
}

// Version changes on every successful mutation or load.
func (s *Store) Version() uint64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.version
}

func (s *Store) buildEntry(id int64, input NewEntry, sets []SetRecord, now time.Time) Entry {
	date := input.Date
	if date.IsZero() {
		date = pkg.Today(now)
	}
	return Entry{
		ID:       id,
		Date:     date,
		Exercise: strings.TrimSpace(input.Exercise),
		Category: strings.TrimSpace(input.Category),
		Sets:     sets,
	}
}

func (s *Store) indexOf(id int64) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) flush(ctx context.Context, entries []Entry) error {
	if err := storage.SaveJSON(ctx, s.provider, storage.KeyWorkouts, entries); err != nil {
		return fmt.Errorf("flush workouts: %w", err)
	}
	return nil
}
