package goals

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/storage"
)

var ErrInvalidGoals = errors.New("goals must be positive")

// Goals are the targeted number of training days per week and per month.
type Goals struct {
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

func Defaults() Goals {
	return Goals{Weekly: 3, Monthly: 12}
}

func (g Goals) Validate() error {
	if g.Weekly <= 0 || g.Monthly <= 0 {
		return ErrInvalidGoals
	}
	return nil
}

type Store struct {
	mutex    sync.RWMutex
	provider storage.Provider
	goals    Goals
}

func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		goals:    Defaults(),
	}
}

func (s *Store) Load(ctx context.Context) error {
	loaded := Defaults()
	if _, err := storage.LoadJSON(ctx, s.provider, storage.KeyGoals, &loaded); err != nil {
		if !errors.Is(err, storage.ErrCorrupted) {
			return fmt.Errorf("load goals: %w", err)
		}
		log.Warnf("goals corrupted, using defaults: %s", err)
		loaded = Defaults()
	}
	if loaded.Validate() != nil {
		log.Warnf("stored goals %+v invalid, using defaults", loaded)
		loaded = Defaults()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.goals = loaded
	return nil
}

func (s *Store) Get() Goals {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.goals
}

// Set replaces the goals.
func (s *Store) Set(ctx context.Context, goals Goals) error {
	if err := goals.Validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := storage.SaveJSON(ctx, s.provider, storage.KeyGoals, goals); err != nil {
		return fmt.Errorf("flush goals: %w", err)
	}
	s.goals = goals
	return nil
}
