package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/bodyweight"
	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/storage"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

// State is the application state container. It is created once by main and
// handed to the HTTP handlers, the MCP server and the CLI.
type State struct {
	Workouts   *workouts.Store
	Catalog    *catalog.Store
	BodyWeight *bodyweight.Store
	Goals      *goals.Store

	provider storage.Provider
	now      func() time.Time
}

func NewState(provider storage.Provider) *State {
	return &State{
		Workouts:   workouts.NewStore(provider),
		Catalog:    catalog.NewStore(provider),
		BodyWeight: bodyweight.NewStore(provider),
		Goals:      goals.NewStore(provider),
		provider:   provider,
		now:        time.Now,
	}
}

// WithClock sets the time source for the state and all of its stores.
func (s *State) WithClock(now func() time.Time) *State {
	s.now = now
	s.Workouts.WithClock(now)
	s.BodyWeight.WithClock(now)
	return s
}

// Load reads every component from the provider. Each component is loaded even
// if another one fails, and all errors are returned together.
func (s *State) Load(ctx context.Context) error {
	err := multierr.Combine(
		s.Workouts.Load(ctx),
		s.Catalog.Load(ctx),
		s.BodyWeight.Load(ctx),
		s.Goals.Load(ctx),
	)
	if err != nil {
		return err
	}

	log.Debugf("state loaded: %d workouts, %d body weight entries", s.Workouts.Len(), len(s.BodyWeight.List()))
	return nil
}

func (s *State) Provider() storage.Provider {
	return s.provider
}

func (s *State) Today() pkg.Date {
	return pkg.Today(s.now())
}

// Snapshot copies the current state for view computation.
func (s *State) Snapshot() views.Snapshot {
	return views.Snapshot{
		Entries:    s.Workouts.List(),
		Catalog:    s.Catalog.Merged(),
		BodyWeight: s.BodyWeight.List(),
		Goals:      s.Goals.Get(),
	}
}
