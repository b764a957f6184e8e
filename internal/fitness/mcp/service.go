package mcp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

var ErrInvalidRange = errors.New("from_date must not be after to_date")

// StateReader is the read side of the application state (app.State implements it).
type StateReader interface {
	Snapshot() views.Snapshot
	Today() pkg.Date
}

// statsService provides the fitness data the tools expose.
// Used by Handler for testability.
type statsService interface {
	Dashboard(window stats.Window) views.Dashboard
	PersonalRecords() []stats.PersonalRecord
	ExerciseProgress(exercise string) views.Progress
	WorkoutsForRange(params RangeParams) ([]workouts.Entry, error)
	Catalog() catalog.Catalog
}

type RangeParams struct {
	From     pkg.Date
	To       pkg.Date
	Exercise string
	Category string
}

// StatsService computes the tool results from state snapshots.
type StatsService struct {
	state StateReader
}

func NewStatsService(state StateReader) *StatsService {
	return &StatsService{
		state: state,
	}
}

func (s *StatsService) Dashboard(window stats.Window) views.Dashboard {
	return views.BuildDashboard(s.state.Snapshot(), window, s.state.Today())
}

func (s *StatsService) PersonalRecords() []stats.PersonalRecord {
	return stats.SortedRecords(stats.PersonalRecords(s.state.Snapshot().Entries))
}

func (s *StatsService) ExerciseProgress(exercise string) views.Progress {
	return views.BuildProgress(s.state.Snapshot(), exercise)
}

// WorkoutsForRange returns the entries dated within [From, To], both ends included,
// in store order. Category matches the explicit entry category, or the catalog one.
func (s *StatsService) WorkoutsForRange(params RangeParams) ([]workouts.Entry, error) {
	if params.From.After(params.To) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, params.From, params.To)
	}

	snap := s.state.Snapshot()
	result := []workouts.Entry{}
	for _, e := range snap.Entries {
		if e.Date.Before(params.From) || e.Date.After(params.To) {
			continue
		}
		if params.Exercise != "" && !strings.EqualFold(e.Exercise, params.Exercise) {
			continue
		}
		category := e.Category
		if category == "" {
			category = snap.Catalog.CategoryOrFallback(e.Exercise)
		}
		if params.Category != "" && !strings.EqualFold(category, params.Category) {
			continue
		}
		e = e.Clone()
		e.Category = category
		result = append(result, e)
	}
	return result, nil
}

func (s *StatsService) Catalog() catalog.Catalog {
	return s.state.Snapshot().Catalog
}
