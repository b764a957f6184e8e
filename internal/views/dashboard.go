package views

import (
	"github.com/2beens/fittrack/internal/bodyweight"
	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

// Snapshot is a consistent copy of the application state to compute views from.
type Snapshot struct {
	Entries    []workouts.Entry
	Catalog    catalog.Catalog
	BodyWeight []bodyweight.Entry
	Goals      goals.Goals
}

type Dashboard struct {
	Window          stats.Window           `json:"window"`
	Today           pkg.Date               `json:"today"`
	Streak          int                    `json:"streak"`
	Summary         stats.Summary          `json:"summary"`
	PersonalRecords []stats.PersonalRecord `json:"personalRecords"`
	Distribution    []stats.CategoryShare  `json:"distribution"`
	WeeklyVolume    []stats.WeekVolume     `json:"weeklyVolume"`
	Activity        []stats.DayActivity    `json:"activity"`
	Goals           stats.GoalProgress     `json:"goals"`
	BodyWeight      stats.BodyWeightTrend  `json:"bodyWeight"`
}

// BuildDashboard computes the dashboard. Only the summary and the category
// distribution follow the window, everything else looks at the whole history.
func BuildDashboard(snap Snapshot, window stats.Window, today pkg.Date) Dashboard {
	filtered := stats.FilterByWindow(snap.Entries, window, today)

	return Dashboard{
		Window:          window,
		Today:           today,
		Streak:          stats.Streak(snap.Entries, today),
		Summary:         stats.Summarize(filtered),
		PersonalRecords: stats.SortedRecords(stats.PersonalRecords(snap.Entries)),
		Distribution:    stats.CategoryDistribution(filtered, snap.Catalog),
		WeeklyVolume:    stats.WeeklyVolume(snap.Entries),
		Activity:        stats.ActivitySeries(snap.Entries, today),
		Goals:           stats.GoalsProgress(snap.Entries, snap.Goals, today),
		BodyWeight:      stats.BodyWeight(snap.BodyWeight),
	}
}

type Progress struct {
	Exercise string                `json:"exercise"`
	Category string                `json:"category"`
	Points   []stats.ProgressPoint `json:"points"`
	Record   *stats.PersonalRecord `json:"record,omitempty"`
}

func BuildProgress(snap Snapshot, exercise string) Progress {
	p := Progress{
		Exercise: exercise,
		Category: snap.Catalog.CategoryOrFallback(exercise),
		Points:   stats.ExerciseProgress(snap.Entries, exercise),
	}
	if record, ok := stats.PersonalRecords(snap.Entries)[exercise]; ok {
		p.Record = &record
	}
	return p
}
