package views

import (
	"slices"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type HistoryDay struct {
	Date pkg.Date `json:"date"`
	// MaxSets is the highest set count of the day, the column count of the history table.
	MaxSets int              `json:"maxSets"`
	Entries []workouts.Entry `json:"entries"`
}

// History groups entries by date, newest day first. Inside a day the store
// order is kept. Entries without a category get the one from the catalog.
func History(entries []workouts.Entry, cat catalog.Catalog) []HistoryDay {
	byDate := make(map[pkg.Date]*HistoryDay)
	days := []*HistoryDay{}
	for _, e := range entries {
		e = e.Clone()
		if e.Category == "" {
			e.Category = cat.CategoryOrFallback(e.Exercise)
		}

		day, ok := byDate[e.Date]
		if !ok {
			day = &HistoryDay{Date: e.Date, Entries: []workouts.Entry{}}
			byDate[e.Date] = day
			days = append(days, day)
		}
		day.Entries = append(day.Entries, e)
		day.MaxSets = max(day.MaxSets, len(e.Sets))
	}

	slices.SortFunc(days, func(a, b *HistoryDay) int {
		return b.Date.Compare(a.Date)
	})

	history := make([]HistoryDay, 0, len(days))
	for _, d := range days {
		history = append(history, *d)
	}
	return history
}
