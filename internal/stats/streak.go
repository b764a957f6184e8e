package stats

import (
	"slices"

	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

// Streak counts the consecutive days with at least one entry, walking back
// from today, or from yesterday when today has no entry yet.
// Entries dated after today are ignored.
func Streak(entries []workouts.Entry, today pkg.Date) int {
	dates := distinctDates(entries)
	dates = slices.DeleteFunc(dates, func(d pkg.Date) bool {
		return d.After(today)
	})
	if len(dates) == 0 {
		return 0
	}

	slices.SortFunc(dates, func(a, b pkg.Date) int {
		return b.Compare(a)
	})

	expected := today.AddDays(-1)
	if dates[0].Equal(today) {
		expected = today
	}

	streak := 0
	for _, d := range dates {
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak
}

func distinctDates(entries []workouts.Entry) []pkg.Date {
	seen := make(map[pkg.Date]bool, len(entries))
	dates := make([]pkg.Date, 0, len(entries))
	for _, e := range entries {
		if seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		dates = append(dates, e.Date)
	}
	return dates
}
