package stats

import (
	"slices"

	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

const (
	WeeklyVolumeWeeks = 12
	ActivityDays      = 90
)

type WeekVolume struct {
	WeekStart pkg.Date `json:"week"`
	Volume    float64  `json:"volume"`
}

type DayActivity struct {
	Date  pkg.Date `json:"date"`
	Count int      `json:"count"`
}

// WeeklyVolume sums weight × reps per Monday-starting week over all entries.
// Weeks come oldest first, limited to the most recent 12 weeks that have entries.
func WeeklyVolume(entries []workouts.Entry) []WeekVolume {
	perWeek := make(map[pkg.Date]float64)
	for _, e := range entries {
		perWeek[e.Date.WeekStart()] += e.TotalVolume()
	}

	weeks := make([]WeekVolume, 0, len(perWeek))
	for weekStart, volume := range perWeek {
		weeks = append(weeks, WeekVolume{WeekStart: weekStart, Volume: volume})
	}
	slices.SortFunc(weeks, func(a, b WeekVolume) int {
		return a.WeekStart.Compare(b.WeekStart)
	})

	if len(weeks) > WeeklyVolumeWeeks {
		weeks = weeks[len(weeks)-WeeklyVolumeWeeks:]
	}
	return weeks
}

// ActivitySeries counts entries per day for the 90 days ending today, oldest first.
func ActivitySeries(entries []workouts.Entry, today pkg.Date) []DayActivity {
	perDay := make(map[pkg.Date]int)
	for _, e := range entries {
		perDay[e.Date]++
	}

	series := make([]DayActivity, ActivityDays)
	first := today.AddDays(-(ActivityDays - 1))
	for i := range series {
		day := first.AddDays(i)
		series[i] = DayActivity{Date: day, Count: perDay[day]}
	}
	return series
}
