package stats

import (
	"slices"

	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type ProgressPoint struct {
	Date        pkg.Date `json:"date"`
	MaxWeight   float64  `json:"maxWeight"`
	TotalVolume float64  `json:"totalVolume"`
}

// ExerciseProgress returns one point per entry of the exercise, by date ascending.
// Entries on the same date keep their store order.
func ExerciseProgress(entries []workouts.Entry, exercise string) []ProgressPoint {
	points := []ProgressPoint{}
	if exercise == "" {
		return points
	}

	matching := make([]workouts.Entry, 0)
	for _, e := range entries {
		if e.Exercise == exercise {
			matching = append(matching, e)
		}
	}
	slices.SortStableFunc(matching, func(a, b workouts.Entry) int {
		return a.Date.Compare(b.Date)
	})

	for _, e := range matching {
		points = append(points, ProgressPoint{
			Date:        e.Date,
			MaxWeight:   e.MaxWeight(),
			TotalVolume: e.TotalVolume(),
		})
	}
	return points
}
