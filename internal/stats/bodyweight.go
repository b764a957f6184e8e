package stats

import (
	"slices"

	"github.com/2beens/fittrack/internal/bodyweight"
)

type BodyWeightTrend struct {
	Points []bodyweight.Entry `json:"points"`
	Latest float64            `json:"latest"`
	// Change is latest minus the first (oldest) weight.
	Change float64 `json:"change"`
}

// BodyWeight sorts the log by date ascending. Same-date entries keep their order.
func BodyWeight(entries []bodyweight.Entry) BodyWeightTrend {
	points := append([]bodyweight.Entry{}, entries...)
	slices.SortStableFunc(points, func(a, b bodyweight.Entry) int {
		return a.Date.Compare(b.Date)
	})

	trend := BodyWeightTrend{Points: points}
	if len(points) > 0 {
		trend.Latest = points[len(points)-1].Weight
		trend.Change = trend.Latest - points[0].Weight
	}
	return trend
}
