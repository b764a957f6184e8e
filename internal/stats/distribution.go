package stats

import (
	"cmp"
	"math"
	"slices"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/workouts"
)

type CategoryShare struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// CategoryDistribution counts entries per category, resolving each exercise
// through the catalog. Unknown exercises count as catalog.FallbackCategory.
// The result is ordered by count (desc), then category name. No entries, no shares.
func CategoryDistribution(entries []workouts.Entry, cat catalog.Catalog) []CategoryShare {
	if len(entries) == 0 {
		return []CategoryShare{}
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[cat.CategoryOrFallback(e.Exercise)]++
	}

	total := float64(len(entries))
	shares := make([]CategoryShare, 0, len(counts))
	for category, count := range counts {
		shares = append(shares, CategoryShare{
			Category: category,
			Count:    count,
			Percent:  int(math.Round(float64(count) / total * 100)),
		})
	}

	slices.SortFunc(shares, func(a, b CategoryShare) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return shares
}
