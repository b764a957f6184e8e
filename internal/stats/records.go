package stats

import (
	"slices"
	"strings"

	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

// PersonalRecord is the single set with the highest weight × reps for an exercise.
type PersonalRecord struct {
	Exercise string   `json:"exercise"`
	Weight   float64  `json:"weight"`
	Reps     int      `json:"reps"`
	Volume   float64  `json:"volume"`
	Date     pkg.Date `json:"date"`
}

// PersonalRecords scans every set of every entry. On equal volume the set seen
// first (store order, then set order) is kept.
func PersonalRecords(entries []workouts.Entry) map[string]PersonalRecord {
	records := make(map[string]PersonalRecord)
	for _, e := range entries {
		for _, set := range e.Sets {
			volume := set.Volume()
			current, ok := records[e.Exercise]
			if ok && volume <= current.Volume {
				continue
			}
			records[e.Exercise] = PersonalRecord{
				Exercise: e.Exercise,
				Weight:   set.Weight,
				Reps:     set.Reps,
				Volume:   volume,
				Date:     e.Date,
			}
		}
	}
	return records
}

// SortedRecords returns the records ordered by exercise name.
func SortedRecords(records map[string]PersonalRecord) []PersonalRecord {
	list := make([]PersonalRecord, 0, len(records))
	for _, r := range records {
		list = append(list, r)
	}
	slices.SortFunc(list, func(a, b PersonalRecord) int {
		return strings.Compare(a.Exercise, b.Exercise)
	})
	return list
}
