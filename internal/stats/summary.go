package stats

import (
	"github.com/2beens/fittrack/internal/workouts"
)

type Summary struct {
	Entries      int     `json:"entries"`
	Sets         int     `json:"sets"`
	Volume       float64 `json:"volume"`
	TrainingDays int     `json:"trainingDays"`
}

func Summarize(entries []workouts.Entry) Summary {
	s := Summary{
		Entries:      len(entries),
		TrainingDays: len(distinctDates(entries)),
	}
	for _, e := range entries {
		s.Sets += len(e.Sets)
		s.Volume += e.TotalVolume()
	}
	return s
}
