package stats

import (
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type GoalStatus struct {
	Target  int `json:"target"`
	Done    int `json:"done"`
	Percent int `json:"percent"`
}

type GoalProgress struct {
	Weekly  GoalStatus `json:"weekly"`
	Monthly GoalStatus `json:"monthly"`
}

// GoalsProgress counts distinct training days in the current Monday week and the
// current calendar month, up to and including today.
func GoalsProgress(entries []workouts.Entry, g goals.Goals, today pkg.Date) GoalProgress {
	weekStart := today.WeekStart()
	monthStart := today.MonthStart()

	weekDays, monthDays := 0, 0
	for _, d := range distinctDates(entries) {
		if d.After(today) {
			continue
		}
		if !d.Before(weekStart) {
			weekDays++
		}
		if !d.Before(monthStart) {
			monthDays++
		}
	}

	return GoalProgress{
		Weekly:  goalStatus(g.Weekly, weekDays),
		Monthly: goalStatus(g.Monthly, monthDays),
	}
}

func goalStatus(target, done int) GoalStatus {
	status := GoalStatus{Target: target, Done: done}
	if target > 0 {
		status.Percent = min(100, done*100/target)
	}
	return status
}
