package stats

import (
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type Window string

const (
	Window7d  Window = "7d"
	Window30d Window = "30d"
	Window90d Window = "90d"
	WindowAll Window = "all"
)

var ErrUnknownWindow = errors.New("unknown time window")

// ParseWindow accepts 7d, 30d, 90d and all. An empty string means all.
func ParseWindow(s string) (Window, error) {
	switch w := Window(s); w {
	case "":
		return WindowAll, nil
	case Window7d, Window30d, Window90d, WindowAll:
		return w, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownWindow, s)
	}
}

// Days returns the window length in days, 0 for the unbounded window.
func (w Window) Days() int {
	switch w {
	case Window7d:
		return 7
	case Window30d:
		return 30
	case Window90d:
		return 90
	default:
		return 0
	}
}

// FilterByWindow keeps the entries dated after today minus the window length,
// so a 7d window covers today and the six days before it. There is no upper bound.
// The unbounded window returns all entries in their original order.
func FilterByWindow(entries []workouts.Entry, window Window, today pkg.Date) []workouts.Entry {
	days := window.Days()
	filtered := make([]workouts.Entry, 0, len(entries))
	if days == 0 {
		return append(filtered, entries...)
	}

	cutoff := today.AddDays(-days)
	for _, e := range entries {
		if e.Date.After(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
