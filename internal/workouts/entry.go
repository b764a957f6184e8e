package workouts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/pkg"
)

// Upper bounds for a single set. They keep volume sums finite.
const (
	MaxSetWeight = 10000.0
	MaxSetReps   = 10000
)

type SetRecord struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Volume is weight × reps.
func (s SetRecord) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// InRange reports whether the set lies within the accepted bounds.
func (s SetRecord) InRange() bool {
	return validWeight(s.Weight) && s.Reps >= 0 && s.Reps <= MaxSetReps
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && w >= 0 && w <= MaxSetWeight
}

type Entry struct {
	ID       int64       `json:"id"`
	Date     pkg.Date    `json:"date"`
	Exercise string      `json:"exercise"`
	Category string      `json:"category,omitempty"`
	Sets     []SetRecord `json:"sets"`
}

func (e Entry) Clone() Entry {
	c := e
	c.Sets = append([]SetRecord{}, e.Sets...)
	return c
}

// MaxWeight returns the highest weight over all sets, 0 without sets.
func (e Entry) MaxWeight() float64 {
	maxWeight := 0.0
	for i, s := range e.Sets {
		if i == 0 || s.Weight > maxWeight {
			maxWeight = s.Weight
		}
	}
	return maxWeight
}

// TotalVolume is the sum of weight × reps over all sets.
func (e Entry) TotalVolume() float64 {
	total := 0.0
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

// RawValue is a user supplied number that may arrive as a JSON string, a JSON number or null.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("raw value must be a string or a number: %w", err)
	}
	*v = RawValue(n.String())
	return nil
}

// RawSet is a set as entered by the user, before validation.
type RawSet struct {
	Weight RawValue `json:"weight"`
	Reps   RawValue `json:"reps"`
}

// Parse returns the validated set. A set is valid only if weight parses as a
// real number in [0, MaxSetWeight] and reps as a whole number in [0, MaxSetReps].
// Whole-valued decimals like "8.0" count as reps.
func (r RawSet) Parse() (SetRecord, bool) {
	weightStr := strings.TrimSpace(string(r.Weight))
	repsStr := strings.TrimSpace(string(r.Reps))
	if weightStr == "" || repsStr == "" {
		return SetRecord{}, false
	}

	// "62,5" is how the weight gets typed on a german keyboard
	weight, err := strconv.ParseFloat(strings.Replace(weightStr, ",", ".", 1), 64)
	if err != nil || !validWeight(weight) {
		return SetRecord{}, false
	}

	reps, err := strconv.ParseFloat(repsStr, 64)
	if err != nil || math.IsNaN(reps) || reps != math.Trunc(reps) || reps < 0 || reps > MaxSetReps {
		return SetRecord{}, false
	}

	return SetRecord{Weight: weight, Reps: int(reps)}, true
}

// NewEntry is the input for saving or replacing an entry.
type NewEntry struct {
	Date     pkg.Date `json:"date"`
	Exercise string   `json:"exercise"`
	Category string   `json:"category,omitempty"`
	Sets     []RawSet `json:"sets"`
}

// validate returns the valid sets of the input, dropping the invalid ones.
func (n NewEntry) validate() ([]SetRecord, error) {
	if strings.TrimSpace(n.Exercise) == "" {
		return nil, fmt.Errorf("%w: exercise empty", ErrValidation)
	}

	validSets := make([]SetRecord, 0, len(n.Sets))
	for _, raw := range n.Sets {
		if set, ok := raw.Parse(); ok {
			validSets = append(validSets, set)
		}
	}
	if len(validSets) == 0 {
		return nil, ErrNoValidSets
	}

	return validSets, nil
}
