package workouts

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrNoValidSets   = fmt.Errorf("%w: Bitte mindestens einen Satz mit Gewicht und Wiederholungen eingeben!", ErrValidation)
	ErrEntryNotFound = errors.New("workout entry not found")
	ErrNotConfirmed  = errors.New("delete not confirmed")
)
