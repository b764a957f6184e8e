package fitness

import (
	"context"

	"github.com/2beens/fittrack/internal/bodyweight"
	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=fitness_test

type workoutsStore interface {
	List() []workouts.Entry
	Save(ctx context.Context, input workouts.NewEntry) (workouts.Entry, error)
	Replace(ctx context.Context, id int64, input workouts.NewEntry) (workouts.Entry, error)
	Delete(ctx context.Context, id int64, confirmed bool) error
	Len() int
	Version() uint64
}

type catalogStore interface {
	Merged() catalog.Catalog
	Add(ctx context.Context, category, name string) (bool, error)
}

type bodyWeightStore interface {
	List() []bodyweight.Entry
	Add(ctx context.Context, entry bodyweight.Entry) (bodyweight.Entry, error)
}

type goalsStore interface {
	Get() goals.Goals
	Set(ctx context.Context, g goals.Goals) error
}
