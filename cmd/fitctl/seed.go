package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/bodyweight"
	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

var (
	seedDays int
	seedRand int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the storage with demo workouts and body weight entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, closeState, err := openState(cmd.Context())
		if err != nil {
			return err
		}
		defer closeState()

		saved, err := seed(cmd.Context(), state, gofakeit.New(seedRand), seedDays)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d workouts over %d days\n", saved, seedDays)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 60, "number of past days to generate data for")
	seedCmd.Flags().Int64Var(&seedRand, "rand-seed", 0, "random seed (0 for a random one)")
}

// seed generates a training day roughly every other day, with 2 to 4 exercises
// of 3 to 5 sets each, plus a weekly body weight entry.
func seed(ctx context.Context, state *app.State, faker *gofakeit.Faker, days int) (int, error) {
	today := state.Today()
	exercises := catalog.Builtin()
	saved := 0

	for _, input := range demoEntries(faker, exercises, today, days) {
		if _, err := state.Workouts.Save(ctx, input); err != nil {
			return saved, fmt.Errorf("save demo workout: %w", err)
		}
		saved++
	}

	weight := faker.Float64Range(70, 95)
	for d := days; d >= 0; d -= 7 {
		weight += faker.Float64Range(-0.8, 0.5)
		_, err := state.BodyWeight.Add(ctx, bodyweight.Entry{
			Date:   today.AddDays(-d),
			Weight: math.Round(weight*10) / 10,
		})
		if err != nil {
			return saved, fmt.Errorf("save demo body weight: %w", err)
		}
	}

	return saved, nil
}

func demoEntries(faker *gofakeit.Faker, cat catalog.Catalog, today pkg.Date, days int) []workouts.NewEntry {
	var entries []workouts.NewEntry
	for d := days; d >= 0; d-- {
		if faker.Float32Range(0, 1) < 0.5 {
			continue
		}
		date := today.AddDays(-d)

		for i := faker.IntRange(2, 4); i > 0; i-- {
			category := cat[faker.IntRange(0, len(cat)-1)]
			exercise := category.Exercises[faker.IntRange(0, len(category.Exercises)-1)]

			base := float64(faker.IntRange(8, 40)) * 2.5
			sets := make([]workouts.RawSet, 0, 5)
			for s := faker.IntRange(3, 5); s > 0; s-- {
				sets = append(sets, workouts.RawSet{
					Weight: workouts.RawValue(strconv.FormatFloat(base, 'f', -1, 64)),
					Reps:   workouts.RawValue(strconv.Itoa(faker.IntRange(5, 12))),
				})
			}

			entries = append(entries, workouts.NewEntry{
				Date:     date,
				Exercise: exercise,
				Sets:     sets,
			})
		}
	}
	return entries
}
