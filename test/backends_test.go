//go:build integration_test

package test

import (
	"context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/workouts"
)

// TestRedisBackend reloads a state from a second backend on the same redis,
// so the data has to come out of redis and not from the in-process cache.
func (s *IntegrationTestSuite) TestRedisBackend() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	cfg := *s.cfg
	cfg.StorageBackend = config.StorageRedis
	cfg.StorageNamespace = "redis-it"
	cfg.CacheSizeMB = 0

	backend, err := app.OpenBackend(ctx, &cfg, app.BackendParams{})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, backend.Close())
	}()

	state := app.NewState(backend.Provider)
	require.NoError(t, state.Load(ctx))
	assert.Equal(t, goals.Defaults(), state.Goals.Get())

	_, err = state.Workouts.Save(ctx, workouts.NewEntry{
		Exercise: "Latzug",
		Sets:     []workouts.RawSet{{Weight: "50", Reps: "12"}},
	})
	require.NoError(t, err)
	require.NoError(t, state.Goals.Set(ctx, goals.Goals{Weekly: 5, Monthly: 20}))

	otherBackend, err := app.OpenBackend(ctx, &cfg, app.BackendParams{})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, otherBackend.Close())
	}()

	reloaded := app.NewState(otherBackend.Provider)
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, 1, reloaded.Workouts.Len())
	assert.Equal(t, "Latzug", reloaded.Workouts.List()[0].Exercise)
	assert.Equal(t, goals.Goals{Weekly: 5, Monthly: 20}, reloaded.Goals.Get())

	keys, err := otherBackend.Redis.Keys(ctx, "redis-it:*").Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"redis-it:fitness-workouts", "redis-it:fitness-goals"}, keys)
}
