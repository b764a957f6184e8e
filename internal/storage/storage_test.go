package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/2beens/fittrack/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// modernc sqlite keeps no goroutines, but database/sql may leave its opener around briefly
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// providerContract checks the behaviour every backend must share.
func providerContract(t *testing.T, p storage.Provider) {
	t.Helper()
	ctx := context.Background()

	value, found, err := p.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)

	require.NoError(t, p.Save(ctx, storage.KeyWorkouts, []byte(`[{"id":1}]`)))
	value, found, err = p.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":1}]`, string(value))

	// overwrite
	require.NoError(t, p.Save(ctx, storage.KeyWorkouts, []byte(`[]`)))
	value, found, err = p.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[]`, string(value))

	// keys are independent
	_, found, err = p.Load(ctx, storage.KeyGoals)
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = p.Load(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyKey)
	assert.ErrorIs(t, p.Save(ctx, "", []byte(`{}`)), storage.ErrEmptyKey)
}

func TestMemory(t *testing.T) {
	providerContract(t, storage.NewMemory())
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()

	value := []byte(`{"weekly":3}`)
	require.NoError(t, m.Save(ctx, storage.KeyGoals, value))
	value[2] = 'X'

	loaded, _, err := m.Load(ctx, storage.KeyGoals)
	require.NoError(t, err)
	assert.Equal(t, `{"weekly":3}`, string(loaded))
	assert.Equal(t, []string{storage.KeyGoals}, m.Keys())
}

func TestDisk(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	d, err := storage.NewDisk(root)
	require.NoError(t, err)
	assert.Equal(t, root, d.RootPath())

	providerContract(t, d)

	// one json file per key, no temp files left behind
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fitness-workouts.json", entries[0].Name())
}

func TestDisk_NamespacedKeys(t *testing.T) {
	root := t.TempDir()
	d, err := storage.NewDisk(root)
	require.NoError(t, err)

	p := storage.WithNamespace("alice", d)
	require.NoError(t, p.Save(context.Background(), storage.KeyGoals, []byte(`{"weekly":4,"monthly":16}`)))

	_, err = os.Stat(filepath.Join(root, "alice__fitness-goals.json"))
	assert.NoError(t, err)
}

func TestDisk_InvalidRoot(t *testing.T) {
	_, err := storage.NewDisk("")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = storage.NewDisk(file)
	assert.Error(t, err)
}

func TestSqlite(t *testing.T) {
	s, err := storage.NewSqlite(context.Background(), filepath.Join(t.TempDir(), "db", "fittrack.db"))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, s.Close())
	}()

	providerContract(t, s)
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	defer db.Close()

	r := storage.NewRedis(db)

	mock.ExpectGet(storage.KeyWorkouts).RedisNil()
	_, found, err := r.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectSet(storage.KeyWorkouts, []byte(`[]`), 0).SetVal("OK")
	require.NoError(t, r.Save(ctx, storage.KeyWorkouts, []byte(`[]`)))

	mock.ExpectGet(storage.KeyWorkouts).SetVal(`[]`)
	value, found, err := r.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(value))

	mock.ExpectGet(storage.KeyGoals).SetErr(errors.New("connection refused"))
	_, _, err = r.Load(ctx, storage.KeyGoals)
	assert.ErrorContains(t, err, "connection refused")

	mock.ExpectSet(storage.KeyGoals, []byte(`{}`), 0).SetErr(errors.New("read only replica"))
	assert.ErrorContains(t, r.Save(ctx, storage.KeyGoals, []byte(`{}`)), "read only replica")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNamespaced(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	inner := NewMockProvider(ctrl)

	inner.EXPECT().Save(gomock.Any(), "dev:fitness-goals", []byte(`{}`)).Return(nil)
	inner.EXPECT().Load(gomock.Any(), "dev:fitness-goals").Return([]byte(`{}`), true, nil)

	p := storage.WithNamespace("dev", inner)
	require.NoError(t, p.Save(ctx, storage.KeyGoals, []byte(`{}`)))
	value, found, err := p.Load(ctx, storage.KeyGoals)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{}`, string(value))

	// empty namespace is a pass-through
	assert.Same(t, inner, storage.WithNamespace("", inner))
}

func TestCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	inner := NewMockProvider(ctrl)
	c := storage.NewCached(inner, 1)

	// miss, goes to inner once, then served from cache
	inner.EXPECT().Load(gomock.Any(), storage.KeyWorkouts).Return([]byte(`[1]`), true, nil).Times(1)
	for i := 0; i < 3; i++ {
		value, found, err := c.Load(ctx, storage.KeyWorkouts)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[1]`, string(value))
	}

	// not found is not cached
	inner.EXPECT().Load(gomock.Any(), storage.KeyGoals).Return(nil, false, nil).Times(2)
	for i := 0; i < 2; i++ {
		_, found, err := c.Load(ctx, storage.KeyGoals)
		require.NoError(t, err)
		assert.False(t, found)
	}

	// save refreshes the cache
	inner.EXPECT().Save(gomock.Any(), storage.KeyWorkouts, []byte(`[1,2]`)).Return(nil)
	require.NoError(t, c.Save(ctx, storage.KeyWorkouts, []byte(`[1,2]`)))
	value, _, err := c.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(value))

	// failed save drops the cached value, next load goes to inner
	inner.EXPECT().Save(gomock.Any(), storage.KeyWorkouts, []byte(`[1,2,3]`)).Return(errors.New("disk full"))
	assert.EqualError(t, c.Save(ctx, storage.KeyWorkouts, []byte(`[1,2,3]`)), "disk full")
	inner.EXPECT().Load(gomock.Any(), storage.KeyWorkouts).Return([]byte(`[1,2]`), true, nil)
	value, _, err = c.Load(ctx, storage.KeyWorkouts)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(value))

	assert.Greater(t, c.HitRate(), 0.0)
}
