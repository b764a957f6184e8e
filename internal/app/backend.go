package app

import (
	"context"
	"fmt"
	"net"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/storage"
)

type BackendParams struct {
	RedisPassword    string
	PostgresUser     string
	PostgresPassword string
	TracingEnabled   bool
}

// Backend is the configured persistence provider plus the connections behind it.
// DBPool is set only for the postgres backend, Redis whenever a redis host is configured.
type Backend struct {
	Provider storage.Provider
	DBPool   *pgxpool.Pool
	Redis    *redis.Client

	closers []func() error
}

// OpenBackend builds the provider selected by cfg.StorageBackend, wrapped by the
// freecache layer when cfg.CacheSizeMB > 0 and by the key namespace when set.
func OpenBackend(ctx context.Context, cfg *config.Config, params BackendParams) (*Backend, error) {
	b := &Backend{}

	if cfg.RedisHost != "" {
		b.Redis = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		b.closers = append(b.closers, b.Redis.Close)

		if err := b.Redis.Ping(ctx).Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		}
	}

	var provider storage.Provider
	switch cfg.StorageBackend {
	case config.StorageDisk:
		disk, err := storage.NewDisk(cfg.DiskStorageRoot)
		if err != nil {
			return nil, b.closeWith(err)
		}
		provider = disk
	case config.StorageSqlite:
		sqlite, err := storage.NewSqlite(ctx, cfg.SqlitePath)
		if err != nil {
			return nil, b.closeWith(err)
		}
		b.closers = append(b.closers, sqlite.Close)
		provider = sqlite
	case config.StoragePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         params.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, b.closeWith(fmt.Errorf("new db pool: %w", err))
		}
		b.DBPool = dbPool
		b.closers = append(b.closers, func() error {
			dbPool.Close() // blocking operation
			return nil
		})

		pg := storage.NewPostgres(dbPool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, b.closeWith(err)
		}
		provider = pg
	case config.StorageRedis:
		if b.Redis == nil {
			return nil, b.closeWith(fmt.Errorf("redis storage backend needs redis_host"))
		}
		provider = storage.NewRedis(b.Redis)
	case config.StorageMemory:
		provider = storage.NewMemory()
	default:
		return nil, b.closeWith(fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend))
	}

	if cfg.CacheSizeMB > 0 {
		provider = storage.NewCached(provider, cfg.CacheSizeMB)
	}
	b.Provider = storage.WithNamespace(cfg.StorageNamespace, provider)

	log.Debugf("storage backend: %s, namespace: [%s], cache: %d MB", cfg.StorageBackend, cfg.StorageNamespace, cfg.CacheSizeMB)
	return b, nil
}

// Close releases every connection, returning all close errors combined.
func (b *Backend) Close() error {
	var err error
	for i := len(b.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, b.closers[i]())
	}
	b.closers = nil
	return err
}

func (b *Backend) closeWith(err error) error {
	return multierr.Append(err, b.Close())
}
