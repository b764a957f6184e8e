package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageDisk     = "disk"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageSqlite   = "sqlite"
	StorageMemory   = "memory"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	StorageBackend   string `toml:"storage_backend"`
	StorageNamespace string `toml:"storage_namespace"`
	DiskStorageRoot  string `toml:"disk_storage_root"`
	SqlitePath       string `toml:"sqlite_path"`
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	RedisHost        string `toml:"redis_host"`
	RedisPort        string `toml:"redis_port"`
	CacheSizeMB      int    `toml:"cache_size_mb"`
	// browser origins allowed on top of the local dev ones
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
	// rate limiting of mutating routes, only when redis is reachable
	RateLimitAllowedPerMin int `toml:"rate_limit_allowed_per_min"`
	// backups
	BackupCronSpec string `toml:"backup_cron_spec"`
	BackupDir      string `toml:"backup_dir"`
	// mcp
	MCPEnabled bool `toml:"mcp_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the config section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.StorageBackend == "" {
		c.StorageBackend = StorageDisk
	}
	if c.DiskStorageRoot == "" {
		c.DiskStorageRoot = "./data"
	}
	if c.SqlitePath == "" {
		c.SqlitePath = "./data/fittrack.db"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.RateLimitAllowedPerMin == 0 {
		c.RateLimitAllowedPerMin = 60
	}
}
