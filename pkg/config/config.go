package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Snapshot SnapshotConfig
	Redis    RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Snapshot.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CD_APP_ENV" default:"dev"`
	Addr         string `envconfig:"CD_APP_ADDR" default:"127.0.0.1:8712"`
	LogLevel     string `envconfig:"CD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	// Path is the sqlite database file. The default keeps kiosk data next to
	// the binary; ":memory:" gives an ephemeral store.
	Path        string        `envconfig:"CD_STORE_PATH" default:"counseldesk.db"`
	BusyTimeout time.Duration `envconfig:"CD_STORE_BUSY_TIMEOUT" default:"5s"`
}

type SnapshotConfig struct {
	// Backend selects where the session snapshot lives: "memory" mirrors the
	// per-process scoping of the original kiosk, "redis" keeps snapshots in a
	// shared keyspace for multi-process deployments.
	Backend string        `envconfig:"CD_SNAPSHOT_BACKEND" default:"memory"`
	Scope   string        `envconfig:"CD_SNAPSHOT_SCOPE" default:"kiosk"`
	TTL     time.Duration `envconfig:"CD_SNAPSHOT_TTL" default:"12h"`
}

func (s SnapshotConfig) validate() error {
	switch s.Backend {
	case SnapshotBackendMemory, SnapshotBackendRedis:
	default:
		return fmt.Errorf("unknown snapshot backend %q", s.Backend)
	}
	if strings.TrimSpace(s.Scope) == "" {
		return fmt.Errorf("snapshot scope is required")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"CD_REDIS_URL"`
	Address      string        `envconfig:"CD_REDIS_ADDR"`
	Password     string        `envconfig:"CD_REDIS_PASSWORD"`
	DB           int           `envconfig:"CD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CD_REDIS_WRITE_TIMEOUT" default:"5s"`
}
