package config

const (
	// EnvPrefix scopes every environment variable read by Load.
	EnvPrefix = "CD"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	SnapshotBackendMemory = "memory"
	SnapshotBackendRedis  = "redis"
)
