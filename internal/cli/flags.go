package cli

import (
	"github.com/spf13/cobra"

	"github.com/daleydeng/sub2api-devdb/internal/config"
)

// registerConfigFlags binds the full configuration surface as persistent
// flags. Resolution order is flag > environment > YAML overlay > default;
// flags are applied in resolveConfig only when explicitly set, so the env
// and file layers keep working underneath them.
func registerConfigFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.PersistentFlags()

	f.String("config", "", "YAML config overlay (default devdb.yaml if present)")

	f.String("pg-data", def.Postgres.DataDir, "PostgreSQL data directory (env PGDATA)")
	f.String("pg-host", def.Postgres.Host, "PostgreSQL host (env DATABASE_HOST)")
	f.Int("pg-port", def.Postgres.Port, "PostgreSQL port (env DATABASE_PORT)")
	f.String("pg-user", def.Postgres.User, "PostgreSQL admin user (env POSTGRES_USER)")
	f.String("pg-password", def.Postgres.Password, "PostgreSQL admin password (env POSTGRES_PASSWORD)")
	f.String("pg-db", def.Postgres.Database, "application database name (env POSTGRES_DB)")

	f.String("redis-host", def.Redis.Host, "Redis host (env REDIS_HOST)")
	f.Int("redis-port", def.Redis.Port, "Redis port (env REDIS_PORT)")
	f.String("redis-password", def.Redis.Password, "Redis password (env REDIS_PASSWORD)")
	f.String("redis-dir", def.Redis.Dir, "Redis working directory (env REDIS_DIR)")
}

// resolveConfig loads the layered configuration and applies any flags the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()

	file, _ := f.GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return cfg, err
	}

	if f.Changed("pg-data") {
		cfg.Postgres.DataDir, _ = f.GetString("pg-data")
	}
	if f.Changed("pg-host") {
		cfg.Postgres.Host, _ = f.GetString("pg-host")
	}
	if f.Changed("pg-port") {
		cfg.Postgres.Port, _ = f.GetInt("pg-port")
	}
	if f.Changed("pg-user") {
		cfg.Postgres.User, _ = f.GetString("pg-user")
	}
	if f.Changed("pg-password") {
		cfg.Postgres.Password, _ = f.GetString("pg-password")
	}
	if f.Changed("pg-db") {
		cfg.Postgres.Database, _ = f.GetString("pg-db")
	}
	if f.Changed("redis-host") {
		cfg.Redis.Host, _ = f.GetString("redis-host")
	}
	if f.Changed("redis-port") {
		cfg.Redis.Port, _ = f.GetInt("redis-port")
	}
	if f.Changed("redis-password") {
		cfg.Redis.Password, _ = f.GetString("redis-password")
	}
	if f.Changed("redis-dir") {
		cfg.Redis.Dir, _ = f.GetString("redis-dir")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
