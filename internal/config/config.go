package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the optional overlay file consulted when --config is not given.
const DefaultFile = "devdb.yaml"

// PostgresConfig holds the connection and on-disk settings for the
// development PostgreSQL instance.
type PostgresConfig struct {
	DataDir  string `yaml:"data-dir"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// RedisConfig holds the connection and working-directory settings for the
// development Redis instance.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	Dir      string `yaml:"dir"`
}

// Config is the full configuration surface, passed by value to every
// controller operation.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
}

// Default returns the built-in local-development defaults.
// They mirror the sub2api deploy environment.
func Default() Config {
	return Config{
		Postgres: PostgresConfig{
			DataDir:  ".dev-data/postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "sub2api",
			Password: "",
			Database: "sub2api",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			Password: "",
			Dir:      ".dev-data/redis",
		},
	}
}

// Load resolves the configuration from built-in defaults, an optional YAML
// overlay file, and environment variables, in increasing precedence.
// Flag overrides are applied by the CLI layer on top of the result.
//
// If file is empty, DefaultFile is used when present; a missing explicit
// file is an error.
func Load(file string) (Config, error) {
	cfg := Default()

	path := file
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
// Names match the sub2api deploy environment (deploy/.env).
func (c *Config) applyEnv() {
	c.Postgres.DataDir = getenv("PGDATA", c.Postgres.DataDir)
	c.Postgres.Host = getenv("DATABASE_HOST", c.Postgres.Host)
	c.Postgres.Port = getenvInt("DATABASE_PORT", c.Postgres.Port)
	c.Postgres.User = getenv("POSTGRES_USER", c.Postgres.User)
	c.Postgres.Password = getenv("POSTGRES_PASSWORD", c.Postgres.Password)
	c.Postgres.Database = getenv("POSTGRES_DB", c.Postgres.Database)

	c.Redis.Host = getenv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = getenvInt("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.Dir = getenv("REDIS_DIR", c.Redis.Dir)
}

// Validate rejects configurations no controller operation could act on.
func (c *Config) Validate() error {
	if c.Postgres.DataDir == "" {
		return fmt.Errorf("postgres data directory required")
	}
	if c.Postgres.User == "" {
		return fmt.Errorf("postgres user required")
	}
	if c.Postgres.Port <= 0 || c.Postgres.Port > 65535 {
		return fmt.Errorf("invalid postgres port: %d", c.Postgres.Port)
	}
	if c.Redis.Dir == "" {
		return fmt.Errorf("redis working directory required")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Redis.Port)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
