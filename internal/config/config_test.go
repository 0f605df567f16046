package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every environment variable the loader consults so tests
// are insulated from the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PGDATA", "DATABASE_HOST", "DATABASE_PORT",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Postgres.DataDir != ".dev-data/postgres" {
		t.Errorf("Postgres.DataDir = %q", cfg.Postgres.DataDir)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want 5432", cfg.Postgres.Port)
	}
	if cfg.Postgres.User != "sub2api" || cfg.Postgres.Database != "sub2api" {
		t.Errorf("Postgres user/db = %q/%q, want sub2api/sub2api", cfg.Postgres.User, cfg.Postgres.Database)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want 6379", cfg.Redis.Port)
	}
	if cfg.Redis.Dir != ".dev-data/redis" {
		t.Errorf("Redis.Dir = %q", cfg.Redis.Dir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PGDATA", "/custom/pgdata")
	t.Setenv("DATABASE_PORT", "5599")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("REDIS_PORT", "6399")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Postgres.DataDir != "/custom/pgdata" {
		t.Errorf("Postgres.DataDir = %q", cfg.Postgres.DataDir)
	}
	if cfg.Postgres.Port != 5599 {
		t.Errorf("Postgres.Port = %d, want 5599", cfg.Postgres.Port)
	}
	if cfg.Postgres.Password != "secret" {
		t.Errorf("Postgres.Password = %q", cfg.Postgres.Password)
	}
	if cfg.Redis.Port != 6399 {
		t.Errorf("Redis.Port = %d, want 6399", cfg.Redis.Port)
	}
}

func TestLoadInvalidEnvIntKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_PORT", "not-a-port")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want default 5432", cfg.Postgres.Port)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "devdb.yaml")
	content := `postgres:
  host: db.local
  port: 15432
redis:
  dir: /srv/redis
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Postgres.Host != "db.local" || cfg.Postgres.Port != 15432 {
		t.Errorf("Postgres host/port = %q/%d", cfg.Postgres.Host, cfg.Postgres.Port)
	}
	if cfg.Redis.Dir != "/srv/redis" {
		t.Errorf("Redis.Dir = %q", cfg.Redis.Dir)
	}
	// Fields absent from the file keep their defaults
	if cfg.Postgres.User != "sub2api" {
		t.Errorf("Postgres.User = %q, want default", cfg.Postgres.User)
	}
}

func TestLoadEnvBeatsYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_PORT", "7777")

	path := filepath.Join(t.TempDir(), "devdb.yaml")
	if err := os.WriteFile(path, []byte("postgres:\n  port: 6666\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Postgres.Port != 7777 {
		t.Errorf("Postgres.Port = %d, want env value 7777", cfg.Postgres.Port)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with explicit missing file should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty data dir", func(c *Config) { c.Postgres.DataDir = "" }, true},
		{"empty user", func(c *Config) { c.Postgres.User = "" }, true},
		{"pg port too low", func(c *Config) { c.Postgres.Port = 0 }, true},
		{"pg port too high", func(c *Config) { c.Postgres.Port = 70000 }, true},
		{"empty redis dir", func(c *Config) { c.Redis.Dir = "" }, true},
		{"redis port invalid", func(c *Config) { c.Redis.Port = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
