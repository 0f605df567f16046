package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T, args []string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerConfigFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", args, err)
	}
	return cmd
}

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

func TestResolveConfigDefaults(t *testing.T) {
	clearEnv(t)
	cmd := newTestCmd(t, nil)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Postgres.Port != 5432 || cfg.Redis.Port != 6379 {
		t.Errorf("ports = %d/%d, want 5432/6379", cfg.Postgres.Port, cfg.Redis.Port)
	}
}

func TestResolveConfigFlagBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_PORT", "8888")
	t.Setenv("REDIS_DIR", "/from/env")

	cmd := newTestCmd(t, []string{"--pg-port", "9999"})

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Postgres.Port != 9999 {
		t.Errorf("Postgres.Port = %d, want flag value 9999", cfg.Postgres.Port)
	}
	// Unset flags leave the env layer intact
	if cfg.Redis.Dir != "/from/env" {
		t.Errorf("Redis.Dir = %q, want env value", cfg.Redis.Dir)
	}
}

func TestResolveConfigInvalid(t *testing.T) {
	clearEnv(t)
	cmd := newTestCmd(t, []string{"--pg-port", "99999"})

	if _, err := resolveConfig(cmd); err == nil {
		t.Error("resolveConfig() expected validation error for out-of-range port")
	}
}
