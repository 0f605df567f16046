package cli

import (
	"github.com/spf13/cobra"

	"github.com/daleydeng/sub2api-devdb/internal/service/postgres"
)

// NewPgCmd creates the pg command group
func NewPgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pg",
		Short: "Manage the PostgreSQL service",
	}

	cmd.AddCommand(newPgInitCmd())
	cmd.AddCommand(newPgStartCmd())
	cmd.AddCommand(newPgStopCmd())
	cmd.AddCommand(newPgStatusCmd())
	cmd.AddCommand(newPgCheckCmd())

	return cmd
}

func newPgInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the data directory (first time only)",
		Long: `Initialize the PostgreSQL data directory with initdb.

A no-op if the directory is already initialized, so it is safe to run
before every start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return postgres.New(cfg.Postgres).Init()
		},
	}
}

func newPgStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return postgres.New(cfg.Postgres).Start()
		},
	}
}

func newPgStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return postgres.New(cfg.Postgres).Stop()
		},
	}
}

func newPgStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			postgres.New(cfg.Postgres).Status()
			return nil
		},
	}
}

func newPgCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check connection (exits non-zero if not reachable)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return postgres.New(cfg.Postgres).Check()
		},
	}
}
