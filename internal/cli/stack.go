package cli

import (
	"github.com/spf13/cobra"

	"github.com/daleydeng/sub2api-devdb/internal/service/stack"
	"github.com/daleydeng/sub2api-devdb/internal/util"
)

// NewUpCmd creates the up command
func NewUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Start PostgreSQL and Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return stack.New(cfg).Up()
		},
	}
}

// NewDownCmd creates the down command
func NewDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Stop PostgreSQL and Redis",
		Long: `Stop both services.

Both stops are idempotent, so down is always safe to call regardless of
what is currently running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return stack.New(cfg).Down()
		},
	}
}

// NewResetCmd creates the reset command
func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe data and reinitialize",
		Long: `Stop both services, delete their data directories, and bring both
back up from a clean slate.

This is destructive and irreversible: it exists to guarantee a known-clean
state, not to preserve data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return stack.New(cfg).Reset()
		},
	}
}

// NewStatusCmd creates the combined status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of both services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			util.StatusTable(stack.New(cfg).Describe())
			return nil
		},
	}
}
