package cli

import (
	"github.com/spf13/cobra"

	"github.com/daleydeng/sub2api-devdb/internal/service/redis"
)

// NewRedisCmd creates the redis command group
func NewRedisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redis",
		Short: "Manage the Redis service",
	}

	cmd.AddCommand(newRedisStartCmd())
	cmd.AddCommand(newRedisStopCmd())
	cmd.AddCommand(newRedisStatusCmd())
	cmd.AddCommand(newRedisCheckCmd())

	return cmd
}

func newRedisStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start Redis",
		Long: `Start redis-server in daemonize mode.

The working directory is created on first start; no separate init step
is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return redis.New(cfg.Redis).Start()
		},
	}
}

func newRedisStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return redis.New(cfg.Redis).Stop()
		},
	}
}

func newRedisStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			redis.New(cfg.Redis).Status()
			return nil
		},
	}
}

func newRedisCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check connection (exits non-zero if not reachable)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return redis.New(cfg.Redis).Check()
		},
	}
}
