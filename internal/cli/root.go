package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devdb",
	Short: "Manage PostgreSQL and Redis for sub2api development",
	Long: `devdb: manage the PostgreSQL and Redis instances backing sub2api
during local development.

Each service is driven through the engine's own tools (initdb, pg_ctl,
redis-server) and observed through network liveness probes, so every
command is safe to re-run: already-initialized and already-stopped states
are treated as success.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerConfigFlags(rootCmd)

	// Per-service subcommands
	rootCmd.AddCommand(NewPgCmd())
	rootCmd.AddCommand(NewRedisCmd())

	// Stack-level subcommands
	rootCmd.AddCommand(NewUpCmd())
	rootCmd.AddCommand(NewDownCmd())
	rootCmd.AddCommand(NewResetCmd())
	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewLogsCmd())
	rootCmd.AddCommand(NewDoctorCmd())
}
