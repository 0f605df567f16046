package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daleydeng/sub2api-devdb/internal/util"
)

// logTailLines is how many trailing lines to show per service log.
const logTailLines = 120

// NewLogsCmd creates the logs command
func NewLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs [pg|redis]",
		Short: "Show recent engine logs",
		Long: `Display the most recent entries from the engine log files
(postgres.log in the data directory, redis.log in the Redis working
directory). With no argument, shows both.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			target := ""
			if len(args) > 0 {
				target = args[0]
			}

			pgLog := filepath.Join(cfg.Postgres.DataDir, "postgres.log")
			redisLog := filepath.Join(cfg.Redis.Dir, "redis.log")

			switch target {
			case "":
				util.Section("postgres logs")
				if err := showLog(pgLog); err != nil {
					return err
				}
				fmt.Println()
				util.Section("redis logs")
				return showLog(redisLog)
			case "pg":
				return showLog(pgLog)
			case "redis":
				return showLog(redisLog)
			default:
				return fmt.Errorf("unknown service: %s (valid: pg, redis)", target)
			}
		},
	}
}

func showLog(path string) error {
	lines, err := util.TailFile(path, logTailLines)
	if err != nil {
		return err
	}
	if lines == nil {
		fmt.Printf("(no log file at %s)\n", path)
		return nil
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
