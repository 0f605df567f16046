package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daleydeng/sub2api-devdb/internal/service"
	"github.com/daleydeng/sub2api-devdb/internal/util"
)

// requiredTools must be on PATH for init/start/stop to work.
var requiredTools = []string{"initdb", "pg_ctl", "redis-server"}

// optionalTools are conveniences surfaced for completeness.
var optionalTools = []string{"psql", "redis-cli"}

// NewDoctorCmd creates the doctor command
func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the required engine tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []util.StatusTableRow
			missing := 0

			for _, tool := range requiredTools {
				path, err := service.LookTool(tool)
				if err != nil {
					rows = append(rows, util.StatusTableRow{Name: tool, Status: "missing", Detail: "required"})
					missing++
					continue
				}
				rows = append(rows, util.StatusTableRow{Name: tool, Status: "found", Detail: path, Ok: true})
			}

			for _, tool := range optionalTools {
				path, err := service.LookTool(tool)
				if err != nil {
					rows = append(rows, util.StatusTableRow{Name: tool, Status: "missing", Detail: "optional"})
					continue
				}
				rows = append(rows, util.StatusTableRow{Name: tool, Status: "found", Detail: path, Ok: true})
			}

			util.StatusTable(rows)

			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing from PATH", missing)
			}
			return nil
		},
	}
}
