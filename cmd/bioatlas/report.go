package main

import (
	"fmt"

	"bioatlas/internal/activities"
	"bioatlas/internal/util"
	"bioatlas/internal/workflows"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the corpus summary report as JSON",
	Long: `report starts a SummaryReportWorkflow on the configured Temporal task queue
and prints the workflow ids. With --local the report is assembled in-process
and written under BIOATLAS_DATA_OUT/reports without Temporal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := uuid.NewString()
		if local, _ := cmd.Flags().GetBool("local"); local {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			report, err := eng.SummaryReport(cmd.Context())
			if err != nil {
				return err
			}
			path := activities.ReportPath(cfg.DataOutRoot, id)
			if err := util.WriteJSONAtomic(path, report); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			return printJSON(cmd, activities.ReportArtifact{ReportID: id, Path: path})
		}

		c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
		if err != nil {
			return fmt.Errorf("dial temporal: %w", err)
		}
		defer c.Close()
		limit, _ := cmd.Flags().GetInt("limit")
		we, err := c.ExecuteWorkflow(cmd.Context(), client.StartWorkflowOptions{
			ID:                                       "report-" + id,
			TaskQueue:                                cfg.TemporalTaskQueue,
			WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
			WorkflowExecutionErrorWhenAlreadyStarted: true,
		}, workflows.SummaryReportWorkflow, workflows.SummaryReportInput{ReportID: id, Limit: limit})
		if err != nil {
			return fmt.Errorf("start report workflow: %w", err)
		}
		if wait, _ := cmd.Flags().GetBool("wait"); wait {
			var artifact workflows.SummaryReportResult
			if err := we.Get(cmd.Context(), &artifact); err != nil {
				return fmt.Errorf("report workflow: %w", err)
			}
			return printJSON(cmd, artifact)
		}
		return printJSON(cmd, map[string]string{"report_id": id, "workflow_id": we.GetID(), "run_id": we.GetRunID()})
	},
}

func init() {
	reportCmd.Flags().Bool("local", false, "build the report in-process instead of via Temporal")
	reportCmd.Flags().Bool("wait", false, "block until the workflow writes the report")
	reportCmd.Flags().Int("limit", 0, "rows per report section (0 uses 10)")

	rootCmd.AddCommand(reportCmd)
}
