package workflows

import (
	"fmt"
	"strings"
	"time"

	"bioatlas/internal/activities"
	"bioatlas/internal/engine"
	"bioatlas/internal/models"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const QueryGetReportProgress = "GetReportProgress"

const (
	StageOverview    = "overview"
	StageAreas       = "research_areas"
	StageGaps        = "knowledge_gaps"
	StageResearchers = "leading_researchers"
	StageOrganisms   = "model_organisms"
	StageInsights    = "insights"
	StageWrite       = "write"
	StageCompleted   = "completed"
	StageFailed      = "failed"
)

// SummaryReportWorkflow assembles the corpus summary one section per
// activity and writes it as a JSON artifact.
func SummaryReportWorkflow(ctx workflow.Context, input SummaryReportInput) (SummaryReportResult, error) {
	progress := SummaryReportProgress{ReportID: input.ReportID, Stage: "pending", StagesTotal: 7}
	if err := workflow.SetQueryHandler(ctx, QueryGetReportProgress, func() (SummaryReportProgress, error) {
		return progress, nil
	}); err != nil {
		return SummaryReportResult{}, err
	}
	if strings.TrimSpace(input.ReportID) == "" {
		return SummaryReportResult{}, temporal.NewNonRetryableApplicationError("report id is required", "InvalidArgument", nil)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	report := engine.SummaryReport{GeneratedAt: workflow.Now(ctx).UTC()}
	stage := activities.StageInput{Limit: input.Limit}
	steps := []struct {
		name     string
		activity string
		out      any
	}{
		{StageOverview, "ReportOverviewActivity", &report.Overview},
		{StageAreas, "ReportAreasActivity", &report.TopResearchAreas},
		{StageGaps, "ReportGapsActivity", &report.KnowledgeGaps},
		{StageResearchers, "ReportResearchersActivity", &report.LeadingResearchers},
		{StageOrganisms, "ReportOrganismsActivity", &report.ModelOrganisms},
		{StageInsights, "ReportInsightsActivity", &report.Insights},
	}
	for _, s := range steps {
		progress.Stage = s.name
		if err := workflow.ExecuteActivity(ctx, s.activity, stage).Get(ctx, s.out); err != nil {
			return SummaryReportResult{}, fail(&progress, err)
		}
		progress.StagesDone++
	}
	ensureSlices(&report)

	progress.Stage = StageWrite
	var artifact activities.ReportArtifact
	if err := workflow.ExecuteActivity(ctx, "WriteReportActivity", activities.WriteReportInput{
		ReportID: input.ReportID,
		Report:   report,
	}).Get(ctx, &artifact); err != nil {
		return SummaryReportResult{}, fail(&progress, err)
	}
	progress.StagesDone++
	progress.Stage = StageCompleted
	progress.Path = artifact.Path
	return artifact, nil
}

func fail(p *SummaryReportProgress, err error) error {
	p.Error = err.Error()
	stage := p.Stage
	p.Stage = StageFailed
	return fmt.Errorf("report stage %s: %w", stage, err)
}

// ensureSlices keeps empty sections as [] in the written JSON.
func ensureSlices(r *engine.SummaryReport) {
	if r.TopResearchAreas == nil {
		r.TopResearchAreas = []engine.ResearchArea{}
	}
	if r.KnowledgeGaps == nil {
		r.KnowledgeGaps = []engine.Gap{}
	}
	if r.LeadingResearchers == nil {
		r.LeadingResearchers = []models.AuthorCount{}
	}
	if r.ModelOrganisms == nil {
		r.ModelOrganisms = []models.OrganismCount{}
	}
	if r.Insights == nil {
		r.Insights = []engine.Insight{}
	}
}
