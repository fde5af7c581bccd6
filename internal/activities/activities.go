package activities

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"bioatlas/internal/config"
	"bioatlas/internal/engine"
	"bioatlas/internal/models"
	"bioatlas/internal/util"

	"go.temporal.io/sdk/temporal"
)

const defaultStageLimit = 10

// Activities runs the stages of a summary report against the engine. Each
// stage is a separate activity so Temporal retries only the failed part.
type Activities struct {
	cfg    config.Config
	engine *engine.Engine
}

func New(cfg config.Config, eng *engine.Engine) *Activities {
	return &Activities{cfg: cfg, engine: eng}
}

// ReportPath is where the artifact for reportID lives under root.
func ReportPath(root, reportID string) string {
	return util.SafeJoin(filepath.Join(root, "reports"), reportID+".json")
}

func (a *Activities) ReportOverviewActivity(ctx context.Context, in StageInput) (engine.Overview, error) {
	return a.engine.Overview(ctx)
}

func (a *Activities) ReportAreasActivity(ctx context.Context, in StageInput) ([]engine.ResearchArea, error) {
	return a.engine.ResearchAreas(ctx, stageLimit(in))
}

func (a *Activities) ReportGapsActivity(ctx context.Context, in StageInput) ([]engine.Gap, error) {
	return a.engine.Gaps(ctx)
}

func (a *Activities) ReportResearchersActivity(ctx context.Context, in StageInput) ([]models.AuthorCount, error) {
	return a.engine.TopAuthors(ctx, stageLimit(in))
}

func (a *Activities) ReportOrganismsActivity(ctx context.Context, in StageInput) ([]models.OrganismCount, error) {
	return a.engine.Organisms(ctx, stageLimit(in))
}

func (a *Activities) ReportInsightsActivity(ctx context.Context, in StageInput) ([]engine.Insight, error) {
	return a.engine.Insights(ctx)
}

// WriteReportActivity stores the report as DataOutRoot/reports/<id>.json. A
// missing id fails without retries.
func (a *Activities) WriteReportActivity(_ context.Context, in WriteReportInput) (ReportArtifact, error) {
	id := strings.TrimSpace(in.ReportID)
	if id == "" {
		return ReportArtifact{}, temporal.NewNonRetryableApplicationError("report id is required", "InvalidArgument", util.ErrInvalidArgument)
	}
	path := ReportPath(a.cfg.DataOutRoot, id)
	if err := util.WriteJSONAtomic(path, in.Report); err != nil {
		return ReportArtifact{}, fmt.Errorf("write report: %w", err)
	}
	return ReportArtifact{ReportID: id, Path: path}, nil
}

func stageLimit(in StageInput) int {
	if in.Limit <= 0 {
		return defaultStageLimit
	}
	return in.Limit
}
