package workflows

import (
	"context"
	"errors"
	"testing"

	"bioatlas/internal/activities"
	"bioatlas/internal/engine"
	"bioatlas/internal/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
)

func registerActivityName[T any](env *testsuite.TestWorkflowEnvironment, name string, fn T) {
	env.RegisterActivityWithOptions(fn, activity.RegisterOptions{Name: name})
}

func newReportEnv() *testsuite.TestWorkflowEnvironment {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(SummaryReportWorkflow)
	registerActivityName(env, "ReportOverviewActivity", func(context.Context, activities.StageInput) (engine.Overview, error) {
		return engine.Overview{}, nil
	})
	registerActivityName(env, "ReportAreasActivity", func(context.Context, activities.StageInput) ([]engine.ResearchArea, error) {
		return nil, nil
	})
	registerActivityName(env, "ReportGapsActivity", func(context.Context, activities.StageInput) ([]engine.Gap, error) {
		return nil, nil
	})
	registerActivityName(env, "ReportResearchersActivity", func(context.Context, activities.StageInput) ([]models.AuthorCount, error) {
		return nil, nil
	})
	registerActivityName(env, "ReportOrganismsActivity", func(context.Context, activities.StageInput) ([]models.OrganismCount, error) {
		return nil, nil
	})
	registerActivityName(env, "ReportInsightsActivity", func(context.Context, activities.StageInput) ([]engine.Insight, error) {
		return nil, nil
	})
	registerActivityName(env, "WriteReportActivity", func(context.Context, activities.WriteReportInput) (activities.ReportArtifact, error) {
		return activities.ReportArtifact{}, nil
	})
	return env
}

func TestSummaryReportWorkflowSuccess(t *testing.T) {
	env := newReportEnv()
	env.OnActivity("ReportOverviewActivity", mock.Anything, activities.StageInput{Limit: 5}).Return(engine.Overview{TotalPublications: 3}, nil)
	env.OnActivity("ReportAreasActivity", mock.Anything, mock.Anything).Return([]engine.ResearchArea{{Name: "microgravity", Category: "experiment_type", Count: 2}}, nil)
	env.OnActivity("ReportGapsActivity", mock.Anything, mock.Anything).Return([]engine.Gap{}, nil)
	env.OnActivity("ReportResearchersActivity", mock.Anything, mock.Anything).Return([]models.AuthorCount{{Name: "Alice Smith", ArticleCount: 2}}, nil)
	env.OnActivity("ReportOrganismsActivity", mock.Anything, mock.Anything).Return([]models.OrganismCount{}, nil)
	env.OnActivity("ReportInsightsActivity", mock.Anything, mock.Anything).Return([]engine.Insight{}, nil)

	var written activities.WriteReportInput
	env.OnActivity("WriteReportActivity", mock.Anything, mock.Anything).Return(
		func(_ context.Context, in activities.WriteReportInput) (activities.ReportArtifact, error) {
			written = in
			return activities.ReportArtifact{ReportID: in.ReportID, Path: "/out/reports/r1.json"}, nil
		})

	env.ExecuteWorkflow(SummaryReportWorkflow, SummaryReportInput{ReportID: "r1", Limit: 5})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out SummaryReportResult
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, "/out/reports/r1.json", out.Path)

	require.Equal(t, "r1", written.ReportID)
	require.Equal(t, 3, written.Report.Overview.TotalPublications)
	require.Len(t, written.Report.TopResearchAreas, 1)
	require.NotNil(t, written.Report.ModelOrganisms)
	require.False(t, written.Report.GeneratedAt.IsZero())

	val, err := env.QueryWorkflow(QueryGetReportProgress)
	require.NoError(t, err)
	var prog SummaryReportProgress
	require.NoError(t, val.Get(&prog))
	require.Equal(t, StageCompleted, prog.Stage)
	require.Equal(t, 7, prog.StagesDone)
	require.Equal(t, prog.StagesTotal, prog.StagesDone)
}

func TestSummaryReportWorkflowStageFailure(t *testing.T) {
	env := newReportEnv()
	env.OnActivity("ReportOverviewActivity", mock.Anything, mock.Anything).Return(engine.Overview{}, nil)
	env.OnActivity("ReportAreasActivity", mock.Anything, mock.Anything).Return([]engine.ResearchArea{}, nil)
	env.OnActivity("ReportGapsActivity", mock.Anything, mock.Anything).Return([]engine.Gap{}, errors.New("store unavailable"))

	env.ExecuteWorkflow(SummaryReportWorkflow, SummaryReportInput{ReportID: "r2"})
	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())

	val, err := env.QueryWorkflow(QueryGetReportProgress)
	require.NoError(t, err)
	var prog SummaryReportProgress
	require.NoError(t, val.Get(&prog))
	require.Equal(t, StageFailed, prog.Stage)
	require.Equal(t, 2, prog.StagesDone)
	require.NotEmpty(t, prog.Error)
}

func TestSummaryReportWorkflowRequiresID(t *testing.T) {
	env := newReportEnv()
	env.ExecuteWorkflow(SummaryReportWorkflow, SummaryReportInput{})
	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
}
