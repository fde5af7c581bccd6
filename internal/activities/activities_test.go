package activities

import (
	"context"
	"path/filepath"
	"testing"

	"bioatlas/internal/config"
	"bioatlas/internal/engine"
	"bioatlas/internal/memstore"
	"bioatlas/internal/util"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
)

func newActivities(t *testing.T) *Activities {
	t.Helper()
	b := memstore.NewBuilder()
	a := b.Article("PMC1", "Muscle atrophy in spaceflight", memstore.Published(2022, 2, 1), memstore.NASA())
	b.Keyword(a, "muscle atrophy", "biological_system", 0.9)
	b.Author(a, "Dana Lee")
	b.Organism(a, "Mus musculus", "mouse")
	s, err := b.Build()
	require.NoError(t, err)
	eng, err := engine.New(s)
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return New(config.Config{DataOutRoot: t.TempDir()}, eng)
}

func TestStageActivities(t *testing.T) {
	a := newActivities(t)
	ctx := context.Background()

	ov, err := a.ReportOverviewActivity(ctx, StageInput{})
	require.NoError(t, err)
	require.Equal(t, 1, ov.TotalPublications)

	areas, err := a.ReportAreasActivity(ctx, StageInput{Limit: 5})
	require.NoError(t, err)
	require.Len(t, areas, 1)

	authors, err := a.ReportResearchersActivity(ctx, StageInput{})
	require.NoError(t, err)
	require.Equal(t, "Dana Lee", authors[0].Name)

	orgs, err := a.ReportOrganismsActivity(ctx, StageInput{})
	require.NoError(t, err)
	require.Len(t, orgs, 1)
}

func TestWriteReportActivity(t *testing.T) {
	a := newActivities(t)
	out, err := a.WriteReportActivity(context.Background(), WriteReportInput{ReportID: "r1"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(a.cfg.DataOutRoot, "reports", "r1.json"), out.Path)

	var got engine.SummaryReport
	require.NoError(t, util.ReadJSON(out.Path, &got))

	_, err = a.WriteReportActivity(context.Background(), WriteReportInput{ReportID: "  "})
	require.ErrorIs(t, err, util.ErrInvalidArgument)
	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	require.True(t, appErr.NonRetryable())
}

func TestReportPathStaysUnderRoot(t *testing.T) {
	require.Equal(t, filepath.Join("/data", "reports", "passwd.json"), ReportPath("/data", "../../etc/passwd"))
}
