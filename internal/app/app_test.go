package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"bioatlas/internal/config"
	"bioatlas/internal/memstore"

	"github.com/stretchr/testify/require"
)

func TestOpenFromSnapshot(t *testing.T) {
	b := memstore.NewBuilder()
	b.Article("PMC1", "Spaceflight and muscle", memstore.Published(2022, 1, 10))
	raw, err := json.Marshal(b.Snapshot())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rt, err := Open(context.Background(), config.Config{SnapshotPath: path, SearchDefaultLimit: 5, SearchMaxLimit: 10, InsightWorkers: 2}, logger)
	require.NoError(t, err)
	defer rt.Close()
	require.Nil(t, rt.DB)

	ov, err := rt.Engine.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ov.TotalPublications)
}

func TestOpenMissingSnapshot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Open(context.Background(), config.Config{SnapshotPath: filepath.Join(t.TempDir(), "none.json")}, logger)
	require.Error(t, err)
}

func TestEngineOptionsSkipsInvalidLimits(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.Len(t, EngineOptions(config.Config{}, logger), 2)
	require.Len(t, EngineOptions(config.Config{SearchDefaultLimit: 50, SearchMaxLimit: 10}, logger), 2)
	require.Len(t, EngineOptions(config.Config{SearchDefaultLimit: 10, SearchMaxLimit: 50, InsightWorkers: 3}, logger), 4)
}
