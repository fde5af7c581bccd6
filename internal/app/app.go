// Package app wires configuration, a corpus store and the engine for the
// command binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bioatlas/internal/config"
	"bioatlas/internal/engine"
	"bioatlas/internal/memstore"
	"bioatlas/internal/storage"
)

type Runtime struct {
	Engine *engine.Engine
	// DB is nil when the corpus comes from a snapshot file.
	DB *storage.DB
}

// Open builds the engine over a JSON snapshot when cfg.SnapshotPath is set and
// over Postgres otherwise.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	var (
		store engine.Store
		rt    = &Runtime{}
	)
	if cfg.SnapshotPath != "" {
		ms, err := memstore.Load(cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		logger.Info("corpus snapshot loaded", "path", cfg.SnapshotPath)
		store = ms
	} else {
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		db, err := storage.NewDB(dialCtx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		rt.DB = db
		store = storage.NewStore(db)
	}

	eng, err := engine.New(store, EngineOptions(cfg, logger)...)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}
	rt.Engine = eng
	return rt, nil
}

// EngineOptions maps configuration onto engine options. Non-positive
// settings keep the engine defaults.
func EngineOptions(cfg config.Config, logger *slog.Logger) []engine.Option {
	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.SearchDefaultLimit > 0 && cfg.SearchMaxLimit >= cfg.SearchDefaultLimit {
		opts = append(opts, engine.WithLimits(cfg.SearchDefaultLimit, cfg.SearchMaxLimit))
	}
	if cfg.InsightWorkers > 0 {
		opts = append(opts, engine.WithWorkers(cfg.InsightWorkers))
	}
	th := engine.DefaultThresholds()
	if cfg.KeywordNetworkMin > 0 {
		th.KeywordNetworkMinCount = cfg.KeywordNetworkMin
	}
	if cfg.AuthorNetworkMin > 0 {
		th.AuthorNetworkMinCount = cfg.AuthorNetworkMin
	}
	if cfg.GapBaseline > 0 {
		th.GapBaseline = cfg.GapBaseline
	}
	return append(opts, engine.WithThresholds(th))
}

func (r *Runtime) Close() {
	if r == nil {
		return
	}
	if r.Engine != nil {
		r.Engine.Close()
	}
	if r.DB != nil {
		r.DB.Close()
	}
}
