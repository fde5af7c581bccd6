package main

import (
	"context"
	"net/http"
	"os"

	"bioatlas/internal/api"
	"bioatlas/internal/app"
	"bioatlas/internal/config"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	logger := cfg.NewLogger(os.Stderr)

	rt, err := app.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("open corpus", "error", err)
		os.Exit(1)
	}
	defer rt.Close()

	deps := api.Deps{Logger: logger}
	if rt.DB != nil {
		deps.Health = rt.DB
	}
	tc, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		logger.Warn("temporal unavailable, report routes disabled", "address", cfg.TemporalAddress, "error", err)
	} else {
		defer tc.Close()
		deps.Temporal = tc
	}

	h := api.NewServer(cfg, rt.Engine, deps)
	logger.Info("bioatlas api listening", "addr", cfg.APIAddr, "snapshot", cfg.SnapshotPath != "")
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		logger.Error("api server stopped", "error", err)
		os.Exit(1)
	}
}
