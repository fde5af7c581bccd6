package main

import (
	"context"
	"os"

	"bioatlas/internal/activities"
	"bioatlas/internal/app"
	"bioatlas/internal/config"
	"bioatlas/internal/workflows"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	logger := cfg.NewLogger(os.Stderr)

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		logger.Error("dial temporal", "address", cfg.TemporalAddress, "error", err)
		os.Exit(1)
	}
	defer c.Close()

	rt, err := app.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("open corpus", "error", err)
		os.Exit(1)
	}
	defer rt.Close()

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})
	workflows.Register(w)
	activities.Register(w, activities.New(cfg, rt.Engine))

	logger.Info("bioatlas worker listening", "address", cfg.TemporalAddress, "queue", cfg.TemporalTaskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
