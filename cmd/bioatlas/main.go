// Package main is the bioatlas command line: corpus queries, analytics,
// report export and the MCP tool server.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"bioatlas/internal/app"
	"bioatlas/internal/config"
	"bioatlas/internal/engine"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg config.Config
	rt  *app.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "bioatlas",
	Short: "Search and knowledge-graph analytics over space biology publications",
	Long: `bioatlas queries a publication corpus stored in Postgres or loaded from a
JSON snapshot. Subcommands print JSON to stdout; logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env")
		_ = godotenv.Load(envFile)
		cfg = config.Load()
		if snap, _ := cmd.Flags().GetString("snapshot"); snap != "" {
			cfg.SnapshotPath = snap
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		rt.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().String("snapshot", "", "JSON corpus snapshot to load instead of Postgres")
	rootCmd.PersistentFlags().String("env", ".env", "dotenv file with BIOATLAS_* settings")
}

// openEngine connects the configured store on first use.
func openEngine(ctx context.Context) (*engine.Engine, error) {
	if rt != nil {
		return rt.Engine, nil
	}
	opened, err := app.Open(ctx, cfg, cfg.NewLogger(os.Stderr))
	if err != nil {
		return nil, err
	}
	rt = opened
	return rt.Engine, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
