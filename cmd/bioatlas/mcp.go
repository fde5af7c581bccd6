package main

import (
	"os"

	"bioatlas/internal/tools"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the engine as MCP tools over stdio",
	Long: `mcp runs a Model Context Protocol server on stdin/stdout. stdout carries
JSON-RPC only; logs are written to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		return tools.New(eng, cfg.NewLogger(os.Stderr)).Run(cmd.Context(), version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
