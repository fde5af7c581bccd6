package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:       "graph <keywords|authors|concepts>",
	Short:     "Co-occurrence graphs and concept relationships",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"keywords", "authors", "concepts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		var out any
		switch args[0] {
		case "keywords":
			limit, _ := cmd.Flags().GetInt("limit")
			out, err = eng.KeywordNetwork(ctx, limit)
		case "authors":
			minCollab, _ := cmd.Flags().GetInt("min-collaborations")
			out, err = eng.AuthorNetwork(ctx, minCollab)
		case "concepts":
			out, err = eng.ConceptRelationships(ctx)
		}
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Well-covered research areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		out, err := eng.Clusters(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Under-studied research areas with severity",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		out, err := eng.Gaps(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Publications per year and recent growth",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		out, err := eng.Trends(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Prioritised research insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		out, err := eng.Insights(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Corpus coverage metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		out, err := eng.Overview(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Dashboard chart series: impact, methodology, trends and top lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		out, err := eng.AnalyticsBreakdown(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a natural-language question about the corpus",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		question := strings.Join(args, " ")
		answer, err := eng.QuickAnswer(cmd.Context(), question)
		if err != nil {
			return err
		}
		if err := printJSON(cmd, answer); err != nil {
			return err
		}
		if show, _ := cmd.Flags().GetBool("suggest"); show {
			for _, s := range eng.Suggestions(question) {
				fmt.Fprintln(cmd.ErrOrStderr(), "try:", s)
			}
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().Int("limit", 0, "maximum keyword edges")
	graphCmd.Flags().Int("min-collaborations", 0, "minimum shared articles per author pair")
	askCmd.Flags().Bool("suggest", false, "print follow-up questions to stderr")

	rootCmd.AddCommand(graphCmd, clustersCmd, gapsCmd, trendsCmd, insightsCmd, overviewCmd, breakdownCmd, askCmd)
}
