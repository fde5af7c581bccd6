package main

import (
	"fmt"

	"bioatlas/internal/engine"
	"bioatlas/internal/models"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Ranked full-text search over article sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		sections, _ := cmd.Flags().GetStringSlice("sections")
		limit, _ := cmd.Flags().GetInt("limit")
		results, err := eng.Search(cmd.Context(), args[0], sections, limit)
		if err != nil {
			return err
		}
		return printJSON(cmd, results)
	},
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords <keyword>...",
	Short: "Articles tagged with the given keywords, by average relevance",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		minRel, _ := cmd.Flags().GetFloat64("min-relevance")
		limit, _ := cmd.Flags().GetInt("limit")
		results, err := eng.SearchByKeywords(cmd.Context(), args, minRel, limit)
		if err != nil {
			return err
		}
		return printJSON(cmd, results)
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Page through articles matching metadata filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		var p models.FilterPredicates
		if cmd.Flags().Changed("nasa") {
			v, _ := cmd.Flags().GetBool("nasa")
			p.NASARelated = &v
		}
		if cmd.Flags().Changed("doi") {
			v, _ := cmd.Flags().GetBool("doi")
			p.HasDOI = &v
		}
		for flag, dst := range map[string]**models.Date{"from": &p.DateFrom, "to": &p.DateTo} {
			raw, _ := cmd.Flags().GetString(flag)
			if raw == "" {
				continue
			}
			d, err := models.ParseDate(raw)
			if err != nil {
				return fmt.Errorf("--%s: %w", flag, err)
			}
			*dst = &d
		}
		p.Organisms, _ = cmd.Flags().GetStringSlice("organism")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		page, err := eng.Filter(cmd.Context(), p, limit, offset)
		if err != nil {
			return err
		}
		return printJSON(cmd, page)
	},
}

var relatedCmd = &cobra.Command{
	Use:   "related <pmcid>",
	Short: "Articles sharing keywords with a seed article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		results, err := eng.Related(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		return printJSON(cmd, results)
	},
}

var articleCmd = &cobra.Command{
	Use:   "article <pmcid>",
	Short: "Full record of one article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		d, err := eng.Article(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("article %s not found", args[0])
		}
		return printJSON(cmd, d)
	},
}

func init() {
	searchCmd.Flags().StringSlice("sections", nil, "restrict to section types (comma-separated)")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 uses the configured default)")

	keywordsCmd.Flags().Float64("min-relevance", engine.DefaultMinRelevance, "minimum keyword relevance")
	keywordsCmd.Flags().Int("limit", 0, "maximum results")

	filterCmd.Flags().Bool("nasa", false, "NASA-related only (--nasa=false for the rest)")
	filterCmd.Flags().Bool("doi", false, "require a DOI (--doi=false to exclude)")
	filterCmd.Flags().String("from", "", "earliest publication date (YYYY-MM-DD)")
	filterCmd.Flags().String("to", "", "latest publication date (YYYY-MM-DD)")
	filterCmd.Flags().StringSlice("organism", nil, "organism names")
	filterCmd.Flags().Int("limit", 0, "page size")
	filterCmd.Flags().Int("offset", 0, "rows to skip")

	relatedCmd.Flags().Int("limit", 0, "maximum related articles")

	rootCmd.AddCommand(searchCmd, keywordsCmd, filterCmd, relatedCmd, articleCmd)
}
