package tools

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bioatlas/internal/engine"
	"bioatlas/internal/memstore"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func newTools(t *testing.T) *Server {
	t.Helper()
	b := memstore.NewBuilder()
	a1 := b.Article("PMC100", "Bone loss in microgravity", memstore.Published(2020, 3, 1), memstore.NASA())
	b.Section(a1, "abstract", "Microgravity causes bone loss in mice.")
	b.Keyword(a1, "microgravity", "experiment_type", 0.8)
	b.Keyword(a1, "bone loss", "biological_system", 0.9)
	a2 := b.Article("PMC200", "Plants in orbit", memstore.Published(2021, 5, 1))
	b.Section(a2, "abstract", "Roots grow in microgravity.")
	b.Keyword(a2, "microgravity", "experiment_type", 0.4)
	s, err := b.Build()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng, err := engine.New(s, engine.WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return New(eng, logger)
}

func call[P any](t *testing.T, h mcp.ToolHandlerFor[P, any], args P) *mcp.CallToolResultFor[any] {
	t.Helper()
	res, err := h(context.Background(), nil, &mcp.CallToolParamsFor[P]{Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResultFor[any]) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestMCPRegistersTools(t *testing.T) {
	require.NotNil(t, newTools(t).MCP("test"))
}

func TestSearchTool(t *testing.T) {
	s := newTools(t)
	res := call(t, handle(s, "search_publications", s.search), SearchParams{Query: "microgravity"})
	require.False(t, res.IsError)
	require.Contains(t, text(t, res), "PMC100")

	res = call(t, handle(s, "search_publications", s.search), SearchParams{Query: "x", Limit: -1})
	require.True(t, res.IsError)
	require.Contains(t, text(t, res), "Invalid arguments")
}

func TestKeywordToolDefaultsMinRelevance(t *testing.T) {
	s := newTools(t)
	res := call(t, handle(s, "search_by_keywords", s.searchByKeywords), KeywordSearchParams{Keywords: []string{"microgravity"}})
	require.False(t, res.IsError)
	out := res.StructuredContent.(map[string]any)
	require.Equal(t, engine.DefaultMinRelevance, out["min_relevance"])
	require.Equal(t, 1, out["count"])

	zero := 0.0
	res = call(t, handle(s, "search_by_keywords", s.searchByKeywords), KeywordSearchParams{Keywords: []string{"microgravity"}, MinRelevance: &zero})
	require.Equal(t, 2, res.StructuredContent.(map[string]any)["count"])
}

func TestFilterToolParsesDates(t *testing.T) {
	s := newTools(t)
	res := call(t, handle(s, "filter_publications", s.filter), FilterParams{DateFrom: "2021-01-01"})
	require.False(t, res.IsError)
	page := res.StructuredContent.(engine.FilteredPage)
	require.Equal(t, 1, page.Total)

	res = call(t, handle(s, "filter_publications", s.filter), FilterParams{DateFrom: "January"})
	require.True(t, res.IsError)
	require.Contains(t, text(t, res), "date_from")
}

func TestArticleToolNotFound(t *testing.T) {
	s := newTools(t)
	res := call(t, handle(s, "article_details", s.article), ArticleParams{PMCID: "PMC100"})
	require.False(t, res.IsError)

	res = call(t, handle(s, "article_details", s.article), ArticleParams{PMCID: "PMC404"})
	require.True(t, res.IsError)
	require.Equal(t, "Requested resource was not found.", text(t, res))
}

func TestAnalyticsTools(t *testing.T) {
	s := newTools(t)
	require.False(t, call(t, handle(s, "related_articles", s.related), RelatedParams{PMCID: "PMC100"}).IsError)
	require.False(t, call(t, handle(s, "keyword_network", s.keywordNetwork), KeywordNetworkParams{}).IsError)
	require.False(t, call(t, handle(s, "author_network", s.authorNetwork), AuthorNetworkParams{}).IsError)
	require.False(t, call(t, handle(s, "research_clusters", s.clusters), NoParams{}).IsError)
	require.False(t, call(t, handle(s, "knowledge_gaps", s.gaps), NoParams{}).IsError)
	require.False(t, call(t, handle(s, "publication_trends", s.trends), NoParams{}).IsError)
	require.False(t, call(t, handle(s, "research_insights", s.insights), NoParams{}).IsError)

	res := call(t, handle(s, "quick_answer", s.quickAnswer), QuickAnswerParams{Question: "how many publications"})
	require.False(t, res.IsError)
	require.Contains(t, text(t, res), `"answer_type": "count"`)

	res = call(t, handle(s, "quick_answer", s.quickAnswer), QuickAnswerParams{})
	require.True(t, res.IsError)
}
