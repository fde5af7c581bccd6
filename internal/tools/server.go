// Package tools exposes engine operations as MCP tools for agent clients.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bioatlas/internal/engine"
	"bioatlas/internal/models"
	"bioatlas/internal/util"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	engine *engine.Engine
	logger *slog.Logger
}

func New(eng *engine.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: eng, logger: logger}
}

// MCP builds the tool server with every tool registered.
func (s *Server) MCP(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "bioatlas", Version: version}, &mcp.ServerOptions{})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_publications",
		Description: "Ranked full-text search over article sections. Returns one hit per article with a snippet.",
	}, handle(s, "search_publications", s.search))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_by_keywords",
		Description: "Find articles tagged with the given keywords, ranked by average keyword relevance.",
	}, handle(s, "search_by_keywords", s.searchByKeywords))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_publications",
		Description: "Page through articles matching NASA, date range, DOI and organism filters.",
	}, handle(s, "filter_publications", s.filter))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "article_details",
		Description: "Full record of one article: authors, sections, keywords, organisms, topics and funders.",
	}, handle(s, "article_details", s.article))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "related_articles",
		Description: "Articles sharing keywords with a seed article.",
	}, handle(s, "related_articles", s.related))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_network",
		Description: "Keyword co-occurrence graph as nodes and weighted edges.",
	}, handle(s, "keyword_network", s.keywordNetwork))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "author_network",
		Description: "Co-authorship graph keeping pairs with enough shared articles.",
	}, handle(s, "author_network", s.authorNetwork))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "research_clusters",
		Description: "Well-covered research areas with related topics.",
	}, handle(s, "research_clusters", s.clusters))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "knowledge_gaps",
		Description: "Under-studied research areas with severity and coverage progress.",
	}, handle(s, "knowledge_gaps", s.gaps))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "publication_trends",
		Description: "Publications per year with growth between the last two years.",
	}, handle(s, "publication_trends", s.trends))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "research_insights",
		Description: "Prioritised insights synthesised from corpus statistics.",
	}, handle(s, "research_insights", s.insights))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "quick_answer",
		Description: "Answer a natural-language question by routing it to counts, recent articles, authors, organisms, comparisons or search.",
	}, handle(s, "quick_answer", s.quickAnswer))

	return server
}

// Run serves the tools over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context, version string) error {
	s.logger.Info("mcp server starting", "transport", "stdio")
	return s.MCP(version).Run(ctx, mcp.NewStdioTransport())
}

func handle[P, R any](s *Server, name string, fn func(context.Context, P) (R, error)) mcp.ToolHandlerFor[P, any] {
	return func(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[P]) (*mcp.CallToolResultFor[any], error) {
		var args P
		if params != nil {
			args = params.Arguments
		}
		out, err := fn(ctx, args)
		if err != nil {
			return s.errorResult(name, err), nil
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return s.errorResult(name, fmt.Errorf("encode result: %w", err)), nil
		}
		return &mcp.CallToolResultFor[any]{
			Content:           []mcp.Content{&mcp.TextContent{Text: string(b)}},
			StructuredContent: out,
		}, nil
	}
}

// errorResult reports the failure inside the tool result so the client can
// correct its arguments. Store errors are never echoed.
func (s *Server) errorResult(name string, err error) *mcp.CallToolResultFor[any] {
	var msg string
	switch {
	case errors.Is(err, util.ErrInvalidArgument):
		msg = "Invalid arguments: " + strings.TrimPrefix(err.Error(), util.ErrInvalidArgument.Error()+": ")
	case errors.Is(err, util.ErrNotFound):
		msg = "Requested resource was not found."
	case errors.Is(err, util.ErrStoreUnavailable):
		s.logger.Error("tool failed", "tool", name, "error", err)
		msg = "Publication store is unavailable. Retry shortly."
	default:
		s.logger.Error("tool failed", "tool", name, "error", err)
		msg = "Tool failed. Check server logs."
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func (s *Server) search(ctx context.Context, p SearchParams) (any, error) {
	results, err := s.engine.Search(ctx, p.Query, p.Sections, p.Limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"query": p.Query, "count": len(results), "results": results}, nil
}

func (s *Server) searchByKeywords(ctx context.Context, p KeywordSearchParams) (any, error) {
	minRel := engine.DefaultMinRelevance
	if p.MinRelevance != nil {
		minRel = *p.MinRelevance
	}
	results, err := s.engine.SearchByKeywords(ctx, p.Keywords, minRel, p.Limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"keywords": p.Keywords, "min_relevance": minRel, "count": len(results), "results": results}, nil
}

func (s *Server) filter(ctx context.Context, p FilterParams) (engine.FilteredPage, error) {
	pred := models.FilterPredicates{NASARelated: p.NASARelated, HasDOI: p.HasDOI, Organisms: p.Organisms}
	var err error
	if pred.DateFrom, err = optionalDate("date_from", p.DateFrom); err != nil {
		return engine.FilteredPage{}, err
	}
	if pred.DateTo, err = optionalDate("date_to", p.DateTo); err != nil {
		return engine.FilteredPage{}, err
	}
	return s.engine.Filter(ctx, pred, p.Limit, p.Offset)
}

func optionalDate(field, raw string) (*models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", util.ErrInvalidArgument, field)
	}
	return &d, nil
}

func (s *Server) article(ctx context.Context, p ArticleParams) (*models.ArticleDetail, error) {
	if strings.TrimSpace(p.PMCID) == "" {
		return nil, fmt.Errorf("%w: pmcid is required", util.ErrInvalidArgument)
	}
	d, err := s.engine.Article(ctx, p.PMCID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("article %s: %w", p.PMCID, util.ErrNotFound)
	}
	return d, nil
}

func (s *Server) related(ctx context.Context, p RelatedParams) (any, error) {
	results, err := s.engine.Related(ctx, p.PMCID, p.Limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"pmcid": p.PMCID, "count": len(results), "results": results}, nil
}

func (s *Server) keywordNetwork(ctx context.Context, p KeywordNetworkParams) (any, error) {
	return s.engine.KeywordNetwork(ctx, p.Limit)
}

func (s *Server) authorNetwork(ctx context.Context, p AuthorNetworkParams) (any, error) {
	return s.engine.AuthorNetwork(ctx, p.MinCollaborations)
}

func (s *Server) clusters(ctx context.Context, _ NoParams) (any, error) {
	rows, err := s.engine.Clusters(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"clusters": rows}, nil
}

func (s *Server) gaps(ctx context.Context, _ NoParams) (any, error) {
	rows, err := s.engine.Gaps(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"gaps": rows}, nil
}

func (s *Server) trends(ctx context.Context, _ NoParams) (any, error) {
	return s.engine.Trends(ctx)
}

func (s *Server) insights(ctx context.Context, _ NoParams) (any, error) {
	rows, err := s.engine.Insights(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"insights": rows}, nil
}

func (s *Server) quickAnswer(ctx context.Context, p QuickAnswerParams) (any, error) {
	answer, err := s.engine.QuickAnswer(ctx, p.Question)
	if err != nil {
		return nil, err
	}
	return map[string]any{"answer": answer, "suggestions": s.engine.Suggestions(p.Question)}, nil
}
