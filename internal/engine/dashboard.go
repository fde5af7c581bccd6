package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bioatlas/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// methodologySections are the section types counted as methodology evidence.
var methodologySections = []string{"materials_and_methods", "results", "discussion"}

// Overview returns corpus-level counts and coverage percentages.
func (e *Engine) Overview(ctx context.Context) (Overview, error) {
	st, err := e.store.CorpusStats(ctx, e.now().Add(-e.th.RecentWindow))
	if err != nil {
		return Overview{}, fmt.Errorf("corpus stats: %w", err)
	}
	return Overview{
		TotalPublications:   st.TotalArticles,
		PublicationsWithDOI: st.WithDOI,
		DOICoveragePercent:  percent(st.WithDOI, st.TotalArticles),
		TotalAuthors:        st.TotalAuthors,
		TotalKeywords:       st.TotalKeywords,
		NASARelatedCount:    st.NASARelated,
		NASARelatedPercent:  percent(st.NASARelated, st.TotalArticles),
		RecentPublications:  st.Recent,
		YearsOfPublication:  st.PublicationYears,
	}, nil
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round1(float64(part) * 100 / float64(total))
}

func (e *Engine) ResearchAreas(ctx context.Context, limit int) ([]ResearchArea, error) {
	n, err := sized(limit, 10, e.maxLimit)
	if err != nil {
		return nil, err
	}
	rows, err := e.store.KeywordStats(ctx, models.KeywordStatsQuery{Order: models.Descending, Limit: n})
	if err != nil {
		return nil, fmt.Errorf("keyword stats: %w", err)
	}
	sortCounts(rows, models.Descending)
	if len(rows) > n {
		rows = rows[:n]
	}
	out := make([]ResearchArea, 0, len(rows))
	for _, r := range rows {
		cat := r.Category
		if cat == "" {
			cat = "unknown"
		}
		out = append(out, ResearchArea{Name: r.Keyword, Category: cat, Count: r.ArticleCount})
	}
	return out, nil
}

func (e *Engine) TopAuthors(ctx context.Context, limit int) ([]models.AuthorCount, error) {
	n, err := sized(limit, 20, e.maxLimit)
	if err != nil {
		return nil, err
	}
	out, err := e.store.TopAuthors(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("top authors: %w", err)
	}
	return out, nil
}

func (e *Engine) Organisms(ctx context.Context, limit int) ([]models.OrganismCount, error) {
	n, err := sized(limit, 15, e.maxLimit)
	if err != nil {
		return nil, err
	}
	out, err := e.store.TopOrganisms(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("top organisms: %w", err)
	}
	return out, nil
}

func (e *Engine) TopCited(ctx context.Context, limit int) ([]models.Article, error) {
	n, err := sized(limit, 10, e.maxLimit)
	if err != nil {
		return nil, err
	}
	out, err := e.store.TopCited(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("top cited: %w", err)
	}
	return out, nil
}

func (e *Engine) TopFunders(ctx context.Context, limit int) ([]models.FunderCount, error) {
	n, err := sized(limit, 10, e.maxLimit)
	if err != nil {
		return nil, err
	}
	out, err := e.store.TopFunders(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("top funders: %w", err)
	}
	return out, nil
}

func (e *Engine) Topics(ctx context.Context, limit int) ([]models.TopicCount, error) {
	n, err := sized(limit, 15, e.maxLimit)
	if err != nil {
		return nil, err
	}
	out, err := e.store.TopicDistribution(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("topic distribution: %w", err)
	}
	return out, nil
}

// KeywordDistribution counts keywords per category, largest first.
func (e *Engine) KeywordDistribution(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := e.store.KeywordCategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("keyword category counts: %w", err)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, nil
}

// AnalyticsBreakdown returns the dashboard chart series. Impact lists every
// level from Critical to Low, zero counts included.
func (e *Engine) AnalyticsBreakdown(ctx context.Context) (AnalyticsBreakdown, error) {
	var (
		b   AnalyticsBreakdown
		err error
	)
	if b.Timeline, err = e.Trends(ctx); err != nil {
		return AnalyticsBreakdown{}, err
	}
	impact, err := e.store.ImpactCounts(ctx)
	if err != nil {
		return AnalyticsBreakdown{}, fmt.Errorf("impact counts: %w", err)
	}
	b.Impact = impactSeries(impact)
	if b.ResearchAreas, err = e.ResearchAreas(ctx, 5); err != nil {
		return AnalyticsBreakdown{}, err
	}
	coverage, err := e.store.SectionCoverage(ctx, methodologySections)
	if err != nil {
		return AnalyticsBreakdown{}, fmt.Errorf("section coverage: %w", err)
	}
	b.Methodology = methodologySeries(coverage)
	if b.TopCited, err = e.TopCited(ctx, 10); err != nil {
		return AnalyticsBreakdown{}, err
	}
	if b.TopFunders, err = e.TopFunders(ctx, 10); err != nil {
		return AnalyticsBreakdown{}, err
	}
	if b.Topics, err = e.Topics(ctx, 10); err != nil {
		return AnalyticsBreakdown{}, err
	}
	return b, nil
}

func impactSeries(rows []models.LabelCount) []models.LabelCount {
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Label] += r.Count
	}
	out := make([]models.LabelCount, 0, len(models.ImpactLevels))
	for _, level := range models.ImpactLevels {
		out = append(out, models.LabelCount{Label: level, Count: counts[level]})
	}
	return out
}

// methodologySeries orders by article count descending, then section type.
func methodologySeries(rows []models.LabelCount) []MethodologyCount {
	title := cases.Title(language.English)
	out := make([]MethodologyCount, 0, len(rows))
	for _, r := range rows {
		if r.Count <= 0 {
			continue
		}
		out = append(out, MethodologyCount{
			SectionType:  r.Label,
			Label:        title.String(strings.ReplaceAll(r.Label, "_", " ")),
			ArticleCount: r.Count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ArticleCount != out[j].ArticleCount {
			return out[i].ArticleCount > out[j].ArticleCount
		}
		return out[i].SectionType < out[j].SectionType
	})
	return out
}

// Article returns the full record for an external id, or nil when unknown.
func (e *Engine) Article(ctx context.Context, pmcid string) (*models.ArticleDetail, error) {
	pmcid = strings.TrimSpace(pmcid)
	if pmcid == "" {
		return nil, invalidf("article id is required")
	}
	a, err := e.store.FindArticle(ctx, pmcid)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if a == nil {
		return nil, nil
	}
	d, err := e.store.ArticleDetail(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("article detail: %w", err)
	}
	return d, nil
}

// SummaryReport assembles the exportable corpus summary.
func (e *Engine) SummaryReport(ctx context.Context) (SummaryReport, error) {
	var (
		r   = SummaryReport{GeneratedAt: e.now().UTC()}
		err error
	)
	if r.Overview, err = e.Overview(ctx); err != nil {
		return SummaryReport{}, err
	}
	if r.TopResearchAreas, err = e.ResearchAreas(ctx, 10); err != nil {
		return SummaryReport{}, err
	}
	if r.KnowledgeGaps, err = e.Gaps(ctx); err != nil {
		return SummaryReport{}, err
	}
	if r.LeadingResearchers, err = e.TopAuthors(ctx, 10); err != nil {
		return SummaryReport{}, err
	}
	if r.ModelOrganisms, err = e.Organisms(ctx, 10); err != nil {
		return SummaryReport{}, err
	}
	if r.Insights, err = e.Insights(ctx); err != nil {
		return SummaryReport{}, err
	}
	return r, nil
}
