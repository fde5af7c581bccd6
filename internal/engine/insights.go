package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"bioatlas/internal/models"
)

// Rule is one independently evaluated insight heuristic. Eval returns nil
// when the rule's condition does not hold.
type Rule struct {
	Name     string
	Priority int
	Eval     func(ctx context.Context, e *Engine) (*Insight, error)
}

func DefaultRules() []Rule {
	return []Rule{
		{Name: "mission_priority_gaps", Priority: 1, Eval: missionPriorityGaps},
		{Name: "emerging_focus", Priority: 2, Eval: emergingFocus},
		{Name: "collaboration_density", Priority: 3, Eval: collaborationDensity},
		{Name: "data_completeness", Priority: 4, Eval: dataCompleteness},
		{Name: "organism_diversity", Priority: 5, Eval: organismDiversity},
	}
}

// Insights evaluates every registered rule on the worker pool and returns the
// triggered findings in priority order, at most InsightMax of them. Rules that
// fail are logged and skipped.
func (e *Engine) Insights(ctx context.Context) ([]Insight, error) {
	found := make([]*Insight, len(e.rules))
	var wg sync.WaitGroup
	for i, r := range e.rules {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			found[i] = e.evalRule(ctx, r)
		}
		if err := e.pool.Submit(task); err != nil {
			e.logger.Warn("insight pool rejected rule, running inline", "rule", r.Name, "err", err)
			task()
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Insight, 0, len(found))
	for _, f := range found {
		if f != nil {
			out = append(out, *f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	if e.th.InsightMax > 0 && len(out) > e.th.InsightMax {
		out = out[:e.th.InsightMax]
	}
	return out, nil
}

func (e *Engine) evalRule(ctx context.Context, r Rule) (ins *Insight) {
	defer func() {
		if p := recover(); p != nil {
			e.logger.Error("insight rule panicked", "rule", r.Name, "panic", p)
			ins = nil
		}
	}()
	got, err := r.Eval(ctx, e)
	if err != nil {
		e.logger.Warn("insight rule failed", "rule", r.Name, "err", err)
		return nil
	}
	if got == nil {
		return nil
	}
	got.Rule = r.Name
	got.Priority = r.Priority
	return got
}

func missionPriorityGaps(ctx context.Context, e *Engine) (*Insight, error) {
	rows, err := e.store.KeywordStats(ctx, models.KeywordStatsQuery{
		Categories:  e.th.InsightGapCategories,
		Flag:        models.FlagNASA,
		MaxArticles: e.th.InsightGapMaxArticles,
		Order:       models.Ascending,
		Limit:       e.th.InsightGapListed,
	})
	if err != nil {
		return nil, fmt.Errorf("flagged keyword stats: %w", err)
	}
	rows = boundCounts(rows, 1, e.th.InsightGapMaxArticles)
	sortCounts(rows, models.Ascending)
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) > e.th.InsightGapListed {
		rows = rows[:e.th.InsightGapListed]
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Keyword)
	}
	return &Insight{
		Title:   "Mission Planning Priority",
		Content: fmt.Sprintf("Critical gaps identified in %s. Recommend accelerating research in these areas before Mars missions.", strings.Join(names, ", ")),
	}, nil
}

func emergingFocus(ctx context.Context, e *Engine) (*Insight, error) {
	since := e.now().Add(-e.th.RecentWindow)
	rows, err := e.store.KeywordStats(ctx, models.KeywordStatsQuery{
		Categories:  e.th.EmergingCategories,
		Since:       &since,
		MinArticles: 1,
		Order:       models.Descending,
		Limit:       3,
	})
	if err != nil {
		return nil, fmt.Errorf("recent keyword stats: %w", err)
	}
	sortCounts(rows, models.Descending)
	if len(rows) == 0 || rows[0].ArticleCount == 0 {
		return nil, nil
	}
	top := rows[0]
	return &Insight{
		Title:   "Emerging Research Focus",
		Content: fmt.Sprintf("Strong momentum in %s research with %d recent publications. Consider allocating additional resources to this area.", top.Keyword, top.ArticleCount),
	}, nil
}

func collaborationDensity(ctx context.Context, e *Engine) (*Insight, error) {
	st, err := e.store.CollaborationStats(ctx, models.FlagISS)
	if err != nil {
		return nil, fmt.Errorf("collaboration stats: %w", err)
	}
	if st.UniqueAuthors == 0 {
		return nil, nil
	}
	ratio := float64(st.Articles) / float64(st.UniqueAuthors)
	if ratio <= e.th.CollaborationRatio {
		return nil, nil
	}
	return &Insight{
		Title:   "Research Collaboration",
		Content: fmt.Sprintf("ISS experiments show strong author collaboration (%d researchers). Increase flight opportunities for high-impact biological research.", st.UniqueAuthors),
	}, nil
}

func dataCompleteness(ctx context.Context, e *Engine) (*Insight, error) {
	st, err := e.store.CorpusStats(ctx, e.now().Add(-e.th.RecentWindow))
	if err != nil {
		return nil, fmt.Errorf("corpus stats: %w", err)
	}
	if st.TotalArticles == 0 {
		return nil, nil
	}
	ratio := float64(st.WithDOI+st.WithDate) / float64(2*st.TotalArticles)
	pct := ratio * 100
	if ratio < e.th.CompletenessTarget {
		return &Insight{
			Title:   "Data Quality Enhancement",
			Content: fmt.Sprintf("Metadata completeness at %.0f%%. Improving DOI and date coverage will enhance citation tracking and trend analysis.", pct),
		}, nil
	}
	return &Insight{
		Title:   "Data Integration Excellence",
		Content: fmt.Sprintf("High metadata quality (%.0f%% complete) enables robust analytics. Cross-disciplinary studies show highest citation impact.", pct),
	}, nil
}

func organismDiversity(ctx context.Context, e *Engine) (*Insight, error) {
	st, err := e.store.CorpusStats(ctx, e.now().Add(-e.th.RecentWindow))
	if err != nil {
		return nil, fmt.Errorf("corpus stats: %w", err)
	}
	if st.DistinctOrganisms <= e.th.OrganismDiversityMin {
		return nil, nil
	}
	return &Insight{
		Title:   "Model Organism Diversity",
		Content: fmt.Sprintf("Research spans %d different organisms, providing robust cross-species validation. Continue diversified approach for comprehensive space biology understanding.", st.DistinctOrganisms),
	}, nil
}
