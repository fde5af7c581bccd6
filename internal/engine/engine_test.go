package engine_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"bioatlas/internal/engine"
	"bioatlas/internal/memstore"
	"bioatlas/internal/models"
	"bioatlas/internal/util"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func corpus(t *testing.T) *memstore.Store {
	t.Helper()
	b := memstore.NewBuilder()

	a1 := b.Article("PMC100", "Bone loss in microgravity", memstore.Published(2020, 3, 1), memstore.WithDOI("10.1/a1"), memstore.NASA(), memstore.Cited(12))
	b.Section(a1, "abstract", "Microgravity causes bone loss in mice during spaceflight. Microgravity exposure accelerates decline.")
	b.Section(a1, "results", "Bone density decreased.")
	b.Keyword(a1, "bone loss", "biological_system", 0.9)
	b.Keyword(a1, "microgravity", "experiment_type", 0.8)
	b.Author(a1, "Alice Smith")
	b.Author(a1, "Bob Jones")
	b.Organism(a1, "Mus musculus", "mouse")
	b.Topic(a1, "Musculoskeletal")
	b.Funder(a1, "National Aeronautics and Space Administration", "NASA")

	a2 := b.Article("PMC200", "Plant growth on the ISS", memstore.Published(2021, 5, 1), memstore.NASA(), memstore.ISS())
	b.Section(a2, "abstract", "Plant roots grow in microgravity on the station.")
	b.Keyword(a2, "microgravity", "experiment_type", 0.5)
	b.Keyword(a2, "plant growth", "biological_system", 0.7)
	b.Author(a2, "Alice Smith")
	b.Author(a2, "Bob Jones")
	b.Organism(a2, "Arabidopsis thaliana", "thale cress")

	a3 := b.Article("PMC300", "Radiation effects", memstore.Published(2021, 8, 1))
	b.Section(a3, "abstract", "Space radiation damages DNA.")
	b.Keyword(a3, "radiation", "biological_system", 0.6)
	b.Author(a3, "Carol White")

	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func newEngine(t *testing.T, s engine.Store, opts ...engine.Option) *engine.Engine {
	t.Helper()
	opts = append([]engine.Option{engine.WithLogger(quietLogger()), engine.WithClock(func() time.Time { return fixedNow })}, opts...)
	e, err := engine.New(s, opts...)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNewRejectsNilStore(t *testing.T) {
	_, err := engine.New(nil)
	require.Error(t, err)
}

func TestSearchRanksBestSectionPerArticle(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()

	res, err := e.Search(ctx, "microgravity", nil, 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "PMC100", res[0].PMCID)
	require.Equal(t, "PMC200", res[1].PMCID)
	require.GreaterOrEqual(t, res[0].Score, res[1].Score)
	require.Equal(t, "abstract", res[0].SectionType)
	require.Equal(t, []string{"bone loss", "microgravity"}, res[0].Keywords)
	require.Contains(t, res[0].Snippet, "Microgravity")
	require.Equal(t, "10.1/a1", res[0].DOI)
	require.Empty(t, res[1].DOI)

	top, err := e.Search(ctx, "microgravity", nil, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "PMC100", top[0].PMCID)

	again, err := e.Search(ctx, "microgravity", nil, 0)
	require.NoError(t, err)
	require.Equal(t, res, again)
}

func TestSearchEdgeCases(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()

	res, err := e.Search(ctx, "   ", nil, 0)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)

	res, err = e.Search(ctx, "microgravity", []string{"Results"}, 0)
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = e.Search(ctx, "bone", nil, -1)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	res, err = e.Search(ctx, "bone", nil, 10_000)
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestSearchByKeywords(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()

	res, err := e.SearchByKeywords(ctx, []string{" Microgravity "}, 0, 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "PMC100", res[0].PMCID)
	require.InDelta(t, 0.8, res[0].AvgRelevance, 1e-9)
	require.Equal(t, []string{"microgravity"}, res[0].MatchedKeywords)

	res, err = e.SearchByKeywords(ctx, []string{"microgravity"}, 0.6, 0)
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = e.SearchByKeywords(ctx, []string{"unknown term"}, 0, 0)
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = e.SearchByKeywords(ctx, []string{" ", ""}, 0, 0)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestRelatedSharesKeywords(t *testing.T) {
	b := memstore.NewBuilder()
	a := b.Article("A", "seed")
	bb := b.Article("B", "neighbour")
	c := b.Article("C", "stranger")
	b.Keyword(a, "x", "biological_system", 1)
	b.Keyword(a, "y", "biological_system", 1)
	b.Keyword(bb, "x", "biological_system", 0.5)
	b.Keyword(c, "z", "biological_system", 1)
	s, err := b.Build()
	require.NoError(t, err)
	e := newEngine(t, s)
	ctx := context.Background()

	res, err := e.Related(ctx, "A", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "B", res[0].PMCID)
	require.Equal(t, 1, res[0].SharedKeywords)
	require.InDelta(t, 0.5, res[0].AvgRelevance, 1e-9)

	res, err = e.Related(ctx, "missing", 0)
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = e.Related(ctx, "", 0)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestFilterPaging(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()
	yes := true

	page, err := e.Filter(ctx, models.FilterPredicates{NASARelated: &yes}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Articles, 1)
	require.Equal(t, "PMC200", page.Articles[0].PMCID)

	page, err = e.Filter(ctx, models.FilterPredicates{NASARelated: &yes}, 10, 5)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.NotNil(t, page.Articles)
	require.Empty(t, page.Articles)

	page, err = e.Filter(ctx, models.FilterPredicates{HasDOI: &yes}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	page, err = e.Filter(ctx, models.FilterPredicates{Organisms: []string{" Mus musculus "}}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "PMC100", page.Articles[0].PMCID)

	for _, name := range []string{"mouse", "mus musculus", "MOUSE", "Thale Cress"} {
		page, err = e.Filter(ctx, models.FilterPredicates{Organisms: []string{name}}, 0, 0)
		require.NoError(t, err, name)
		require.Equal(t, 1, page.Total, name)
	}
	page, err = e.Filter(ctx, models.FilterPredicates{Organisms: []string{"mouse", "arabidopsis thaliana"}}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)

	from, to := models.NewDate(2021, 1, 1), models.NewDate(2021, 6, 30)
	page, err = e.Filter(ctx, models.FilterPredicates{DateFrom: &from, DateTo: &to}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	_, err = e.Filter(ctx, models.FilterPredicates{DateFrom: &to, DateTo: &from}, 0, 0)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = e.Filter(ctx, models.FilterPredicates{}, 0, -1)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestAuthorNetwork(t *testing.T) {
	e := newEngine(t, corpus(t))

	g, err := e.AuthorNetwork(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, g.Edges, 1)
	require.Equal(t, 2, g.Edges[0].Weight)
	require.Less(t, g.Edges[0].Source, g.Edges[0].Target)
	require.Len(t, g.Nodes, 2)
	for _, n := range g.Nodes {
		require.Equal(t, 1, n.Size)
		require.Equal(t, "author", n.Kind)
	}

	_, err = e.AuthorNetwork(context.Background(), -1)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestKeywordNetwork(t *testing.T) {
	s := corpus(t)

	g, err := newEngine(t, s).KeywordNetwork(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, g.Nodes)
	require.NotNil(t, g.Edges)
	require.Empty(t, g.Edges)

	th := engine.DefaultThresholds()
	th.KeywordNetworkMinCount = 1
	g, err = newEngine(t, s, engine.WithThresholds(th)).KeywordNetwork(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, g.Edges, 2)
	require.Len(t, g.Nodes, 3)
	sizes := map[string]int{}
	for _, n := range g.Nodes {
		sizes[n.Label] = n.Size
	}
	require.Equal(t, map[string]int{"bone loss": 1, "microgravity": 2, "plant growth": 1}, sizes)
	for _, edge := range g.Edges {
		require.Less(t, edge.Source, edge.Target)
	}
}

func TestClusters(t *testing.T) {
	th := engine.DefaultThresholds()
	th.ClusterMinArticles = 2
	e := newEngine(t, corpus(t), engine.WithThresholds(th))

	cl, err := e.Clusters(context.Background())
	require.NoError(t, err)
	require.Len(t, cl, 1)
	require.Equal(t, "Microgravity", cl[0].Name)
	require.Equal(t, 2, cl[0].ArticleCount)
	require.Equal(t, []string{"bone loss", "plant growth"}, cl[0].RelatedTopics)
}

func TestGaps(t *testing.T) {
	e := newEngine(t, corpus(t))

	gaps, err := e.Gaps(context.Background())
	require.NoError(t, err)
	require.Len(t, gaps, 4)
	require.Equal(t, []string{"bone loss", "plant growth", "radiation", "microgravity"},
		[]string{gaps[0].Area, gaps[1].Area, gaps[2].Area, gaps[3].Area})
	last := gaps[3]
	require.Equal(t, 2, last.PublicationCount)
	require.Equal(t, engine.SeverityCritical, last.Severity)
	require.Equal(t, 4, last.Progress)
}

func TestSeverityBands(t *testing.T) {
	th := engine.DefaultThresholds()
	require.Equal(t, engine.SeverityCritical, th.Severity(2))
	require.Equal(t, engine.SeverityHigh, th.Severity(3))
	require.Equal(t, engine.SeverityHigh, th.Severity(5))
	require.Equal(t, engine.SeverityMedium, th.Severity(6))
	require.Equal(t, 0, th.Progress(0))
	require.Equal(t, 100, th.Progress(80))
}

func TestBuildTimeline(t *testing.T) {
	tl := engine.BuildTimeline([]models.YearCount{{Year: 2021, Count: 8}, {Year: 2020, Count: 5}, {Year: 0, Count: 3}})
	require.Equal(t, []models.YearCount{{Year: 2020, Count: 5}, {Year: 2021, Count: 8}}, tl.Years)
	require.NotNil(t, tl.Growth)
	require.Equal(t, 3, tl.Growth.Diff)
	require.InDelta(t, 60.0, tl.Growth.Percent, 1e-9)

	single := engine.BuildTimeline([]models.YearCount{{Year: 2020, Count: 5}})
	require.Nil(t, single.Growth)
}

func TestTrends(t *testing.T) {
	e := newEngine(t, corpus(t))

	tl, err := e.Trends(context.Background())
	require.NoError(t, err)
	require.Len(t, tl.Years, 2)
	require.Equal(t, 1, tl.Growth.Diff)
	require.InDelta(t, 100.0, tl.Growth.Percent, 1e-9)
}

func TestOverview(t *testing.T) {
	e := newEngine(t, corpus(t))

	ov, err := e.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, ov.TotalPublications)
	require.Equal(t, 1, ov.PublicationsWithDOI)
	require.InDelta(t, 33.3, ov.DOICoveragePercent, 1e-9)
	require.Equal(t, 2, ov.NASARelatedCount)
	require.InDelta(t, 66.7, ov.NASARelatedPercent, 1e-9)
	require.Equal(t, 0, ov.RecentPublications)
	require.Equal(t, 2, ov.YearsOfPublication)
	require.Equal(t, 3, ov.TotalAuthors)
	require.Equal(t, 4, ov.TotalKeywords)
}

func TestDefaultInsights(t *testing.T) {
	e := newEngine(t, corpus(t))

	got, err := e.Insights(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "mission_priority_gaps", got[0].Rule)
	require.Contains(t, got[0].Content, "bone loss, plant growth, microgravity")
	require.Equal(t, "data_completeness", got[1].Rule)
	require.Equal(t, "Data Quality Enhancement", got[1].Title)
}

// busyCorpus trips every default insight rule.
func busyCorpus(t *testing.T) *memstore.Store {
	t.Helper()
	b := memstore.NewBuilder()
	for i := 0; i < 11; i++ {
		a := b.Article(fmt.Sprintf("PMC9%02d", i), fmt.Sprintf("Orbital study %d", i),
			memstore.Published(2024, 1, i+1), memstore.WithDOI(fmt.Sprintf("10.9/%d", i)), memstore.NASA(), memstore.ISS())
		b.Author(a, "Dana Lee")
		b.Organism(a, fmt.Sprintf("Species %02d", i), "")
		if i < 2 {
			b.Keyword(a, "radiation", "biological_system", 0.8)
		}
	}
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func TestInsightsAllRulesTriggered(t *testing.T) {
	e := newEngine(t, busyCorpus(t))
	got, err := e.Insights(context.Background())
	require.NoError(t, err)
	rules := make([]string, 0, len(got))
	for _, g := range got {
		rules = append(rules, g.Rule)
	}
	require.Equal(t, []string{"mission_priority_gaps", "emerging_focus", "collaboration_density", "data_completeness"}, rules)
	require.Contains(t, got[1].Content, "radiation research with 2 recent publications")
	require.Contains(t, got[2].Content, "(1 researchers)")
	require.Equal(t, "Data Integration Excellence", got[3].Title)
	require.Contains(t, got[3].Content, "100% complete")

	th := engine.DefaultThresholds()
	th.InsightMax = 5
	e = newEngine(t, busyCorpus(t), engine.WithThresholds(th))
	got, err = e.Insights(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, "organism_diversity", got[4].Rule)
	require.Contains(t, got[4].Content, "11 different organisms")
}

func defaultRule(t *testing.T, name string) engine.Rule {
	t.Helper()
	for _, r := range engine.DefaultRules() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no default rule %q", name)
	return engine.Rule{}
}

func insightsFrom(t *testing.T, b *memstore.Builder, rule string) []engine.Insight {
	t.Helper()
	s, err := b.Build()
	require.NoError(t, err)
	got, err := newEngine(t, s, engine.WithRules(defaultRule(t, rule))).Insights(context.Background())
	require.NoError(t, err)
	return got
}

func TestCollaborationDensityBoundary(t *testing.T) {
	// 3 ISS articles by 2 authors sits exactly on the 1.5 ratio.
	b := memstore.NewBuilder()
	for i, author := range []string{"Ann", "Ben", "Ann"} {
		a := b.Article(fmt.Sprintf("PMC%d", i), "Station work", memstore.ISS())
		b.Author(a, author)
	}
	require.Empty(t, insightsFrom(t, b, "collaboration_density"))

	b = memstore.NewBuilder()
	for i := 0; i < 2; i++ {
		a := b.Article(fmt.Sprintf("PMC%d", i), "Station work", memstore.ISS())
		b.Author(a, "Ann")
	}
	b.Author(b.Article("PMC9", "Ground control"), "Ben")
	got := insightsFrom(t, b, "collaboration_density")
	require.Len(t, got, 1)
	require.Equal(t, "Research Collaboration", got[0].Title)
}

func TestOrganismDiversityBoundary(t *testing.T) {
	build := func(n int) *memstore.Builder {
		b := memstore.NewBuilder()
		a := b.Article("PMC1", "Survey")
		for i := 0; i < n; i++ {
			b.Organism(a, fmt.Sprintf("Species %02d", i), "")
		}
		return b
	}
	require.Empty(t, insightsFrom(t, build(10), "organism_diversity"))
	got := insightsFrom(t, build(11), "organism_diversity")
	require.Len(t, got, 1)
	require.Contains(t, got[0].Content, "11 different organisms")
}

func TestDataCompletenessBoundary(t *testing.T) {
	// 5 dated articles, 3 with a DOI: (3+5)/10 is exactly the target.
	b := memstore.NewBuilder()
	for i := 0; i < 5; i++ {
		opts := []func(*models.Article){memstore.Published(2020, 1, i+1)}
		if i < 3 {
			opts = append(opts, memstore.WithDOI(fmt.Sprintf("10.1/%d", i)))
		}
		b.Article(fmt.Sprintf("PMC%d", i), "Record", opts...)
	}
	got := insightsFrom(t, b, "data_completeness")
	require.Len(t, got, 1)
	require.Equal(t, "Data Integration Excellence", got[0].Title)
	require.Contains(t, got[0].Content, "80% complete")

	require.Empty(t, insightsFrom(t, memstore.NewBuilder(), "data_completeness"))
}

func TestEmergingFocusNeedsRecentArticles(t *testing.T) {
	b := memstore.NewBuilder()
	old := b.Article("PMC1", "Archive", memstore.Published(2015, 1, 1))
	b.Keyword(old, "radiation", "biological_system", 0.9)
	require.Empty(t, insightsFrom(t, b, "emerging_focus"))

	recent := b.Article("PMC2", "Fresh", memstore.Published(2024, 11, 1))
	b.Keyword(recent, "sleep", "biological_system", 0.9)
	got := insightsFrom(t, b, "emerging_focus")
	require.Len(t, got, 1)
	require.Contains(t, got[0].Content, "sleep research with 1 recent publications")
}

func TestInsightsSkipFailingRules(t *testing.T) {
	ok := func(title string) func(context.Context, *engine.Engine) (*engine.Insight, error) {
		return func(context.Context, *engine.Engine) (*engine.Insight, error) {
			return &engine.Insight{Title: title}, nil
		}
	}
	rules := []engine.Rule{
		{Name: "late", Priority: 9, Eval: ok("late")},
		{Name: "broken", Priority: 0, Eval: func(context.Context, *engine.Engine) (*engine.Insight, error) {
			return nil, errors.New("boom")
		}},
		{Name: "panics", Priority: 0, Eval: func(context.Context, *engine.Engine) (*engine.Insight, error) {
			panic("bad rule")
		}},
		{Name: "silent", Priority: 1, Eval: func(context.Context, *engine.Engine) (*engine.Insight, error) { return nil, nil }},
		{Name: "third", Priority: 3, Eval: ok("third")},
		{Name: "first", Priority: 1, Eval: ok("first")},
		{Name: "second", Priority: 2, Eval: ok("second")},
		{Name: "fourth", Priority: 4, Eval: ok("fourth")},
	}
	e := newEngine(t, corpus(t), engine.WithRules(rules...), engine.WithWorkers(2))

	got, err := e.Insights(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, g := range got {
		names = append(names, g.Rule)
	}
	require.Equal(t, []string{"first", "second", "third", "fourth"}, names)
}

func TestQuickAnswerCount(t *testing.T) {
	e := newEngine(t, corpus(t))

	ans, err := e.QuickAnswer(context.Background(), "How many NASA publications are there?")
	require.NoError(t, err)
	require.Equal(t, engine.AnswerCount, ans.Type())
	c, ok := ans.(engine.CountAnswer)
	require.True(t, ok)
	require.Equal(t, 2, c.Count)
	require.NotNil(t, c.Percentage)
	require.InDelta(t, 66.7, *c.Percentage, 1e-9)
	require.Equal(t, 3, *c.Total)
}

func TestQuickAnswerVariants(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()

	ans, err := e.QuickAnswer(ctx, "compare bone vs radiation")
	require.NoError(t, err)
	cmp, ok := ans.(engine.ComparisonAnswer)
	require.True(t, ok)
	require.Equal(t, []string{"bone", "radiation"}, cmp.Topics)
	require.Equal(t, map[string]int{"bone": 1, "radiation": 1}, cmp.Results)

	ans, err = e.QuickAnswer(ctx, "compare bone")
	require.NoError(t, err)
	require.Equal(t, engine.AnswerClarification, ans.Type())

	ans, err = e.QuickAnswer(ctx, "who wrote the most papers")
	require.NoError(t, err)
	au, ok := ans.(engine.AuthorInfoAnswer)
	require.True(t, ok)
	require.Equal(t, "Alice Smith", au.TopAuthors[0].Name)

	ans, err = e.QuickAnswer(ctx, "latest work")
	require.NoError(t, err)
	rec, ok := ans.(engine.RecentArticlesAnswer)
	require.True(t, ok)
	require.Equal(t, "PMC300", rec.Articles[0].PMCID)

	ans, err = e.QuickAnswer(ctx, "radiation damage")
	require.NoError(t, err)
	sr, ok := ans.(engine.SearchResultsAnswer)
	require.True(t, ok)
	require.Len(t, sr.Results, 1)
	require.Equal(t, "Found 1 articles related to your question", sr.Message)

	_, err = e.QuickAnswer(ctx, "  ")
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestClassify(t *testing.T) {
	cases := map[string]engine.Intent{
		"How many studies exist?":        engine.IntentCount,
		"Show the newest papers":         engine.IntentRecent,
		"Which researcher leads this?":   engine.IntentAuthor,
		"What species were flown?":       engine.IntentOrganism,
		"bone versus muscle":             engine.IntentComparison,
		"effects of spaceflight on mice": engine.IntentSearch,
	}
	for q, want := range cases {
		require.Equal(t, want, engine.Classify(q), q)
	}
}

func TestComparisonTopicsDeduplicates(t *testing.T) {
	require.Equal(t, []string{"bone", "muscle"}, engine.ComparisonTopics("Compare bone and muscle, bone vs muscle?"))
	require.Empty(t, engine.ComparisonTopics("compare"))
}

func TestArticleDetail(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()

	d, err := e.Article(ctx, "PMC100")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, []string{"Alice Smith", "Bob Jones"}, d.Authors)
	require.Len(t, d.Sections, 2)
	require.Equal(t, []string{"National Aeronautics and Space Administration"}, d.Funders)

	d, err = e.Article(ctx, "PMC999")
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestDashboardListings(t *testing.T) {
	e := newEngine(t, corpus(t))
	ctx := context.Background()

	areas, err := e.ResearchAreas(ctx, 0)
	require.NoError(t, err)
	require.Len(t, areas, 4)
	require.Equal(t, "microgravity", areas[0].Name)

	cited, err := e.TopCited(ctx, 0)
	require.NoError(t, err)
	require.Len(t, cited, 1)

	orgs, err := e.Organisms(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orgs, 1)

	dist, err := e.KeywordDistribution(ctx)
	require.NoError(t, err)
	require.Equal(t, "biological_system", dist[0].Category)
	require.Equal(t, 3, dist[0].Count)
}

func TestAnalyticsBreakdown(t *testing.T) {
	e := newEngine(t, corpus(t))
	b, err := e.AnalyticsBreakdown(context.Background())
	require.NoError(t, err)

	require.Equal(t, []models.LabelCount{
		{Label: "Critical", Count: 1},
		{Label: "High", Count: 1},
		{Label: "Medium", Count: 0},
		{Label: "Low", Count: 1},
	}, b.Impact)
	require.Equal(t, []engine.MethodologyCount{{SectionType: "results", Label: "Results", ArticleCount: 1}}, b.Methodology)
	require.Len(t, b.Timeline.Years, 2)
	require.LessOrEqual(t, len(b.ResearchAreas), 5)
	require.Len(t, b.TopCited, 1)
	require.Len(t, b.TopFunders, 1)
	require.Len(t, b.Topics, 1)
}

func TestBreakdownImpactAndMethodology(t *testing.T) {
	b := memstore.NewBuilder()
	busy := b.Article("PMC1", "Imaging", memstore.Figures(6))
	b.Section(busy, "materials_and_methods", "Mice were imaged.")
	b.Section(busy, "results", "Images show loss.")
	b.Section(busy, "results", "More images.")
	sparse := b.Article("PMC2", "Notes", memstore.Figures(5))
	b.Section(sparse, "materials_and_methods", "Cells were cultured.")
	b.Section(sparse, "introduction", "Background.")
	s, err := b.Build()
	require.NoError(t, err)

	got, err := newEngine(t, s).AnalyticsBreakdown(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.LabelCount{
		{Label: "Critical", Count: 0},
		{Label: "High", Count: 0},
		{Label: "Medium", Count: 1},
		{Label: "Low", Count: 1},
	}, got.Impact)
	require.Equal(t, []engine.MethodologyCount{
		{SectionType: "materials_and_methods", Label: "Materials And Methods", ArticleCount: 2},
		{SectionType: "results", Label: "Results", ArticleCount: 1},
	}, got.Methodology)
}

func TestSummaryReport(t *testing.T) {
	e := newEngine(t, corpus(t))

	r, err := e.SummaryReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, fixedNow, r.GeneratedAt)
	require.Equal(t, 3, r.Overview.TotalPublications)
	require.NotEmpty(t, r.KnowledgeGaps)
	require.Len(t, r.LeadingResearchers, 3)
}

type downStore struct {
	engine.Store
}

func (downStore) FullTextQuery(context.Context, models.FullTextQuery) ([]models.SectionHit, error) {
	return nil, fmt.Errorf("%w: connection refused", util.ErrStoreUnavailable)
}

func TestStoreFailuresPropagate(t *testing.T) {
	e := newEngine(t, downStore{Store: corpus(t)})

	_, err := e.Search(context.Background(), "bone", nil, 0)
	require.ErrorIs(t, err, util.ErrStoreUnavailable)
}
