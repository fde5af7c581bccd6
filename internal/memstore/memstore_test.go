package memstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bioatlas/internal/models"

	"github.com/stretchr/testify/require"
)

func sample() *Builder {
	b := NewBuilder()
	a := b.Article("PMC1", "Spaceflight and muscle", Published(2022, 1, 10), NASA())
	b.Section(a, "abstract", "Spaceflight reduces muscle mass in astronauts.")
	b.Keyword(a, "Muscle  Atrophy", "biological_system", 0.9)
	b.Keyword(a, "spaceflight", "experiment_type", 0.4)
	c := b.Article("PMC2", "Muscle mass recovery", Published(2023, 4, 2))
	b.Section(c, "abstract", "Muscle recovery after return.")
	b.Keyword(c, "muscle atrophy", "biological_system", 0.5)
	return b
}

func TestLoadRoundTripsSnapshot(t *testing.T) {
	raw, err := json.Marshal(sample().Snapshot())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	a, err := s.FindArticle(context.Background(), "PMC1")
	require.NoError(t, err)
	require.NotNil(t, a)
	require.Equal(t, "2022-01-10", a.PublicationDate.String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	snap := sample().Snapshot()
	snap.Articles = append(snap.Articles, models.Article{ID: 99, PMCID: "PMC1"})
	_, err := New(snap)
	require.Error(t, err)
}

func TestKeywordLookupIsCanonical(t *testing.T) {
	s, err := sample().Build()
	require.NoError(t, err)

	got, err := s.KeywordLookup(context.Background(), []string{"MUSCLE atrophy", "absent"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "muscle atrophy", got[0].Keyword)
}

func TestFullTextQueryRequiresAllTerms(t *testing.T) {
	s, err := sample().Build()
	require.NoError(t, err)
	ctx := context.Background()

	hits, err := s.FullTextQuery(ctx, models.FullTextQuery{Text: "muscle"})
	require.NoError(t, err)
	require.Len(t, hits, 2)

	hits, err = s.FullTextQuery(ctx, models.FullTextQuery{Text: "muscle astronauts"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "PMC1", hits[0].Article.PMCID)

	hits, err = s.FullTextQuery(ctx, models.FullTextQuery{Text: "muscle", SectionTypes: []string{"methods"}})
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestKeywordStatsBounds(t *testing.T) {
	s, err := sample().Build()
	require.NoError(t, err)
	ctx := context.Background()

	rows, err := s.KeywordStats(ctx, models.KeywordStatsQuery{Order: models.Descending})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "muscle atrophy", rows[0].Keyword)
	require.Equal(t, 2, rows[0].ArticleCount)

	rows, err = s.KeywordStats(ctx, models.KeywordStatsQuery{Flag: models.FlagNASA, MaxArticles: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.Equal(t, 1, r.ArticleCount)
	}
}

func TestCoOccurrencePairs(t *testing.T) {
	s, err := sample().Build()
	require.NoError(t, err)

	pairs, err := s.CoOccurrencePairs(context.Background(), models.PairQuery{Entity: models.EntityKeyword, MinCount: 1})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, 1, pairs[0].Count)
	require.Less(t, pairs[0].A.ID, pairs[0].B.ID)

	_, err = s.CoOccurrencePairs(context.Background(), models.PairQuery{Entity: "organism"})
	require.Error(t, err)
}
