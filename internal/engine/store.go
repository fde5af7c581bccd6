package engine

import (
	"context"
	"time"

	"bioatlas/internal/graph"
	"bioatlas/internal/models"
)

// Store is the read-only entity store the engine computes over. Single-entity
// lookups return nil without error on a miss. Implementations report
// connectivity and timeout failures wrapped around util.ErrStoreUnavailable.
type Store interface {
	FindArticle(ctx context.Context, pmcid string) (*models.Article, error)
	ArticleDetail(ctx context.Context, articleID int64) (*models.ArticleDetail, error)

	// FullTextQuery returns matching (article, section) rows with their text
	// rank, highest score first.
	FullTextQuery(ctx context.Context, q models.FullTextQuery) ([]models.SectionHit, error)
	// KeywordsForArticles maps article ids to their keyword names.
	KeywordsForArticles(ctx context.Context, articleIDs []int64) (map[int64][]string, error)

	KeywordLookup(ctx context.Context, names []string) ([]models.Keyword, error)
	ArticlesForKeywords(ctx context.Context, q models.KeywordHitQuery) ([]models.KeywordHit, error)
	ArticleKeywordIDs(ctx context.Context, articleID int64) ([]int64, error)

	// FilterArticles returns the total match count before paging and the
	// requested page ordered by article id. Organism names arrive lowercased
	// and match either the scientific or the common name, ignoring case.
	FilterArticles(ctx context.Context, p models.FilterPredicates, limit, offset int) (int, []models.Article, error)

	CoOccurrencePairs(ctx context.Context, q models.PairQuery) ([]graph.Pair, error)
	KeywordStats(ctx context.Context, q models.KeywordStatsQuery) ([]models.KeywordCount, error)
	// RelatedKeywords lists, alphabetically, distinct keywords sharing an
	// article with keywordID.
	RelatedKeywords(ctx context.Context, keywordID int64, limit int) ([]string, error)
	Timeline(ctx context.Context) ([]models.YearCount, error)

	CorpusStats(ctx context.Context, recentSince time.Time) (models.CorpusStats, error)
	CollaborationStats(ctx context.Context, flag models.Flag) (models.CollaborationStats, error)
	RecentArticles(ctx context.Context, limit int) ([]models.Article, error)
	TopAuthors(ctx context.Context, limit int) ([]models.AuthorCount, error)
	TopOrganisms(ctx context.Context, limit int) ([]models.OrganismCount, error)
	TopCited(ctx context.Context, limit int) ([]models.Article, error)
	TopFunders(ctx context.Context, limit int) ([]models.FunderCount, error)
	TopicDistribution(ctx context.Context, limit int) ([]models.TopicCount, error)
	KeywordCategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	// ImpactCounts counts articles per models.Article.ImpactLevel. Levels with
	// no articles may be omitted.
	ImpactCounts(ctx context.Context) ([]models.LabelCount, error)
	// SectionCoverage counts distinct articles having a section of each of
	// the given types. Types with no articles may be omitted.
	SectionCoverage(ctx context.Context, sectionTypes []string) ([]models.LabelCount, error)
}
