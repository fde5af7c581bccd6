package storage

import (
	"context"
	"fmt"
	"time"

	"bioatlas/internal/models"

	"github.com/jackc/pgx/v5"
)

type StatsRepo struct {
	db *DB
}

func NewStatsRepo(db *DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// KeywordStats counts distinct articles per keyword under the query's
// category, flag and date restrictions.
func (r *StatsRepo) KeywordStats(ctx context.Context, q models.KeywordStatsQuery) ([]models.KeywordCount, error) {
	flag, err := flagExpr(q.Flag)
	if err != nil {
		return nil, err
	}
	order := "DESC"
	if q.Order == models.Ascending {
		order = "ASC"
	}
	var maxArticles any
	if q.MaxArticles > 0 {
		maxArticles = q.MaxArticles
	}

	rows, err := r.db.Pool.Query(ctx, fmt.Sprintf(`
SELECT k.id, k.keyword, COALESCE(k.category,''), COUNT(DISTINCT ak.article_id) AS n
FROM keywords k
JOIN article_keywords ak ON ak.keyword_id = k.id
JOIN articles a ON a.id = ak.article_id
LEFT JOIN article_metadata am ON am.article_id = a.id
WHERE ($1::text[] IS NULL OR k.category = ANY($1))
  AND %s
  AND ($2::date IS NULL OR a.publication_date >= $2)
GROUP BY k.id
HAVING COUNT(DISTINCT ak.article_id) >= $3
   AND ($4::int IS NULL OR COUNT(DISTINCT ak.article_id) < $4)
ORDER BY n %s, k.keyword
LIMIT $5`, flag, order), textArray(q.Categories), timeArg(q.Since), q.MinArticles, maxArticles, limitArg(q.Limit))
	if err != nil {
		return nil, wrap("keyword stats", err)
	}
	defer rows.Close()

	out := make([]models.KeywordCount, 0)
	for rows.Next() {
		var k models.KeywordCount
		if err := rows.Scan(&k.ID, &k.Keyword, &k.Category, &k.ArticleCount); err != nil {
			return nil, wrap("scan keyword stat", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate keyword stats", err)
	}
	return out, nil
}

func (r *StatsRepo) Timeline(ctx context.Context) ([]models.YearCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT EXTRACT(YEAR FROM publication_date)::int AS y, COUNT(*)
FROM articles
WHERE publication_date IS NOT NULL
GROUP BY y
ORDER BY y`)
	if err != nil {
		return nil, wrap("timeline", err)
	}
	defer rows.Close()
	out := make([]models.YearCount, 0)
	for rows.Next() {
		var y models.YearCount
		if err := rows.Scan(&y.Year, &y.Count); err != nil {
			return nil, wrap("scan year", err)
		}
		out = append(out, y)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate years", err)
	}
	return out, nil
}

func (r *StatsRepo) CorpusStats(ctx context.Context, recentSince time.Time) (models.CorpusStats, error) {
	var st models.CorpusStats
	err := r.db.Pool.QueryRow(ctx, `
SELECT
  (SELECT COUNT(*) FROM articles),
  (SELECT COUNT(*) FROM articles WHERE doi IS NOT NULL AND doi <> ''),
  (SELECT COUNT(*) FROM articles WHERE publication_date IS NOT NULL),
  (SELECT COUNT(*) FROM authors),
  (SELECT COUNT(*) FROM keywords),
  (SELECT COUNT(*) FROM `+articleFrom+` WHERE `+nasaExpr+`),
  (SELECT COUNT(*) FROM articles WHERE publication_date >= $1::date),
  (SELECT COUNT(DISTINCT organism_id) FROM article_organisms),
  (SELECT COUNT(DISTINCT EXTRACT(YEAR FROM publication_date)) FROM articles WHERE publication_date IS NOT NULL)`,
		recentSince).Scan(&st.TotalArticles, &st.WithDOI, &st.WithDate, &st.TotalAuthors, &st.TotalKeywords,
		&st.NASARelated, &st.Recent, &st.DistinctOrganisms, &st.PublicationYears)
	if err != nil {
		return models.CorpusStats{}, wrap("corpus stats", err)
	}
	return st, nil
}

func (r *StatsRepo) CollaborationStats(ctx context.Context, flag models.Flag) (models.CollaborationStats, error) {
	cond, err := flagExpr(flag)
	if err != nil {
		return models.CollaborationStats{}, err
	}
	var st models.CollaborationStats
	err = r.db.Pool.QueryRow(ctx, `
SELECT COUNT(DISTINCT aa.author_id), COUNT(DISTINCT aa.article_id)
FROM article_authors aa
JOIN `+articleFrom+` ON a.id = aa.article_id
WHERE `+cond).Scan(&st.UniqueAuthors, &st.Articles)
	if err != nil {
		return models.CollaborationStats{}, wrap("collaboration stats", err)
	}
	return st, nil
}

func (r *StatsRepo) TopAuthors(ctx context.Context, limit int) ([]models.AuthorCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT au.full_name, COUNT(DISTINCT aa.article_id) AS n
FROM authors au
JOIN article_authors aa ON aa.author_id = au.id
GROUP BY au.id
ORDER BY n DESC, au.full_name
LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, wrap("top authors", err)
	}
	return collect(rows, "top authors", func(row pgx.Rows) (models.AuthorCount, error) {
		var a models.AuthorCount
		err := row.Scan(&a.Name, &a.ArticleCount)
		return a, err
	})
}

func (r *StatsRepo) TopOrganisms(ctx context.Context, limit int) ([]models.OrganismCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT o.scientific_name, COALESCE(o.common_name,''), COALESCE(o.organism_type,''), COUNT(DISTINCT ao.article_id) AS n
FROM organisms o
JOIN article_organisms ao ON ao.organism_id = o.id
GROUP BY o.id
ORDER BY n DESC, o.scientific_name
LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, wrap("top organisms", err)
	}
	return collect(rows, "top organisms", func(row pgx.Rows) (models.OrganismCount, error) {
		var o models.OrganismCount
		err := row.Scan(&o.ScientificName, &o.CommonName, &o.OrganismType, &o.StudyCount)
		return o, err
	})
}

func (r *StatsRepo) TopFunders(ctx context.Context, limit int) ([]models.FunderCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT f.name, COALESCE(f.abbreviation,''), COALESCE(f.country,''), COUNT(DISTINCT af.article_id) AS n
FROM funding_sources f
JOIN article_funding af ON af.funding_source_id = f.id
GROUP BY f.id
ORDER BY n DESC, f.name
LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, wrap("top funders", err)
	}
	return collect(rows, "top funders", func(row pgx.Rows) (models.FunderCount, error) {
		var f models.FunderCount
		err := row.Scan(&f.Name, &f.Abbreviation, &f.Country, &f.PublicationCount)
		return f, err
	})
}

func (r *StatsRepo) TopicDistribution(ctx context.Context, limit int) ([]models.TopicCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT t.name, COALESCE(t.description,''), COUNT(DISTINCT tp.article_id) AS n
FROM topics t
JOIN article_topics tp ON tp.topic_id = t.id
GROUP BY t.id
ORDER BY n DESC, t.name
LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, wrap("topic distribution", err)
	}
	return collect(rows, "topic distribution", func(row pgx.Rows) (models.TopicCount, error) {
		var t models.TopicCount
		err := row.Scan(&t.Name, &t.Description, &t.Count)
		return t, err
	})
}

func (r *StatsRepo) KeywordCategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT COALESCE(NULLIF(category,''), 'uncategorized') AS c, COUNT(*)
FROM keywords
GROUP BY c
ORDER BY c`)
	if err != nil {
		return nil, wrap("keyword categories", err)
	}
	return collect(rows, "keyword categories", func(row pgx.Rows) (models.CategoryCount, error) {
		var c models.CategoryCount
		err := row.Scan(&c.Category, &c.Count)
		return c, err
	})
}

// ImpactCounts mirrors models.Article.ImpactLevel in SQL.
func (r *StatsRepo) ImpactCounts(ctx context.Context) ([]models.LabelCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT CASE
         WHEN `+nasaExpr+` AND `+issExpr+` THEN 'Critical'
         WHEN `+nasaExpr+` THEN 'High'
         WHEN `+figExpr+` > 5 THEN 'Medium'
         ELSE 'Low'
       END AS level,
       COUNT(*)
FROM `+articleFrom+`
GROUP BY level`)
	if err != nil {
		return nil, wrap("impact counts", err)
	}
	return collect(rows, "impact counts", scanLabelCount)
}

func (r *StatsRepo) SectionCoverage(ctx context.Context, sectionTypes []string) ([]models.LabelCount, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT section_type, COUNT(DISTINCT article_id)
FROM article_sections
WHERE section_type = ANY($1)
GROUP BY section_type
ORDER BY 2 DESC, 1`, sectionTypes)
	if err != nil {
		return nil, wrap("section coverage", err)
	}
	return collect(rows, "section coverage", scanLabelCount)
}

func scanLabelCount(row pgx.Rows) (models.LabelCount, error) {
	var c models.LabelCount
	err := row.Scan(&c.Label, &c.Count)
	return c, err
}

func collect[T any](rows pgx.Rows, op string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrap("scan "+op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate "+op, err)
	}
	return out, nil
}
