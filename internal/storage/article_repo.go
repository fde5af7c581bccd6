package storage

import (
	"context"
	"errors"
	"fmt"

	"bioatlas/internal/models"

	"github.com/jackc/pgx/v5"
)

type ArticleRepo struct {
	db *DB
}

func NewArticleRepo(db *DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

func (r *ArticleRepo) FindArticle(ctx context.Context, pmcid string) (*models.Article, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+articleCols+` FROM `+articleFrom+` WHERE a.pmcid = $1`, pmcid)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find article", err)
	}
	return &a, nil
}

const filterWhere = `
WHERE ($1::boolean IS NULL OR ` + nasaExpr + ` = $1)
  AND ($2::date IS NULL OR a.publication_date >= $2)
  AND ($3::date IS NULL OR a.publication_date <= $3)
  AND ($4::boolean IS NULL OR (a.doi IS NOT NULL AND a.doi <> '') = $4)
  AND ($5::text[] IS NULL OR EXISTS (
        SELECT 1 FROM article_organisms ao
        JOIN organisms o ON o.id = ao.organism_id
        WHERE ao.article_id = a.id
          AND (lower(o.scientific_name) = ANY($5) OR lower(o.common_name) = ANY($5))))`

// FilterArticles pages through matches ordered by article id.
func (r *ArticleRepo) FilterArticles(ctx context.Context, p models.FilterPredicates, limit, offset int) (int, []models.Article, error) {
	args := []any{p.NASARelated, dateArg(p.DateFrom), dateArg(p.DateTo), p.HasDOI, textArray(p.Organisms)}

	var total int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+articleFrom+filterWhere, args...).Scan(&total); err != nil {
		return 0, nil, wrap("count filtered articles", err)
	}
	if offset >= total {
		return total, []models.Article{}, nil
	}

	rows, err := r.db.Pool.Query(ctx, `SELECT `+articleCols+` FROM `+articleFrom+filterWhere+`
ORDER BY a.id
LIMIT $6 OFFSET $7`, append(args, limitArg(limit), offset)...)
	if err != nil {
		return 0, nil, wrap("filter articles", err)
	}
	out, err := collectArticles(rows)
	if err != nil {
		return 0, nil, wrap("filter articles", err)
	}
	return total, out, nil
}

func (r *ArticleRepo) RecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+articleCols+` FROM `+articleFrom+`
WHERE a.publication_date IS NOT NULL
ORDER BY a.publication_date DESC, a.id
LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, wrap("recent articles", err)
	}
	out, err := collectArticles(rows)
	if err != nil {
		return nil, wrap("recent articles", err)
	}
	return out, nil
}

func (r *ArticleRepo) TopCited(ctx context.Context, limit int) ([]models.Article, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+articleCols+` FROM `+articleFrom+`
WHERE a.citations IS NOT NULL AND a.citations > 0
ORDER BY a.citations DESC, a.id
LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, wrap("top cited", err)
	}
	out, err := collectArticles(rows)
	if err != nil {
		return nil, wrap("top cited", err)
	}
	return out, nil
}

func collectArticles(rows pgx.Rows) ([]models.Article, error) {
	defer rows.Close()
	out := make([]models.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return out, nil
}

// ArticleDetail loads an article with its authors, sections, keywords,
// organisms, topics and funders. A missing article yields nil.
func (r *ArticleRepo) ArticleDetail(ctx context.Context, articleID int64) (*models.ArticleDetail, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+articleCols+` FROM `+articleFrom+` WHERE a.id = $1`, articleID)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("article detail", err)
	}
	d := &models.ArticleDetail{Article: a}

	if d.Authors, err = r.strings(ctx, `
SELECT au.full_name FROM article_authors aa
JOIN authors au ON au.id = aa.author_id
WHERE aa.article_id = $1
ORDER BY aa.author_position NULLS LAST, au.full_name`, articleID); err != nil {
		return nil, wrap("article authors", err)
	}
	if d.Topics, err = r.strings(ctx, `
SELECT t.name FROM article_topics tp
JOIN topics t ON t.id = tp.topic_id
WHERE tp.article_id = $1
ORDER BY t.name`, articleID); err != nil {
		return nil, wrap("article topics", err)
	}
	if d.Funders, err = r.strings(ctx, `
SELECT f.name FROM article_funding af
JOIN funding_sources f ON f.id = af.funding_source_id
WHERE af.article_id = $1
ORDER BY f.name`, articleID); err != nil {
		return nil, wrap("article funders", err)
	}
	if d.Sections, err = r.sections(ctx, articleID); err != nil {
		return nil, wrap("article sections", err)
	}
	if d.Keywords, err = r.keywordDetails(ctx, articleID); err != nil {
		return nil, wrap("article keywords", err)
	}
	if d.Organisms, err = r.organisms(ctx, articleID); err != nil {
		return nil, wrap("article organisms", err)
	}
	return d, nil
}

func (r *ArticleRepo) strings(ctx context.Context, sql string, args ...any) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) sections(ctx context.Context, articleID int64) ([]models.Section, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, article_id, section_type, content, COALESCE(word_count,0), COALESCE(section_order,0)
FROM article_sections
WHERE article_id = $1
ORDER BY section_order NULLS LAST, id`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Section, 0)
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.ArticleID, &s.SectionType, &s.Content, &s.WordCount, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) keywordDetails(ctx context.Context, articleID int64) ([]models.ArticleKeywordDetail, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT k.keyword, COALESCE(k.category,''), COALESCE(ak.relevance_score, 1.0)
FROM article_keywords ak
JOIN keywords k ON k.id = ak.keyword_id
WHERE ak.article_id = $1
ORDER BY k.keyword`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.ArticleKeywordDetail, 0)
	for rows.Next() {
		var k models.ArticleKeywordDetail
		if err := rows.Scan(&k.Keyword, &k.Category, &k.Relevance); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) organisms(ctx context.Context, articleID int64) ([]models.Organism, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT o.id, o.scientific_name, COALESCE(o.common_name,''), COALESCE(o.organism_type,'')
FROM article_organisms ao
JOIN organisms o ON o.id = ao.organism_id
WHERE ao.article_id = $1
ORDER BY o.scientific_name`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Organism, 0)
	for rows.Next() {
		var o models.Organism
		if err := rows.Scan(&o.ID, &o.ScientificName, &o.CommonName, &o.OrganismType); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
