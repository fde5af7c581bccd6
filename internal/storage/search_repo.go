package storage

import (
	"context"
	"fmt"

	"bioatlas/internal/models"
)

type SearchRepo struct {
	db *DB
}

func NewSearchRepo(db *DB) *SearchRepo {
	return &SearchRepo{db: db}
}

// FullTextQuery ranks sections with ts_rank against plainto_tsquery and keeps
// the best section per article.
func (r *SearchRepo) FullTextQuery(ctx context.Context, q models.FullTextQuery) ([]models.SectionHit, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT * FROM (
  SELECT DISTINCT ON (s.article_id) `+articleCols+`,
         s.id AS section_id, s.section_type, s.content,
         ts_rank(s.content_search, q)::float8 AS rank
  FROM article_sections s
  JOIN articles a ON a.id = s.article_id
  LEFT JOIN article_metadata am ON am.article_id = a.id
  CROSS JOIN plainto_tsquery('english', $1) q
  WHERE s.content_search @@ q
    AND ($2::text[] IS NULL OR s.section_type = ANY($2))
  ORDER BY s.article_id, rank DESC, s.section_order NULLS LAST, s.id
) best
ORDER BY rank DESC, id
LIMIT $3`, q.Text, textArray(q.SectionTypes), limitArg(q.Limit))
	if err != nil {
		return nil, wrap("full text query", err)
	}
	defer rows.Close()

	out := make([]models.SectionHit, 0)
	for rows.Next() {
		var h models.SectionHit
		a, err := scanArticle(rows, &h.SectionID, &h.SectionType, &h.Content, &h.Score)
		if err != nil {
			return nil, wrap("scan section hit", err)
		}
		h.Article = a
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate section hits", err)
	}
	return out, nil
}

func (r *SearchRepo) KeywordsForArticles(ctx context.Context, ids []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT ak.article_id, k.keyword
FROM article_keywords ak
JOIN keywords k ON k.id = ak.keyword_id
WHERE ak.article_id = ANY($1)
ORDER BY ak.article_id, k.keyword`, ids)
	if err != nil {
		return nil, wrap("keywords for articles", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id int64
			kw string
		)
		if err := rows.Scan(&id, &kw); err != nil {
			return nil, wrap("scan article keyword", err)
		}
		out[id] = append(out[id], kw)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate article keywords", err)
	}
	return out, nil
}

// KeywordLookup matches canonical names against whitespace-collapsed,
// lowercased keyword text.
func (r *SearchRepo) KeywordLookup(ctx context.Context, names []string) ([]models.Keyword, error) {
	out := make([]models.Keyword, 0, len(names))
	if len(names) == 0 {
		return out, nil
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, keyword, COALESCE(category,'')
FROM keywords
WHERE regexp_replace(lower(btrim(keyword)), '\s+', ' ', 'g') = ANY($1)
ORDER BY keyword, id`, names)
	if err != nil {
		return nil, wrap("keyword lookup", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k models.Keyword
		if err := rows.Scan(&k.ID, &k.Keyword, &k.Category); err != nil {
			return nil, wrap("scan keyword", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate keywords", err)
	}
	return out, nil
}

// ArticlesForKeywords returns one row per (article, keyword) link. NULL
// relevance counts as 1.0.
func (r *SearchRepo) ArticlesForKeywords(ctx context.Context, q models.KeywordHitQuery) ([]models.KeywordHit, error) {
	out := make([]models.KeywordHit, 0)
	if len(q.KeywordIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+articleCols+`, ak.keyword_id, k.keyword, COALESCE(ak.relevance_score, 1.0)
FROM article_keywords ak
JOIN keywords k ON k.id = ak.keyword_id
JOIN articles a ON a.id = ak.article_id
LEFT JOIN article_metadata am ON am.article_id = a.id
WHERE ak.keyword_id = ANY($1)
  AND ($2::float8 IS NULL OR COALESCE(ak.relevance_score, 1.0) >= $2)
ORDER BY a.id, k.keyword`, q.KeywordIDs, q.MinRelevance)
	if err != nil {
		return nil, wrap("articles for keywords", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h models.KeywordHit
		a, err := scanArticle(rows, &h.KeywordID, &h.Keyword, &h.Relevance)
		if err != nil {
			return nil, wrap("scan keyword hit", err)
		}
		h.Article = a
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate keyword hits", err)
	}
	return out, nil
}

func (r *SearchRepo) ArticleKeywordIDs(ctx context.Context, articleID int64) ([]int64, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT keyword_id FROM article_keywords WHERE article_id = $1 ORDER BY keyword_id`, articleID)
	if err != nil {
		return nil, wrap("article keyword ids", err)
	}
	defer rows.Close()
	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan keyword id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate keyword ids", err)
	}
	return out, nil
}
