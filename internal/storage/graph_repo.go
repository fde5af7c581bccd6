package storage

import (
	"context"
	"fmt"

	"bioatlas/internal/graph"
	"bioatlas/internal/models"
	"bioatlas/internal/util"
)

type GraphRepo struct {
	db *DB
}

func NewGraphRepo(db *DB) *GraphRepo {
	return &GraphRepo{db: db}
}

// pairSource names the link table, entity columns and category filter for
// one entity kind. $1 is the category array.
type pairSource struct {
	links    string
	fk       string
	entities string
	label    string
	category string
	filter   string
}

var pairSources = map[models.EntityKind]pairSource{
	models.EntityKeyword: {
		links: "article_keywords", fk: "keyword_id", entities: "keywords", label: "keyword",
		category: "COALESCE(%s.category,'')",
		filter:   "($1::text[] IS NULL OR (e1.category = ANY($1) AND e2.category = ANY($1)))",
	},
	models.EntityAuthor: {
		links: "article_authors", fk: "author_id", entities: "authors", label: "full_name",
		category: "''",
		filter:   "$1::text[] IS NULL",
	},
}

// CoOccurrencePairs aggregates distinct shared articles per unordered entity
// pair in SQL. Category filtering applies to keywords only.
func (r *GraphRepo) CoOccurrencePairs(ctx context.Context, q models.PairQuery) ([]graph.Pair, error) {
	src, ok := pairSources[q.Entity]
	if !ok {
		return nil, fmt.Errorf("%w: unknown entity kind %q", util.ErrInvalidArgument, q.Entity)
	}
	cat1, cat2 := src.category, src.category
	var categories any
	if q.Entity == models.EntityKeyword {
		cat1, cat2 = fmt.Sprintf(src.category, "e1"), fmt.Sprintf(src.category, "e2")
		categories = textArray(q.Categories)
	}

	sql := fmt.Sprintf(`
SELECT e1.id, e1.%[4]s, %[5]s, e2.id, e2.%[4]s, %[6]s, COUNT(DISTINCT l1.article_id) AS n
FROM %[1]s l1
JOIN %[1]s l2 ON l2.article_id = l1.article_id AND l1.%[2]s < l2.%[2]s
JOIN %[3]s e1 ON e1.id = l1.%[2]s
JOIN %[3]s e2 ON e2.id = l2.%[2]s
WHERE %[7]s
GROUP BY e1.id, e2.id
HAVING COUNT(DISTINCT l1.article_id) >= $2
ORDER BY n DESC, e1.id, e2.id
LIMIT $3`, src.links, src.fk, src.entities, src.label, cat1, cat2, src.filter)

	rows, err := r.db.Pool.Query(ctx, sql, categories, q.MinCount, limitArg(q.Limit))
	if err != nil {
		return nil, wrap("co-occurrence pairs", err)
	}
	defer rows.Close()

	out := make([]graph.Pair, 0)
	for rows.Next() {
		var p graph.Pair
		if err := rows.Scan(&p.A.ID, &p.A.Label, &p.A.Category, &p.B.ID, &p.B.Label, &p.B.Category, &p.Count); err != nil {
			return nil, wrap("scan pair", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate pairs", err)
	}
	return out, nil
}

// RelatedKeywords lists distinct keywords sharing an article with keywordID,
// alphabetically.
func (r *GraphRepo) RelatedKeywords(ctx context.Context, keywordID int64, limit int) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT DISTINCT k.keyword
FROM article_keywords ak
JOIN keywords k ON k.id = ak.keyword_id
WHERE ak.article_id IN (SELECT article_id FROM article_keywords WHERE keyword_id = $1)
  AND ak.keyword_id <> $1
ORDER BY k.keyword
LIMIT $2`, keywordID, limitArg(limit))
	if err != nil {
		return nil, wrap("related keywords", err)
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, wrap("scan related keyword", err)
		}
		out = append(out, kw)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate related keywords", err)
	}
	return out, nil
}
