package storage

import (
	"fmt"
	"time"

	"bioatlas/internal/engine"
	"bioatlas/internal/models"
	"bioatlas/internal/util"

	"github.com/jackc/pgx/v5/pgtype"
)

// Store is the Postgres-backed corpus store. Each repo covers one area of the
// schema; together they satisfy engine.Store.
type Store struct {
	*ArticleRepo
	*SearchRepo
	*GraphRepo
	*StatsRepo
}

var _ engine.Store = (*Store)(nil)

func NewStore(db *DB) *Store {
	return &Store{
		ArticleRepo: NewArticleRepo(db),
		SearchRepo:  NewSearchRepo(db),
		GraphRepo:   NewGraphRepo(db),
		StatsRepo:   NewStatsRepo(db),
	}
}

const (
	nasaExpr = `COALESCE((am.custom_fields->'nasa_info'->>'mentions_nasa')::boolean, false)`
	issExpr  = `COALESCE((am.custom_fields->'nasa_info'->>'mentions_iss')::boolean, false)`
	figExpr  = `COALESCE((am.custom_fields->>'figure_count')::int, 0)`

	// articleCols expects articles aliased a and a LEFT JOIN of article_metadata am.
	articleCols = `a.id, a.pmcid, a.title, a.publication_date,
       COALESCE(a.journal,'') AS journal, COALESCE(a.doi,'') AS doi, COALESCE(a.citations,0) AS citations,
       ` + nasaExpr + ` AS mentions_nasa, ` + issExpr + ` AS mentions_iss, ` + figExpr + ` AS figure_count`

	articleFrom = `articles a LEFT JOIN article_metadata am ON am.article_id = a.id`
)

func flagExpr(f models.Flag) (string, error) {
	switch f {
	case "":
		return "TRUE", nil
	case models.FlagNASA:
		return nasaExpr, nil
	case models.FlagISS:
		return issExpr, nil
	default:
		return "", fmt.Errorf("%w: unknown flag %q", util.ErrInvalidArgument, f)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// scanArticle reads articleCols followed by extra destinations.
func scanArticle(row scanner, extra ...any) (models.Article, error) {
	var (
		a    models.Article
		date pgtype.Date
	)
	dest := append([]any{&a.ID, &a.PMCID, &a.Title, &date, &a.Journal, &a.DOI, &a.Citations, &a.MentionsNASA, &a.MentionsISS, &a.FigureCount}, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Article{}, err
	}
	if date.Valid {
		d := models.NewDate(date.Time.Year(), date.Time.Month(), date.Time.Day())
		a.PublicationDate = &d
	}
	return a, nil
}

// limitArg maps a non-positive limit to NULL, which Postgres reads as no limit.
func limitArg(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}

func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func textArray(in []string) any {
	if len(in) == 0 {
		return nil
	}
	return in
}
