package memstore

import (
	"fmt"
	"time"

	"bioatlas/internal/graph"
	"bioatlas/internal/models"
)

// Builder assembles a Snapshot incrementally, assigning ids and reusing
// entities by name. It is meant for fixtures and seeding.
type Builder struct {
	snap      Snapshot
	keywords  map[string]int64
	authors   map[string]int64
	organisms map[string]int64
	topics    map[string]int64
	funders   map[string]int64
	positions map[int64]int
	orders    map[int64]int
}

func NewBuilder() *Builder {
	return &Builder{
		keywords:  map[string]int64{},
		authors:   map[string]int64{},
		organisms: map[string]int64{},
		topics:    map[string]int64{},
		funders:   map[string]int64{},
		positions: map[int64]int{},
		orders:    map[int64]int{},
	}
}

// Article adds an article and returns its internal id. Options adjust the
// record before it is stored.
func (b *Builder) Article(pmcid, title string, opts ...func(*models.Article)) int64 {
	a := models.Article{ID: int64(len(b.snap.Articles) + 1), PMCID: pmcid, Title: title}
	for _, o := range opts {
		o(&a)
	}
	b.snap.Articles = append(b.snap.Articles, a)
	return a.ID
}

func Published(year, month, day int) func(*models.Article) {
	return func(a *models.Article) {
		d := models.NewDate(year, time.Month(month), day)
		a.PublicationDate = &d
	}
}

func WithDOI(doi string) func(*models.Article) {
	return func(a *models.Article) { a.DOI = doi }
}

func NASA() func(*models.Article) {
	return func(a *models.Article) { a.MentionsNASA = true }
}

func ISS() func(*models.Article) {
	return func(a *models.Article) { a.MentionsISS = true }
}

func Figures(n int) func(*models.Article) {
	return func(a *models.Article) { a.FigureCount = n }
}

func Cited(n int) func(*models.Article) {
	return func(a *models.Article) { a.Citations = n }
}

func (b *Builder) Section(articleID int64, sectionType, content string) {
	b.orders[articleID]++
	b.snap.Sections = append(b.snap.Sections, models.Section{
		ID:          int64(len(b.snap.Sections) + 1),
		ArticleID:   articleID,
		SectionType: sectionType,
		Content:     content,
		Order:       b.orders[articleID],
	})
}

// Keyword tags an article, creating the keyword on first use.
func (b *Builder) Keyword(articleID int64, keyword, category string, relevance float64) int64 {
	name := graph.CanonicalName(keyword)
	id, ok := b.keywords[name]
	if !ok {
		id = int64(len(b.snap.Keywords) + 1)
		b.keywords[name] = id
		b.snap.Keywords = append(b.snap.Keywords, models.Keyword{ID: id, Keyword: name, Category: category})
	}
	b.snap.ArticleKeywords = append(b.snap.ArticleKeywords, models.ArticleKeyword{
		ArticleID: articleID, KeywordID: id, Relevance: relevance, ExtractionMethod: "fixture",
	})
	return id
}

func (b *Builder) Author(articleID int64, fullName string) {
	id, ok := b.authors[fullName]
	if !ok {
		id = int64(len(b.snap.Authors) + 1)
		b.authors[fullName] = id
		b.snap.Authors = append(b.snap.Authors, models.Author{ID: id, FullName: fullName})
	}
	b.positions[articleID]++
	b.snap.ArticleAuthors = append(b.snap.ArticleAuthors, models.ArticleAuthor{ArticleID: articleID, AuthorID: id, Position: b.positions[articleID]})
}

func (b *Builder) Organism(articleID int64, scientific, common string) {
	id, ok := b.organisms[scientific]
	if !ok {
		id = int64(len(b.snap.Organisms) + 1)
		b.organisms[scientific] = id
		b.snap.Organisms = append(b.snap.Organisms, models.Organism{ID: id, ScientificName: scientific, CommonName: common})
	}
	b.snap.ArticleOrganisms = append(b.snap.ArticleOrganisms, models.ArticleLink{ArticleID: articleID, TargetID: id})
}

func (b *Builder) Topic(articleID int64, name string) {
	id, ok := b.topics[name]
	if !ok {
		id = int64(len(b.snap.Topics) + 1)
		b.topics[name] = id
		b.snap.Topics = append(b.snap.Topics, models.Topic{ID: id, Name: name})
	}
	b.snap.ArticleTopics = append(b.snap.ArticleTopics, models.ArticleLink{ArticleID: articleID, TargetID: id})
}

func (b *Builder) Funder(articleID int64, name, abbreviation string) {
	id, ok := b.funders[name]
	if !ok {
		id = int64(len(b.snap.Funders) + 1)
		b.funders[name] = id
		b.snap.Funders = append(b.snap.Funders, models.FundingSource{ID: id, Name: name, Abbreviation: abbreviation})
	}
	b.snap.ArticleFunders = append(b.snap.ArticleFunders, models.ArticleLink{ArticleID: articleID, TargetID: id})
}

func (b *Builder) Snapshot() Snapshot { return b.snap }

func (b *Builder) Build() (*Store, error) {
	s, err := New(b.snap)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}
	return s, nil
}
