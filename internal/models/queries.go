package models

import "time"

// Query and row types shared by the engine and its store implementations.

type FullTextQuery struct {
	Text         string
	SectionTypes []string
	Limit        int
}

type SectionHit struct {
	Article     Article
	SectionID   int64
	SectionType string
	Content     string
	Score       float64
}

type KeywordHitQuery struct {
	KeywordIDs []int64
	// MinRelevance is ignored when nil.
	MinRelevance *float64
}

type KeywordHit struct {
	Article   Article
	KeywordID int64
	Keyword   string
	Relevance float64
}

type FilterPredicates struct {
	NASARelated *bool    `json:"nasa_related,omitempty"`
	DateFrom    *Date    `json:"date_from,omitempty"`
	DateTo      *Date    `json:"date_to,omitempty"`
	HasDOI      *bool    `json:"has_doi,omitempty"`
	Organisms   []string `json:"organisms,omitempty"`
}

type EntityKind string

const (
	EntityKeyword EntityKind = "keyword"
	EntityAuthor  EntityKind = "author"
)

type PairQuery struct {
	Entity     EntityKind
	Categories []string
	MinCount   int
	Limit      int
}

type SortOrder int

const (
	Descending SortOrder = iota
	Ascending
)

// KeywordStatsQuery groups keyword links by keyword with article-count bounds.
// MaxArticles and Limit are ignored when zero; Flag and Since when empty.
type KeywordStatsQuery struct {
	Categories  []string
	Flag        Flag
	Since       *time.Time
	MinArticles int
	MaxArticles int
	Order       SortOrder
	Limit       int
}

type KeywordCount struct {
	ID           int64  `json:"id"`
	Keyword      string `json:"keyword"`
	Category     string `json:"category"`
	ArticleCount int    `json:"article_count"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type CorpusStats struct {
	TotalArticles     int `json:"total_articles"`
	WithDOI           int `json:"with_doi"`
	WithDate          int `json:"with_date"`
	TotalAuthors      int `json:"total_authors"`
	TotalKeywords     int `json:"total_keywords"`
	NASARelated       int `json:"nasa_related"`
	Recent            int `json:"recent"`
	DistinctOrganisms int `json:"distinct_organisms"`
	PublicationYears  int `json:"publication_years"`
}

type CollaborationStats struct {
	UniqueAuthors int `json:"unique_authors"`
	Articles      int `json:"articles"`
}

type AuthorCount struct {
	Name         string `json:"name"`
	ArticleCount int    `json:"article_count"`
}

type OrganismCount struct {
	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name,omitempty"`
	OrganismType   string `json:"organism_type,omitempty"`
	StudyCount     int    `json:"study_count"`
}

type FunderCount struct {
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation,omitempty"`
	Country          string `json:"country,omitempty"`
	PublicationCount int    `json:"publication_count"`
}

type TopicCount struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// LabelCount is one bar of a labelled distribution.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type ArticleKeywordDetail struct {
	Keyword   string  `json:"keyword"`
	Category  string  `json:"category"`
	Relevance float64 `json:"relevance_score"`
}

type ArticleDetail struct {
	Article   Article                `json:"article"`
	Authors   []string               `json:"authors"`
	Sections  []Section              `json:"sections"`
	Keywords  []ArticleKeywordDetail `json:"keywords"`
	Organisms []Organism             `json:"organisms"`
	Topics    []string               `json:"topics"`
	Funders   []string               `json:"funders"`
}
