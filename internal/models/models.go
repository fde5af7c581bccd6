package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date that serialises as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Flag is a derived boolean article attribute.
type Flag string

const (
	FlagNASA Flag = "mentions_nasa"
	FlagISS  Flag = "mentions_iss"
)

type Article struct {
	ID              int64  `json:"id"`
	PMCID           string `json:"pmcid"`
	Title           string `json:"title"`
	PublicationDate *Date  `json:"publication_date"`
	Journal         string `json:"journal,omitempty"`
	DOI             string `json:"doi,omitempty"`
	Citations       int    `json:"citations"`
	MentionsNASA    bool   `json:"mentions_nasa"`
	MentionsISS     bool   `json:"mentions_iss"`
	FigureCount     int    `json:"figure_count"`
}

func (a Article) HasFlag(f Flag) bool {
	switch f {
	case FlagNASA:
		return a.MentionsNASA
	case FlagISS:
		return a.MentionsISS
	default:
		return false
	}
}

const (
	ImpactCritical = "Critical"
	ImpactHigh     = "High"
	ImpactMedium   = "Medium"
	ImpactLow      = "Low"
)

// ImpactLevels lists impact levels from highest to lowest.
var ImpactLevels = []string{ImpactCritical, ImpactHigh, ImpactMedium, ImpactLow}

// ImpactLevel ranks an article by mission relevance, then by figure count.
func (a Article) ImpactLevel() string {
	switch {
	case a.MentionsNASA && a.MentionsISS:
		return ImpactCritical
	case a.MentionsNASA:
		return ImpactHigh
	case a.FigureCount > 5:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

type Section struct {
	ID          int64  `json:"id"`
	ArticleID   int64  `json:"article_id"`
	SectionType string `json:"section_type"`
	Content     string `json:"content"`
	WordCount   int    `json:"word_count"`
	Order       int    `json:"section_order"`
}

type Keyword struct {
	ID       int64  `json:"id"`
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

type ArticleKeyword struct {
	ArticleID        int64   `json:"article_id"`
	KeywordID        int64   `json:"keyword_id"`
	Relevance        float64 `json:"relevance_score"`
	ExtractionMethod string  `json:"extraction_method,omitempty"`
}

type Author struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type ArticleAuthor struct {
	ArticleID int64 `json:"article_id"`
	AuthorID  int64 `json:"author_id"`
	Position  int   `json:"author_position"`
}

type Organism struct {
	ID             int64  `json:"id"`
	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name,omitempty"`
	OrganismType   string `json:"organism_type,omitempty"`
}

type Topic struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type FundingSource struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Country      string `json:"country,omitempty"`
}

// ArticleLink ties an article to a tagged vocabulary entry (organism, topic,
// funding source).
type ArticleLink struct {
	ArticleID int64 `json:"article_id"`
	TargetID  int64 `json:"target_id"`
}

// ArticleRelationship is stored with the lower article id first.
type ArticleRelationship struct {
	ArticleID1       int64   `json:"article_id_1"`
	ArticleID2       int64   `json:"article_id_2"`
	RelationshipType string  `json:"relationship_type,omitempty"`
	SimilarityScore  float64 `json:"similarity_score,omitempty"`
}

func NewArticleRelationship(a, b int64, kind string, score float64) ArticleRelationship {
	if b < a {
		a, b = b, a
	}
	return ArticleRelationship{ArticleID1: a, ArticleID2: b, RelationshipType: kind, SimilarityScore: score}
}
