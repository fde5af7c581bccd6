package engine

import "bioatlas/internal/models"

type AnswerType string

const (
	AnswerCount         AnswerType = "count"
	AnswerRecent        AnswerType = "recent_articles"
	AnswerAuthors       AnswerType = "author_info"
	AnswerOrganisms     AnswerType = "organism_info"
	AnswerComparison    AnswerType = "comparison"
	AnswerClarification AnswerType = "clarification_needed"
	AnswerSearch        AnswerType = "search_results"
)

// Answer is a quick-answer variant; AnswerType tags its JSON shape.
type Answer interface {
	Type() AnswerType
}

type CountAnswer struct {
	AnswerType  AnswerType `json:"answer_type"`
	Count       int        `json:"count"`
	Description string     `json:"description"`
	Percentage  *float64   `json:"percentage,omitempty"`
	Total       *int       `json:"total,omitempty"`
	Recent      *int       `json:"recent,omitempty"`
}

type RecentArticlesAnswer struct {
	AnswerType AnswerType       `json:"answer_type"`
	Count      int              `json:"count"`
	Articles   []models.Article `json:"articles"`
}

type AuthorInfoAnswer struct {
	AnswerType AnswerType           `json:"answer_type"`
	TopAuthors []models.AuthorCount `json:"top_authors"`
	Message    string               `json:"message"`
}

type OrganismInfoAnswer struct {
	AnswerType AnswerType             `json:"answer_type"`
	Organisms  []models.OrganismCount `json:"organisms"`
	Message    string                 `json:"message"`
}

type ComparisonAnswer struct {
	AnswerType AnswerType     `json:"answer_type"`
	Topics     []string       `json:"topics"`
	Results    map[string]int `json:"results"`
	Message    string         `json:"message"`
}

type ClarificationAnswer struct {
	AnswerType AnswerType `json:"answer_type"`
	Message    string     `json:"message"`
}

type SearchResultsAnswer struct {
	AnswerType AnswerType     `json:"answer_type"`
	Query      string         `json:"query"`
	Results    []SearchResult `json:"results"`
	Message    string         `json:"message"`
}

func (a CountAnswer) Type() AnswerType          { return a.AnswerType }
func (a RecentArticlesAnswer) Type() AnswerType { return a.AnswerType }
func (a AuthorInfoAnswer) Type() AnswerType     { return a.AnswerType }
func (a OrganismInfoAnswer) Type() AnswerType   { return a.AnswerType }
func (a ComparisonAnswer) Type() AnswerType     { return a.AnswerType }
func (a ClarificationAnswer) Type() AnswerType  { return a.AnswerType }
func (a SearchResultsAnswer) Type() AnswerType  { return a.AnswerType }
