package engine

import (
	"time"

	"bioatlas/internal/models"
)

type SearchResult struct {
	ArticleID       int64        `json:"article_id"`
	PMCID           string       `json:"pmcid"`
	Title           string       `json:"title"`
	PublicationDate *models.Date `json:"publication_date"`
	Journal         string       `json:"journal,omitempty"`
	DOI             string       `json:"doi,omitempty"`
	SectionType     string       `json:"section_type"`
	Score           float64      `json:"score"`
	Snippet         string       `json:"snippet"`
	Keywords        []string     `json:"keywords"`
}

type KeywordResult struct {
	ArticleID       int64        `json:"article_id"`
	PMCID           string       `json:"pmcid"`
	Title           string       `json:"title"`
	PublicationDate *models.Date `json:"publication_date"`
	AvgRelevance    float64      `json:"avg_relevance"`
	MatchedKeywords []string     `json:"matched_keywords"`
}

type FilteredPage struct {
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
	Articles []models.Article `json:"articles"`
}

type RelatedResult struct {
	ArticleID       int64        `json:"article_id"`
	PMCID           string       `json:"pmcid"`
	Title           string       `json:"title"`
	PublicationDate *models.Date `json:"publication_date"`
	SharedKeywords  int          `json:"shared_keywords"`
	AvgRelevance    float64      `json:"avg_relevance"`
}

type ConceptRelationship struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Strength int    `json:"strength"`
	Type     string `json:"type"`
}

type Cluster struct {
	Name          string   `json:"name"`
	Keyword       string   `json:"keyword"`
	Category      string   `json:"category"`
	ArticleCount  int      `json:"article_count"`
	RelatedTopics []string `json:"related_topics"`
}

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
)

type Gap struct {
	Area             string   `json:"area"`
	Category         string   `json:"category"`
	PublicationCount int      `json:"publication_count"`
	Severity         Severity `json:"severity"`
	Progress         int      `json:"progress"`
}

type Growth struct {
	FromYear int     `json:"from_year"`
	ToYear   int     `json:"to_year"`
	Diff     int     `json:"growth"`
	Percent  float64 `json:"growth_pct"`
}

type Timeline struct {
	Years  []models.YearCount `json:"years"`
	Growth *Growth            `json:"growth"`
}

type Insight struct {
	Rule     string `json:"rule"`
	Priority int    `json:"priority"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type Overview struct {
	TotalPublications   int     `json:"total_publications"`
	PublicationsWithDOI int     `json:"publications_with_doi"`
	DOICoveragePercent  float64 `json:"doi_coverage_percent"`
	TotalAuthors        int     `json:"total_authors"`
	TotalKeywords       int     `json:"total_keywords"`
	NASARelatedCount    int     `json:"nasa_related_count"`
	NASARelatedPercent  float64 `json:"nasa_related_percent"`
	RecentPublications  int     `json:"recent_publications"`
	YearsOfPublication  int     `json:"years_of_publication"`
}

type ResearchArea struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MethodologyCount is the number of articles reporting a section type.
type MethodologyCount struct {
	SectionType  string `json:"section_type"`
	Label        string `json:"label"`
	ArticleCount int    `json:"article_count"`
}

// AnalyticsBreakdown bundles the chart series of the analytics dashboard.
type AnalyticsBreakdown struct {
	Timeline      Timeline             `json:"timeline"`
	Impact        []models.LabelCount  `json:"impact"`
	ResearchAreas []ResearchArea       `json:"research_areas"`
	Methodology   []MethodologyCount   `json:"methodology"`
	TopCited      []models.Article     `json:"top_cited"`
	TopFunders    []models.FunderCount `json:"top_funders"`
	Topics        []models.TopicCount  `json:"topics"`
}

type SummaryReport struct {
	GeneratedAt        time.Time              `json:"generated_at"`
	Overview           Overview               `json:"overview"`
	TopResearchAreas   []ResearchArea         `json:"top_research_areas"`
	KnowledgeGaps      []Gap                  `json:"knowledge_gaps"`
	LeadingResearchers []models.AuthorCount   `json:"leading_researchers"`
	ModelOrganisms     []models.OrganismCount `json:"model_organisms"`
	Insights           []Insight              `json:"insights"`
}
