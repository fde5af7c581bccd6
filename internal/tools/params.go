package tools

type SearchParams struct {
	Query    string   `json:"query" mcp:"Free-text query matched against article sections"`
	Sections []string `json:"sections,omitempty" mcp:"Restrict to section types such as abstract, methods, results"`
	Limit    int      `json:"limit,omitempty" mcp:"Maximum results (default 20, max 100)"`
}

type KeywordSearchParams struct {
	Keywords     []string `json:"keywords" mcp:"Exact keyword names to match (case and spacing insensitive)"`
	MinRelevance *float64 `json:"min_relevance,omitempty" mcp:"Minimum keyword relevance (default 0.5)"`
	Limit        int      `json:"limit,omitempty" mcp:"Maximum results"`
}

type FilterParams struct {
	NASARelated *bool    `json:"nasa_related,omitempty" mcp:"true for NASA-related articles only, false for the rest"`
	DateFrom    string   `json:"date_from,omitempty" mcp:"Earliest publication date, YYYY-MM-DD"`
	DateTo      string   `json:"date_to,omitempty" mcp:"Latest publication date, YYYY-MM-DD"`
	HasDOI      *bool    `json:"has_doi,omitempty" mcp:"Require (true) or exclude (false) a DOI"`
	Organisms   []string `json:"organisms,omitempty" mcp:"Organism names, scientific or common"`
	Limit       int      `json:"limit,omitempty" mcp:"Page size"`
	Offset      int      `json:"offset,omitempty" mcp:"Rows to skip"`
}

type ArticleParams struct {
	PMCID string `json:"pmcid" mcp:"External article id, e.g. PMC1234567"`
}

type RelatedParams struct {
	PMCID string `json:"pmcid" mcp:"Seed article id"`
	Limit int    `json:"limit,omitempty" mcp:"Maximum related articles"`
}

type KeywordNetworkParams struct {
	Limit int `json:"limit,omitempty" mcp:"Maximum edges"`
}

type AuthorNetworkParams struct {
	MinCollaborations int `json:"min_collaborations,omitempty" mcp:"Minimum shared articles per author pair"`
}

type QuickAnswerParams struct {
	Question string `json:"question" mcp:"Natural-language question about the corpus"`
}

type NoParams struct{}
