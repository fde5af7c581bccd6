package engine

import "time"

// Thresholds holds the heuristic constants used by the analytic operations.
type Thresholds struct {
	KeywordNetworkCategories []string
	KeywordNetworkMinCount   int
	KeywordNetworkEdges      int

	AuthorNetworkMinCount int
	AuthorNetworkEdges    int

	ConceptCategories []string
	ConceptMinCount   int
	ConceptEdges      int

	ClusterCategories    []string
	ClusterMinArticles   int
	ClusterRelatedTopics int
	ClusterMax           int

	GapCategories    []string
	// GapMaxArticles is exclusive.
	GapMaxArticles   int
	GapCriticalBelow int
	GapHighBelow     int
	GapBaseline      int
	GapMax           int

	InsightMax            int
	InsightGapCategories  []string
	InsightGapMaxArticles int
	InsightGapListed      int
	EmergingCategories    []string
	RecentWindow          time.Duration
	CollaborationRatio    float64
	CompletenessTarget    float64
	OrganismDiversityMin  int

	SnippetMinWords int
	SnippetMaxWords int

	AnswerSearchLimit   int
	CompareSearchLimit  int
	AnswerRecentLimit   int
	AnswerAuthorsLimit  int
	AnswerOrganismLimit int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		KeywordNetworkCategories: []string{"biological_system", "experiment_type", "organism"},
		KeywordNetworkMinCount:   3,
		KeywordNetworkEdges:      50,

		AuthorNetworkMinCount: 2,
		AuthorNetworkEdges:    100,

		ConceptCategories: []string{"biological_system", "experiment_type"},
		ConceptMinCount:   5,
		ConceptEdges:      15,

		ClusterCategories:    []string{"biological_system", "experiment_type", "organism"},
		ClusterMinArticles:   5,
		ClusterRelatedTopics: 5,
		ClusterMax:           10,

		GapCategories:    []string{"biological_system", "experiment_type"},
		GapMaxArticles:   10,
		GapCriticalBelow: 3,
		GapHighBelow:     6,
		GapBaseline:      50,
		GapMax:           15,

		InsightMax:            4,
		InsightGapCategories:  []string{"biological_system", "experiment_type"},
		InsightGapMaxArticles: 5,
		InsightGapListed:      3,
		EmergingCategories:    []string{"biological_system", "topic"},
		RecentWindow:          730 * 24 * time.Hour,
		CollaborationRatio:    1.5,
		CompletenessTarget:    0.8,
		OrganismDiversityMin:  10,

		SnippetMinWords: 25,
		SnippetMaxWords: 50,

		AnswerSearchLimit:   5,
		CompareSearchLimit:  3,
		AnswerRecentLimit:   5,
		AnswerAuthorsLimit:  10,
		AnswerOrganismLimit: 10,
	}
}
