package engine

import (
	"context"
	"fmt"
	"strings"
)

type Intent string

const (
	IntentCount      Intent = "count"
	IntentRecent     Intent = "recent"
	IntentAuthor     Intent = "author"
	IntentOrganism   Intent = "organism"
	IntentComparison Intent = "comparison"
	IntentSearch     Intent = "search"
)

// Checked in order; first match wins.
var intentVocabulary = []struct {
	intent Intent
	words  []string
}{
	{IntentCount, []string{"how many", "count", "total", "number of"}},
	{IntentRecent, []string{"latest", "recent", "new", "newest"}},
	{IntentAuthor, []string{"author", "researcher", "scientist", "who wrote", "who studied"}},
	{IntentOrganism, []string{"organism", "species", "animal", "plant"}},
	{IntentComparison, []string{"compare", "versus", "vs"}},
}

var comparisonTriggers = map[string]struct{}{
	"compare": {}, "versus": {}, "vs": {}, "and": {},
}

// Classify maps a question to an intent by substring vocabulary match.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	for _, v := range intentVocabulary {
		for _, w := range v.words {
			if strings.Contains(q, w) {
				return v.intent
			}
		}
	}
	return IntentSearch
}

// ComparisonTopics returns the distinct words adjacent to compare, versus,
// vs or and, in question order.
func ComparisonTopics(question string) []string {
	words := strings.Fields(strings.ToLower(question))
	for i := range words {
		words[i] = strings.Trim(words[i], ",.;:!?()[]{}\"'`")
	}
	seen := map[string]struct{}{}
	topics := make([]string, 0, 2)
	add := func(w string) {
		if w == "" {
			return
		}
		if _, trigger := comparisonTriggers[w]; trigger {
			return
		}
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		topics = append(topics, w)
	}
	for i, w := range words {
		if _, ok := comparisonTriggers[w]; !ok {
			continue
		}
		if i > 0 {
			add(words[i-1])
		}
		if i < len(words)-1 {
			add(words[i+1])
		}
	}
	return topics
}

// QuickAnswer classifies the question and answers it with the matching operation.
func (e *Engine) QuickAnswer(ctx context.Context, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, invalidf("question is required")
	}
	switch Classify(question) {
	case IntentCount:
		return e.countAnswer(ctx, strings.ToLower(question))
	case IntentRecent:
		arts, err := e.store.RecentArticles(ctx, e.th.AnswerRecentLimit)
		if err != nil {
			return nil, fmt.Errorf("recent articles: %w", err)
		}
		return RecentArticlesAnswer{AnswerType: AnswerRecent, Count: len(arts), Articles: arts}, nil
	case IntentAuthor:
		authors, err := e.store.TopAuthors(ctx, e.th.AnswerAuthorsLimit)
		if err != nil {
			return nil, fmt.Errorf("top authors: %w", err)
		}
		return AuthorInfoAnswer{AnswerType: AnswerAuthors, TopAuthors: authors, Message: "Most prolific authors in the database"}, nil
	case IntentOrganism:
		orgs, err := e.store.TopOrganisms(ctx, e.th.AnswerOrganismLimit)
		if err != nil {
			return nil, fmt.Errorf("top organisms: %w", err)
		}
		return OrganismInfoAnswer{AnswerType: AnswerOrganisms, Organisms: orgs, Message: "Most studied organisms in the corpus"}, nil
	case IntentComparison:
		return e.comparisonAnswer(ctx, question)
	default:
		results, err := e.Search(ctx, question, nil, e.th.AnswerSearchLimit)
		if err != nil {
			return nil, err
		}
		return SearchResultsAnswer{
			AnswerType: AnswerSearch,
			Query:      question,
			Results:    results,
			Message:    fmt.Sprintf("Found %d articles related to your question", len(results)),
		}, nil
	}
}

func (e *Engine) countAnswer(ctx context.Context, q string) (Answer, error) {
	ov, err := e.Overview(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.Contains(q, "nasa"):
		pct, total := ov.NASARelatedPercent, ov.TotalPublications
		return CountAnswer{
			AnswerType:  AnswerCount,
			Count:       ov.NASARelatedCount,
			Description: "NASA-related publications in database",
			Percentage:  &pct,
			Total:       &total,
		}, nil
	case strings.Contains(q, "author"):
		return CountAnswer{AnswerType: AnswerCount, Count: ov.TotalAuthors, Description: "Unique authors in database"}, nil
	case strings.Contains(q, "keyword"), strings.Contains(q, "topic"):
		return CountAnswer{AnswerType: AnswerCount, Count: ov.TotalKeywords, Description: "Unique keywords/topics identified"}, nil
	default:
		recent := ov.RecentPublications
		return CountAnswer{AnswerType: AnswerCount, Count: ov.TotalPublications, Description: "Total publications in database", Recent: &recent}, nil
	}
}

func (e *Engine) comparisonAnswer(ctx context.Context, question string) (Answer, error) {
	topics := ComparisonTopics(question)
	if len(topics) < 2 {
		return ClarificationAnswer{AnswerType: AnswerClarification, Message: "Please specify the two topics you want to compare"}, nil
	}
	topics = topics[:2]
	results := make(map[string]int, len(topics))
	for _, t := range topics {
		hits, err := e.Search(ctx, t, nil, e.th.CompareSearchLimit)
		if err != nil {
			return nil, err
		}
		results[t] = len(hits)
	}
	return ComparisonAnswer{AnswerType: AnswerComparison, Topics: topics, Results: results, Message: "Comparison of research coverage"}, nil
}

// Suggestions proposes follow-up questions for a user query.
func (e *Engine) Suggestions(question string) []string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "bone"):
		return []string{
			"What organisms were studied for bone research?",
			"Show me recent bone loss publications",
			"How is bone research related to microgravity?",
		}
	case strings.Contains(q, "radiation"):
		return []string{
			"What are the health effects of space radiation?",
			"Show me radiation countermeasure research",
			"Compare radiation studies with other health research",
		}
	case strings.Contains(q, "plant"):
		return []string{
			"What plants have been studied in space?",
			"Show me recent space agriculture research",
			"How does microgravity affect plant growth?",
		}
	default:
		return []string{
			"What are the main research areas?",
			"Show me NASA-related publications",
			"What are the knowledge gaps in space biology?",
		}
	}
}
