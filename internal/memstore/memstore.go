// Package memstore serves an immutable corpus snapshot from memory. It
// satisfies engine.Store and is safe for concurrent readers.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"bioatlas/internal/engine"
	"bioatlas/internal/graph"
	"bioatlas/internal/models"
	"bioatlas/internal/util"
)

// Snapshot is the on-disk JSON form of a corpus.
type Snapshot struct {
	Articles         []models.Article             `json:"articles"`
	Sections         []models.Section             `json:"sections"`
	Keywords         []models.Keyword             `json:"keywords"`
	ArticleKeywords  []models.ArticleKeyword      `json:"article_keywords"`
	Authors          []models.Author              `json:"authors"`
	ArticleAuthors   []models.ArticleAuthor       `json:"article_authors"`
	Organisms        []models.Organism            `json:"organisms"`
	ArticleOrganisms []models.ArticleLink         `json:"article_organisms"`
	Topics           []models.Topic               `json:"topics"`
	ArticleTopics    []models.ArticleLink         `json:"article_topics"`
	Funders          []models.FundingSource       `json:"funding_sources"`
	ArticleFunders   []models.ArticleLink         `json:"article_funding"`
	Relationships    []models.ArticleRelationship `json:"article_relationships"`
}

var _ engine.Store = (*Store)(nil)

type Store struct {
	snap       Snapshot
	articles   map[int64]models.Article
	byPMCID    map[string]int64
	keywords   map[int64]models.Keyword
	byKeyword  map[string]int64
	authors    map[int64]models.Author
	organisms  map[int64]models.Organism
	topics     map[int64]models.Topic
	funders    map[int64]models.FundingSource
	articleIDs []int64
}

// Load reads a JSON snapshot from path.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return New(snap)
}

// New indexes snap. External ids and keyword names must be unique.
func New(snap Snapshot) (*Store, error) {
	s := &Store{
		snap:      snap,
		articles:  make(map[int64]models.Article, len(snap.Articles)),
		byPMCID:   make(map[string]int64, len(snap.Articles)),
		keywords:  make(map[int64]models.Keyword, len(snap.Keywords)),
		byKeyword: make(map[string]int64, len(snap.Keywords)),
		authors:   make(map[int64]models.Author, len(snap.Authors)),
		organisms: make(map[int64]models.Organism, len(snap.Organisms)),
		topics:    make(map[int64]models.Topic, len(snap.Topics)),
		funders:   make(map[int64]models.FundingSource, len(snap.Funders)),
	}
	for _, a := range snap.Articles {
		if _, dup := s.byPMCID[a.PMCID]; dup {
			return nil, fmt.Errorf("duplicate article id %q", a.PMCID)
		}
		s.articles[a.ID] = a
		s.byPMCID[a.PMCID] = a.ID
		s.articleIDs = append(s.articleIDs, a.ID)
	}
	sort.Slice(s.articleIDs, func(i, j int) bool { return s.articleIDs[i] < s.articleIDs[j] })
	for _, k := range snap.Keywords {
		name := graph.CanonicalName(k.Keyword)
		if _, dup := s.byKeyword[name]; dup {
			return nil, fmt.Errorf("duplicate keyword %q", k.Keyword)
		}
		s.keywords[k.ID] = k
		s.byKeyword[name] = k.ID
	}
	for _, a := range snap.Authors {
		s.authors[a.ID] = a
	}
	for _, o := range snap.Organisms {
		s.organisms[o.ID] = o
	}
	for _, t := range snap.Topics {
		s.topics[t.ID] = t
	}
	for _, f := range snap.Funders {
		s.funders[f.ID] = f
	}

	sort.SliceStable(s.snap.ArticleKeywords, func(i, j int) bool {
		a, b := s.snap.ArticleKeywords[i], s.snap.ArticleKeywords[j]
		if a.ArticleID != b.ArticleID {
			return a.ArticleID < b.ArticleID
		}
		return s.keywords[a.KeywordID].Keyword < s.keywords[b.KeywordID].Keyword
	})
	sort.SliceStable(s.snap.Sections, func(i, j int) bool {
		a, b := s.snap.Sections[i], s.snap.Sections[j]
		if a.ArticleID != b.ArticleID {
			return a.ArticleID < b.ArticleID
		}
		return a.Order < b.Order
	})
	return s, nil
}

func (s *Store) FindArticle(_ context.Context, pmcid string) (*models.Article, error) {
	id, ok := s.byPMCID[strings.TrimSpace(pmcid)]
	if !ok {
		return nil, nil
	}
	a := s.articles[id]
	return &a, nil
}

// FullTextQuery requires every meaningful query term to prefix-match a word of
// the section. The score is matched occurrences per section word.
func (s *Store) FullTextQuery(ctx context.Context, q models.FullTextQuery) ([]models.SectionHit, error) {
	terms := util.MeaningfulTerms(q.Text)
	if len(terms) == 0 {
		return []models.SectionHit{}, nil
	}
	allowed := toSet(q.SectionTypes)
	best := map[int64]int{}
	hits := make([]models.SectionHit, 0)
	for _, sec := range s.snap.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(allowed) > 0 {
			if _, ok := allowed[sec.SectionType]; !ok {
				continue
			}
		}
		score, ok := termScore(sec.Content, terms)
		if !ok {
			continue
		}
		art, ok := s.articles[sec.ArticleID]
		if !ok {
			continue
		}
		h := models.SectionHit{Article: art, SectionID: sec.ID, SectionType: sec.SectionType, Content: sec.Content, Score: score}
		if i, seen := best[art.ID]; seen {
			if score > hits[i].Score {
				hits[i] = h
			}
			continue
		}
		best[art.ID] = len(hits)
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Article.ID < hits[j].Article.ID
	})
	if q.Limit > 0 && len(hits) > q.Limit {
		hits = hits[:q.Limit]
	}
	return hits, nil
}

func termScore(content string, terms []string) (float64, bool) {
	words := strings.Fields(strings.ToLower(util.CleanText(content)))
	if len(words) == 0 {
		return 0, false
	}
	total := 0
	for _, t := range terms {
		n := 0
		for _, w := range words {
			if strings.HasPrefix(strings.Trim(w, ",.;:!?()[]{}\"'`"), t) {
				n++
			}
		}
		if n == 0 {
			return 0, false
		}
		total += n
	}
	return math.Round(float64(total)/float64(len(words))*1e6) / 1e6, true
}

func (s *Store) KeywordsForArticles(_ context.Context, ids []int64) (map[int64][]string, error) {
	want := toIDSet(ids)
	out := make(map[int64][]string, len(ids))
	for _, ak := range s.snap.ArticleKeywords {
		if _, ok := want[ak.ArticleID]; !ok {
			continue
		}
		if k, ok := s.keywords[ak.KeywordID]; ok {
			out[ak.ArticleID] = append(out[ak.ArticleID], k.Keyword)
		}
	}
	return out, nil
}

func (s *Store) KeywordLookup(_ context.Context, names []string) ([]models.Keyword, error) {
	out := make([]models.Keyword, 0, len(names))
	for _, n := range graph.CanonicalNames(names) {
		if id, ok := s.byKeyword[n]; ok {
			out = append(out, s.keywords[id])
		}
	}
	return out, nil
}

func (s *Store) ArticlesForKeywords(_ context.Context, q models.KeywordHitQuery) ([]models.KeywordHit, error) {
	want := toIDSet(q.KeywordIDs)
	out := make([]models.KeywordHit, 0)
	for _, ak := range s.snap.ArticleKeywords {
		if _, ok := want[ak.KeywordID]; !ok {
			continue
		}
		if q.MinRelevance != nil && ak.Relevance < *q.MinRelevance {
			continue
		}
		art, ok := s.articles[ak.ArticleID]
		if !ok {
			continue
		}
		out = append(out, models.KeywordHit{Article: art, KeywordID: ak.KeywordID, Keyword: s.keywords[ak.KeywordID].Keyword, Relevance: ak.Relevance})
	}
	return out, nil
}

func (s *Store) ArticleKeywordIDs(_ context.Context, articleID int64) ([]int64, error) {
	out := make([]int64, 0)
	for _, ak := range s.snap.ArticleKeywords {
		if ak.ArticleID == articleID {
			out = append(out, ak.KeywordID)
		}
	}
	return out, nil
}

func (s *Store) FilterArticles(_ context.Context, p models.FilterPredicates, limit, offset int) (int, []models.Article, error) {
	orgs := map[int64]struct{}{}
	if len(p.Organisms) > 0 {
		names := make(map[string]struct{}, len(p.Organisms))
		for _, n := range p.Organisms {
			names[strings.ToLower(n)] = struct{}{}
		}
		for _, l := range s.snap.ArticleOrganisms {
			o, ok := s.organisms[l.TargetID]
			if !ok {
				continue
			}
			_, sci := names[strings.ToLower(o.ScientificName)]
			_, common := names[strings.ToLower(o.CommonName)]
			if sci || (common && o.CommonName != "") {
				orgs[l.ArticleID] = struct{}{}
			}
		}
	}
	matched := make([]models.Article, 0)
	for _, id := range s.articleIDs {
		a := s.articles[id]
		if p.NASARelated != nil && a.MentionsNASA != *p.NASARelated {
			continue
		}
		if p.HasDOI != nil && (a.DOI != "") != *p.HasDOI {
			continue
		}
		if p.DateFrom != nil || p.DateTo != nil {
			if a.PublicationDate == nil {
				continue
			}
			if p.DateFrom != nil && a.PublicationDate.Before(p.DateFrom.Time) {
				continue
			}
			if p.DateTo != nil && a.PublicationDate.After(p.DateTo.Time) {
				continue
			}
		}
		if len(p.Organisms) > 0 {
			if _, ok := orgs[id]; !ok {
				continue
			}
		}
		matched = append(matched, a)
	}
	total := len(matched)
	if offset >= total {
		return total, []models.Article{}, nil
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return total, matched[offset:end], nil
}

func (s *Store) CoOccurrencePairs(_ context.Context, q models.PairQuery) ([]graph.Pair, error) {
	var links []graph.Link
	categories := q.Categories
	switch q.Entity {
	case models.EntityKeyword:
		links = make([]graph.Link, 0, len(s.snap.ArticleKeywords))
		for _, ak := range s.snap.ArticleKeywords {
			k := s.keywords[ak.KeywordID]
			links = append(links, graph.Link{ArticleID: ak.ArticleID, Entity: graph.Entity{ID: k.ID, Label: k.Keyword, Category: k.Category}})
		}
	case models.EntityAuthor:
		categories = nil
		links = make([]graph.Link, 0, len(s.snap.ArticleAuthors))
		for _, aa := range s.snap.ArticleAuthors {
			a := s.authors[aa.AuthorID]
			links = append(links, graph.Link{ArticleID: aa.ArticleID, Entity: graph.Entity{ID: a.ID, Label: a.FullName}})
		}
	default:
		return nil, fmt.Errorf("%w: unknown entity kind %q", util.ErrInvalidArgument, q.Entity)
	}
	pairs := graph.CountPairs(links, categories, q.MinCount)
	if q.Limit > 0 && len(pairs) > q.Limit {
		pairs = pairs[:q.Limit]
	}
	return pairs, nil
}

func (s *Store) KeywordStats(_ context.Context, q models.KeywordStatsQuery) ([]models.KeywordCount, error) {
	cats := toSet(q.Categories)
	perKeyword := map[int64]map[int64]struct{}{}
	for _, ak := range s.snap.ArticleKeywords {
		k, ok := s.keywords[ak.KeywordID]
		if !ok {
			continue
		}
		if len(cats) > 0 {
			if _, ok := cats[k.Category]; !ok {
				continue
			}
		}
		a := s.articles[ak.ArticleID]
		if q.Flag != "" && !a.HasFlag(q.Flag) {
			continue
		}
		if q.Since != nil && (a.PublicationDate == nil || a.PublicationDate.Before(*q.Since)) {
			continue
		}
		set, ok := perKeyword[k.ID]
		if !ok {
			set = map[int64]struct{}{}
			perKeyword[k.ID] = set
		}
		set[ak.ArticleID] = struct{}{}
	}
	out := make([]models.KeywordCount, 0, len(perKeyword))
	for id, set := range perKeyword {
		n := len(set)
		if n < q.MinArticles || (q.MaxArticles > 0 && n >= q.MaxArticles) {
			continue
		}
		k := s.keywords[id]
		out = append(out, models.KeywordCount{ID: id, Keyword: k.Keyword, Category: k.Category, ArticleCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ArticleCount != out[j].ArticleCount {
			if q.Order == models.Ascending {
				return out[i].ArticleCount < out[j].ArticleCount
			}
			return out[i].ArticleCount > out[j].ArticleCount
		}
		return out[i].Keyword < out[j].Keyword
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *Store) RelatedKeywords(_ context.Context, keywordID int64, limit int) ([]string, error) {
	arts := map[int64]struct{}{}
	for _, ak := range s.snap.ArticleKeywords {
		if ak.KeywordID == keywordID {
			arts[ak.ArticleID] = struct{}{}
		}
	}
	names := map[string]struct{}{}
	for _, ak := range s.snap.ArticleKeywords {
		if ak.KeywordID == keywordID {
			continue
		}
		if _, ok := arts[ak.ArticleID]; ok {
			names[s.keywords[ak.KeywordID].Keyword] = struct{}{}
		}
	}
	out := sortedKeys(names)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) Timeline(_ context.Context) ([]models.YearCount, error) {
	counts := map[int]int{}
	for _, a := range s.articles {
		if a.PublicationDate != nil {
			counts[a.PublicationDate.Year()]++
		}
	}
	out := make([]models.YearCount, 0, len(counts))
	for y, c := range counts {
		out = append(out, models.YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (s *Store) CorpusStats(_ context.Context, recentSince time.Time) (models.CorpusStats, error) {
	st := models.CorpusStats{
		TotalArticles: len(s.articles),
		TotalAuthors:  len(s.authors),
		TotalKeywords: len(s.keywords),
	}
	years := map[int]struct{}{}
	for _, a := range s.articles {
		if a.DOI != "" {
			st.WithDOI++
		}
		if a.MentionsNASA {
			st.NASARelated++
		}
		if a.PublicationDate != nil {
			st.WithDate++
			years[a.PublicationDate.Year()] = struct{}{}
			if !a.PublicationDate.Before(recentSince) {
				st.Recent++
			}
		}
	}
	st.PublicationYears = len(years)
	orgs := map[int64]struct{}{}
	for _, l := range s.snap.ArticleOrganisms {
		orgs[l.TargetID] = struct{}{}
	}
	st.DistinctOrganisms = len(orgs)
	return st, nil
}

func (s *Store) CollaborationStats(_ context.Context, flag models.Flag) (models.CollaborationStats, error) {
	authors := map[int64]struct{}{}
	arts := map[int64]struct{}{}
	for _, aa := range s.snap.ArticleAuthors {
		if !s.articles[aa.ArticleID].HasFlag(flag) {
			continue
		}
		authors[aa.AuthorID] = struct{}{}
		arts[aa.ArticleID] = struct{}{}
	}
	return models.CollaborationStats{UniqueAuthors: len(authors), Articles: len(arts)}, nil
}

func (s *Store) RecentArticles(_ context.Context, limit int) ([]models.Article, error) {
	out := make([]models.Article, 0)
	for _, id := range s.articleIDs {
		if a := s.articles[id]; a.PublicationDate != nil {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublicationDate.After(out[j].PublicationDate.Time) })
	return capSlice(out, limit), nil
}

func (s *Store) TopAuthors(_ context.Context, limit int) ([]models.AuthorCount, error) {
	counts := map[int64]map[int64]struct{}{}
	for _, aa := range s.snap.ArticleAuthors {
		addPair(counts, aa.AuthorID, aa.ArticleID)
	}
	out := make([]models.AuthorCount, 0, len(counts))
	for id, set := range counts {
		out = append(out, models.AuthorCount{Name: s.authors[id].FullName, ArticleCount: len(set)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ArticleCount != out[j].ArticleCount {
			return out[i].ArticleCount > out[j].ArticleCount
		}
		return out[i].Name < out[j].Name
	})
	return capSlice(out, limit), nil
}

func (s *Store) TopOrganisms(_ context.Context, limit int) ([]models.OrganismCount, error) {
	counts := linkCounts(s.snap.ArticleOrganisms)
	out := make([]models.OrganismCount, 0, len(counts))
	for id, n := range counts {
		o := s.organisms[id]
		out = append(out, models.OrganismCount{ScientificName: o.ScientificName, CommonName: o.CommonName, OrganismType: o.OrganismType, StudyCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudyCount != out[j].StudyCount {
			return out[i].StudyCount > out[j].StudyCount
		}
		return out[i].ScientificName < out[j].ScientificName
	})
	return capSlice(out, limit), nil
}

func (s *Store) TopCited(_ context.Context, limit int) ([]models.Article, error) {
	out := make([]models.Article, 0)
	for _, id := range s.articleIDs {
		if a := s.articles[id]; a.Citations > 0 {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Citations > out[j].Citations })
	return capSlice(out, limit), nil
}

func (s *Store) TopFunders(_ context.Context, limit int) ([]models.FunderCount, error) {
	counts := linkCounts(s.snap.ArticleFunders)
	out := make([]models.FunderCount, 0, len(counts))
	for id, n := range counts {
		f := s.funders[id]
		out = append(out, models.FunderCount{Name: f.Name, Abbreviation: f.Abbreviation, Country: f.Country, PublicationCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublicationCount != out[j].PublicationCount {
			return out[i].PublicationCount > out[j].PublicationCount
		}
		return out[i].Name < out[j].Name
	})
	return capSlice(out, limit), nil
}

func (s *Store) TopicDistribution(_ context.Context, limit int) ([]models.TopicCount, error) {
	counts := linkCounts(s.snap.ArticleTopics)
	out := make([]models.TopicCount, 0, len(counts))
	for id, n := range counts {
		t := s.topics[id]
		out = append(out, models.TopicCount{Name: t.Name, Description: t.Description, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return capSlice(out, limit), nil
}

func (s *Store) KeywordCategoryCounts(_ context.Context) ([]models.CategoryCount, error) {
	counts := map[string]int{}
	for _, k := range s.keywords {
		cat := k.Category
		if cat == "" {
			cat = "uncategorized"
		}
		counts[cat]++
	}
	out := make([]models.CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, models.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (s *Store) ImpactCounts(_ context.Context) ([]models.LabelCount, error) {
	counts := map[string]int{}
	for _, a := range s.articles {
		counts[a.ImpactLevel()]++
	}
	out := make([]models.LabelCount, 0, len(counts))
	for _, level := range models.ImpactLevels {
		if n := counts[level]; n > 0 {
			out = append(out, models.LabelCount{Label: level, Count: n})
		}
	}
	return out, nil
}

func (s *Store) SectionCoverage(_ context.Context, sectionTypes []string) ([]models.LabelCount, error) {
	want := toSet(sectionTypes)
	seen := map[string]map[int64]struct{}{}
	for _, sec := range s.snap.Sections {
		if _, ok := want[sec.SectionType]; !ok {
			continue
		}
		if seen[sec.SectionType] == nil {
			seen[sec.SectionType] = map[int64]struct{}{}
		}
		seen[sec.SectionType][sec.ArticleID] = struct{}{}
	}
	out := make([]models.LabelCount, 0, len(seen))
	for t, ids := range seen {
		out = append(out, models.LabelCount{Label: t, Count: len(ids)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out, nil
}

func (s *Store) ArticleDetail(_ context.Context, articleID int64) (*models.ArticleDetail, error) {
	a, ok := s.articles[articleID]
	if !ok {
		return nil, nil
	}
	d := &models.ArticleDetail{
		Article:   a,
		Authors:   make([]string, 0),
		Sections:  make([]models.Section, 0),
		Keywords:  make([]models.ArticleKeywordDetail, 0),
		Organisms: make([]models.Organism, 0),
		Topics:    make([]string, 0),
		Funders:   make([]string, 0),
	}
	authors := make([]models.ArticleAuthor, 0)
	for _, aa := range s.snap.ArticleAuthors {
		if aa.ArticleID == articleID {
			authors = append(authors, aa)
		}
	}
	sort.SliceStable(authors, func(i, j int) bool { return authors[i].Position < authors[j].Position })
	for _, aa := range authors {
		d.Authors = append(d.Authors, s.authors[aa.AuthorID].FullName)
	}
	for _, sec := range s.snap.Sections {
		if sec.ArticleID == articleID {
			d.Sections = append(d.Sections, sec)
		}
	}
	for _, ak := range s.snap.ArticleKeywords {
		if ak.ArticleID == articleID {
			k := s.keywords[ak.KeywordID]
			d.Keywords = append(d.Keywords, models.ArticleKeywordDetail{Keyword: k.Keyword, Category: k.Category, Relevance: ak.Relevance})
		}
	}
	for _, l := range s.snap.ArticleOrganisms {
		if l.ArticleID == articleID {
			d.Organisms = append(d.Organisms, s.organisms[l.TargetID])
		}
	}
	for _, l := range s.snap.ArticleTopics {
		if l.ArticleID == articleID {
			d.Topics = append(d.Topics, s.topics[l.TargetID].Name)
		}
	}
	for _, l := range s.snap.ArticleFunders {
		if l.ArticleID == articleID {
			d.Funders = append(d.Funders, s.funders[l.TargetID].Name)
		}
	}
	return d, nil
}

func linkCounts(links []models.ArticleLink) map[int64]int {
	sets := map[int64]map[int64]struct{}{}
	for _, l := range links {
		addPair(sets, l.TargetID, l.ArticleID)
	}
	out := make(map[int64]int, len(sets))
	for id, set := range sets {
		out[id] = len(set)
	}
	return out
}

func addPair(m map[int64]map[int64]struct{}, key, member int64) {
	set, ok := m[key]
	if !ok {
		set = map[int64]struct{}{}
		m[key] = set
	}
	set[member] = struct{}{}
}

func capSlice[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func toSet(in []string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, s := range in {
		out[s] = struct{}{}
	}
	return out
}

func toIDSet(in []int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(in))
	for _, id := range in {
		out[id] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
