package graph

import "sort"

// CountPairs counts, for every unordered pair of distinct entities that share
// an article, the number of distinct articles they share. Only entities whose
// category is in categories take part (all when categories is empty). Pairs
// below minCount are dropped. The result is ordered by SortPairs.
func CountPairs(links []Link, categories []string, minCount int) []Pair {
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	byArticle := make(map[int64]map[int64]Entity)
	for _, l := range links {
		if len(allowed) > 0 {
			if _, ok := allowed[l.Entity.Category]; !ok {
				continue
			}
		}
		m, ok := byArticle[l.ArticleID]
		if !ok {
			m = map[int64]Entity{}
			byArticle[l.ArticleID] = m
		}
		m[l.Entity.ID] = l.Entity
	}

	type key struct{ a, b int64 }
	counts := map[key]*Pair{}
	for _, ents := range byArticle {
		list := make([]Entity, 0, len(ents))
		for _, e := range ents {
			list = append(list, e)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				k := key{list[i].ID, list[j].ID}
				p, ok := counts[k]
				if !ok {
					p = &Pair{A: list[i], B: list[j]}
					counts[k] = p
				}
				p.Count++
			}
		}
	}

	out := make([]Pair, 0, len(counts))
	for _, p := range counts {
		if p.Count < minCount {
			continue
		}
		out = append(out, *p)
	}
	SortPairs(out)
	return out
}

// SortPairs orders pairs by count descending, then by (A.ID, B.ID).
func SortPairs(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A.ID != pairs[j].A.ID {
			return pairs[i].A.ID < pairs[j].A.ID
		}
		return pairs[i].B.ID < pairs[j].B.ID
	})
}

// Build turns pairs into an undirected weighted graph. Pairs are normalised so
// the lower id is the edge source, duplicates are merged by keeping the first,
// and at most maxEdges edges survive (all when maxEdges <= 0). A node exists
// for each entity touched by a surviving edge; its size is its edge count.
func Build(pairs []Pair, kind string, maxEdges int) Graph {
	norm := make([]Pair, 0, len(pairs))
	seen := make(map[[2]int64]struct{}, len(pairs))
	for _, p := range pairs {
		if p.A.ID == p.B.ID {
			continue
		}
		if p.B.ID < p.A.ID {
			p.A, p.B = p.B, p.A
		}
		k := [2]int64{p.A.ID, p.B.ID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		norm = append(norm, p)
	}
	SortPairs(norm)
	if maxEdges > 0 && len(norm) > maxEdges {
		norm = norm[:maxEdges]
	}

	g := Graph{Nodes: make([]Node, 0), Edges: make([]Edge, 0, len(norm))}
	index := map[int64]int{}
	touch := func(e Entity) {
		i, ok := index[e.ID]
		if !ok {
			i = len(g.Nodes)
			index[e.ID] = i
			g.Nodes = append(g.Nodes, Node{ID: e.ID, Label: e.Label, Category: e.Category, Kind: kind})
		}
		g.Nodes[i].Size++
	}
	for _, p := range norm {
		touch(p.A)
		touch(p.B)
		g.Edges = append(g.Edges, Edge{Source: p.A.ID, Target: p.B.ID, Weight: p.Count})
	}
	return g
}
