package graph

// Entity is a tagged vocabulary entry that can co-occur with others on an article.
type Entity struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

// Link attaches an entity to the article it appears on.
type Link struct {
	ArticleID int64
	Entity    Entity
}

// Pair is an unordered entity pair stored with the lower id in A.
type Pair struct {
	A     Entity `json:"a"`
	B     Entity `json:"b"`
	Count int    `json:"count"`
}

type Node struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
	Kind     string `json:"type"`
	Size     int    `json:"size"`
}

type Edge struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
	Weight int   `json:"weight"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
