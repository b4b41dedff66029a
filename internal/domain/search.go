package domain

import "context"

// SearchHit is one ranked result of a free-text event search.
// swagger:model SearchHit
type SearchHit struct {
	PK    int64   `json:"pk"`
	Score float64 `json:"score"`
}

// SearchIndex runs free-text queries over the events of a conference.
type SearchIndex interface {
	Search(ctx context.Context, conference, query string) ([]SearchHit, error)
}
