package postgres

import (
	"context"
	"database/sql"

	"conferenceschedule/internal/domain"
)

const searchLimit = 100

type searchIndex struct {
	DB *sql.DB
}

// NewSearchIndex returns a domain.SearchIndex over the events.search_vector
// tsvector column, ranked with ts_rank.
func NewSearchIndex(db *sql.DB) domain.SearchIndex {
	return &searchIndex{DB: db}
}

func (s *searchIndex) Search(ctx context.Context, conference, query string) ([]domain.SearchHit, error) {
	q := `
		SELECT e.id, ts_rank(e.search_vector, q.query) AS score
		FROM events e
		JOIN schedules s ON s.id = e.schedule_id,
			websearch_to_tsquery('simple', $2) AS q(query)
		WHERE s.conference = $1 AND e.search_vector @@ q.query
		ORDER BY score DESC, e.id
		LIMIT $3
	`
	rows, err := s.DB.QueryContext(ctx, q, conference, query, searchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []domain.SearchHit{}
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.PK, &h.Score); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
