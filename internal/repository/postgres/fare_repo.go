package postgres

import (
	"context"
	"database/sql"

	"conferenceschedule/internal/domain"
)

type fareRepository struct {
	DB *sql.DB
}

// NewFareRepository returns a domain.FareRepository implemented with Postgres.
func NewFareRepository(db *sql.DB) domain.FareRepository {
	return &fareRepository{DB: db}
}

func (r *fareRepository) ListByConference(ctx context.Context, conference string) ([]*domain.Fare, error) {
	query := `
		SELECT id, conference, code, name, ticket_type, COALESCE(description, ''), COALESCE(blob, '')
		FROM fares
		WHERE conference = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, conference)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Fare
	for rows.Next() {
		f := &domain.Fare{}
		if err := rows.Scan(&f.ID, &f.Conference, &f.Code, &f.Name, &f.TicketType, &f.Description, &f.Blob); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
