package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferenceschedule/internal/domain"

	"github.com/lib/pq"
)

type scheduleRepository struct {
	DB *sql.DB
}

// NewScheduleRepository returns a domain.ScheduleRepository implemented with Postgres.
func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

const scheduleColumns = `id, conference, slug, date, description`

func (r *scheduleRepository) ListByConference(ctx context.Context, conference string) ([]*domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE conference = $1
		ORDER BY date, id
	`
	return r.list(ctx, query, conference)
}

func (r *scheduleRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Schedule, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = ANY($1)
		ORDER BY date, id
	`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *scheduleRepository) GetByConferenceAndDate(ctx context.Context, conference string, day domain.Day) (*domain.Schedule, error) {
	date, err := day.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: day %q", domain.ErrInvalidInput, day)
	}
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE conference = $1 AND date = $2
		ORDER BY id
		LIMIT 1
	`
	s := &domain.Schedule{}
	err = r.DB.QueryRowContext(ctx, query, conference, date).Scan(&s.ID, &s.Conference, &s.Slug, &s.Date, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Schedule, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Schedule
	for rows.Next() {
		s := &domain.Schedule{}
		if err := rows.Scan(&s.ID, &s.Conference, &s.Slug, &s.Date, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
