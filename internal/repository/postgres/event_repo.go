package postgres

import (
	"context"
	"database/sql"

	"conferenceschedule/internal/domain"

	"github.com/lib/pq"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

// eventSelect loads an event with its talk and the titles of its tracks in
// display order. The duration falls back to the talk's.
const eventSelect = `
	SELECT e.id, e.schedule_id, e.start_time,
		COALESCE(NULLIF(e.duration, 0), t.duration, 0),
		COALESCE(e.custom_title, ''), COALESCE(e.abstract, ''), e.tags,
		t.id, t.title, t.slug, t.language,
		COALESCE(array_agg(tr.title ORDER BY tr.position) FILTER (WHERE tr.id IS NOT NULL), '{}')
	FROM events e
	JOIN schedules s ON s.id = e.schedule_id
	LEFT JOIN talks t ON t.id = e.talk_id
	LEFT JOIN event_tracks et ON et.event_id = e.id
	LEFT JOIN tracks tr ON tr.id = et.track_id
`

const eventGroupOrder = `
	GROUP BY e.id, t.id
	ORDER BY e.start_time, e.id
`

func (r *eventRepository) ListByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.Event, error) {
	return r.list(ctx, eventSelect+`WHERE e.schedule_id = $1`+eventGroupOrder, scheduleID)
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, eventSelect+`WHERE e.id = ANY($1)`+eventGroupOrder, pq.Array(ids))
}

func (r *eventRepository) ListByConference(ctx context.Context, conference string) ([]*domain.Event, error) {
	return r.list(ctx, eventSelect+`WHERE s.conference = $1`+eventGroupOrder, conference)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e := &domain.Event{}
		var talkID sql.NullInt64
		var talkTitle, talkSlug, talkLang sql.NullString
		if err := rows.Scan(
			&e.ID, &e.ScheduleID, &e.StartTime, &e.Duration,
			&e.CustomTitle, &e.Abstract, pq.Array(&e.Tags),
			&talkID, &talkTitle, &talkSlug, &talkLang,
			pq.Array(&e.Tracks),
		); err != nil {
			return nil, err
		}
		if talkID.Valid {
			e.Talk = &domain.Talk{
				ID:       talkID.Int64,
				Title:    talkTitle.String,
				Slug:     talkSlug.String,
				Language: talkLang.String,
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
