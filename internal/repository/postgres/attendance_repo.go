package postgres

import (
	"context"
	"database/sql"

	"conferenceschedule/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

// NewAttendanceRepository returns a domain.AttendanceRepository implemented with Postgres.
func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{DB: db}
}

func (r *attendanceRepository) ListInterestedEvents(ctx context.Context, userID int64, conference string) ([]domain.EventRef, error) {
	query := `
		SELECT e.id, e.schedule_id
		FROM event_interests ei
		JOIN events e ON e.id = ei.event_id
		JOIN schedules s ON s.id = e.schedule_id
		WHERE ei.user_id = $1 AND ei.interest > 0 AND s.conference = $2
		ORDER BY e.start_time, e.id
	`
	return r.listRefs(ctx, query, userID, conference)
}

func (r *attendanceRepository) ListBookedEvents(ctx context.Context, userID int64, conference string) ([]domain.EventRef, error) {
	query := `
		SELECT e.id, e.schedule_id
		FROM event_bookings eb
		JOIN events e ON e.id = eb.event_id
		JOIN schedules s ON s.id = e.schedule_id
		WHERE eb.user_id = $1 AND s.conference = $2
		ORDER BY e.start_time, e.id
	`
	return r.listRefs(ctx, query, userID, conference)
}

func (r *attendanceRepository) ListPurchasedFareIDs(ctx context.Context, userID int64, conference, ticketType string) ([]int64, error) {
	query := `
		SELECT DISTINCT t.fare_id
		FROM tickets t
		JOIN fares f ON f.id = t.fare_id
		WHERE t.user_id = $1 AND f.conference = $2 AND f.ticket_type = $3
		ORDER BY t.fare_id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, conference, ticketType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *attendanceRepository) listRefs(ctx context.Context, query string, args ...any) ([]domain.EventRef, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.EventRef
	for rows.Next() {
		var ref domain.EventRef
		if err := rows.Scan(&ref.EventID, &ref.ScheduleID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
