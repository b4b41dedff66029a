package domain

import (
	"context"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar date formatted as YYYY-MM-DD. It is comparable and
// sorts chronologically as a string, so it is safe to use as a map key.
type Day string

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Time returns midnight UTC of the day.
func (d Day) Time() (time.Time, error) {
	return time.Parse(dayLayout, string(d))
}

func (d Day) String() string { return string(d) }

// Schedule is one day of a conference.
// swagger:model Schedule
type Schedule struct {
	ID          int64     `json:"id"`
	Conference  string    `json:"conference"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// Day returns the schedule's calendar day.
func (s *Schedule) Day() Day {
	return DayOf(s.Date)
}

// ScheduleRepository reads schedules.
type ScheduleRepository interface {
	ListByConference(ctx context.Context, conference string) ([]*Schedule, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*Schedule, error)
	// GetByConferenceAndDate returns ErrNotFound when the conference has no schedule on day.
	GetByConferenceAndDate(ctx context.Context, conference string, day Day) (*Schedule, error)
}

// ScheduleService composes the schedule views of a conference.
type ScheduleService interface {
	// ConferenceTimetables returns every schedule of the conference with the partner program merged in.
	ConferenceTimetables(ctx context.Context, conference string) ([]ScheduleTimetable, error)
	// ListTimetables returns one timetable per schedule, without partner program.
	ListTimetables(ctx context.Context, conference string) ([]ScheduleTimetable, error)
	// MyTimetables returns the timetables restricted to the user's interests, bookings and partner tickets.
	MyTimetables(ctx context.Context, conference string, userID int64) ([]ScheduleTimetable, error)
	Search(ctx context.Context, conference, query string) ([]SearchHit, error)
	// EmailMySchedule sends the user's personalized schedule to their email address.
	EmailMySchedule(ctx context.Context, conference string, userID int64) error
}
