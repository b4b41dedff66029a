package domain

import (
	"context"
	"time"
)

// Talk is the talk attached to an event, when there is one.
type Talk struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Language string `json:"language"`
}

// Event is a bookable agenda item of a schedule.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	ScheduleID  int64     `json:"schedule_id"`
	StartTime   time.Time `json:"start_time"`
	Duration    int       `json:"duration"` // minutes
	CustomTitle string    `json:"custom_title"`
	Abstract    string    `json:"abstract"`
	Tags        []string  `json:"tags"`
	Tracks      []string  `json:"tracks"`
	Talk        *Talk     `json:"talk,omitempty"`
}

// Title returns the custom title, falling back to the talk title.
func (e *Event) Title() string {
	if e.CustomTitle != "" {
		return e.CustomTitle
	}
	if e.Talk != nil {
		return e.Talk.Title
	}
	return ""
}

// TimeRange returns the start and end of the event.
func (e *Event) TimeRange() (time.Time, time.Time) {
	return e.StartTime, e.StartTime.Add(time.Duration(e.Duration) * time.Minute)
}

// Language returns the talk language, "en" when the event has no talk.
func (e *Event) Language() string {
	if e.Talk != nil && e.Talk.Language != "" {
		return e.Talk.Language
	}
	return "en"
}

// EventRepository reads events together with their talk and track titles.
// Every list is ordered by start time, then id.
type EventRepository interface {
	ListByScheduleID(ctx context.Context, scheduleID int64) ([]*Event, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*Event, error)
	ListByConference(ctx context.Context, conference string) ([]*Event, error)
}
