package domain

import (
	"context"
	"encoding/json"
	"time"
)

// CalendarEvent is one VEVENT of an iCalendar feed.
type CalendarEvent struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
	URL         string
	Categories  []string
}

// CalendarFeed is the input of a CalendarEncoder.
type CalendarFeed struct {
	Name           string
	ProdID         string
	OrganizerName  string
	OrganizerEmail string
	Events         []CalendarEvent
}

// CalendarEncoder serializes a feed as text/calendar.
type CalendarEncoder interface {
	Encode(feed CalendarFeed) ([]byte, error)
}

// AppCalendar is the JSON calendar document consumed by the calendar app.
// swagger:model AppCalendar
type AppCalendar struct {
	VCalendar AppCalendarBody `json:"VCALENDAR"`
}

// AppCalendarBody is the VCALENDAR object of AppCalendar.
type AppCalendarBody struct {
	Version      string     `json:"VERSION"`
	Events       []AppEvent `json:"VEVENT"`
	PublishedTTL string     `json:"X-PUBLISHED-TTL"`
	ProdID       string     `json:"PRODID"`
}

// AppEvent is one VEVENT entry of AppCalendar. The organizer key carries the
// organizer name, so the entry is marshalled as an object by MarshalJSON.
type AppEvent struct {
	Location      string
	UID           string
	Class         string
	Start         string
	End           string
	OrganizerName string
	Organizer     string
	Geo           string
	Summary       string
	Abstract      string
	Star          bool
	Language      string
}

// MarshalJSON renders the entry with the iCalendar property names the app expects.
func (e AppEvent) MarshalJSON() ([]byte, error) {
	organizerKey := "ORGANIZER"
	if e.OrganizerName != "" {
		organizerKey = "ORGANIZER;CN=" + e.OrganizerName
	}
	return json.Marshal(map[string]any{
		"LOCATION":   e.Location,
		"UID":        e.UID,
		"CLASS":      e.Class,
		"DTSTART":    e.Start,
		"DTEND":      e.End,
		organizerKey: e.Organizer,
		"GEO":        e.Geo,
		"SUMMARY":    e.Summary,
		"ABSTRACT":   e.Abstract,
		"STAR":       e.Star,
		"LANGUAGE":   e.Language,
	})
}

// CalendarService produces the calendar feeds of a conference. A userID of
// 0 means anonymous.
type CalendarService interface {
	// ICS returns the iCalendar feed; with a user only their starred events are included.
	ICS(ctx context.Context, conference string, userID int64, abstract bool) ([]byte, error)
	AppCalendar(ctx context.Context, conference string, userID int64) (*AppCalendar, error)
}
