package ical

import (
	"strings"
	"time"

	"conferenceschedule/internal/domain"

	ical "github.com/arran4/golang-ical"
)

const publishedTTL = "PT1H"

// floatingLayout writes DATE-TIME values without a zone suffix. Event times
// are conference wall-clock times, so clients show them as given.
const floatingLayout = "20060102T150405"

type encoder struct {
	now func() time.Time
}

// NewEncoder returns a CalendarEncoder producing RFC 5545 text.
func NewEncoder() domain.CalendarEncoder {
	return &encoder{now: time.Now}
}

func (e *encoder) Encode(feed domain.CalendarFeed) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(feed.ProdID)
	if feed.Name != "" {
		cal.SetName(feed.Name)
		cal.SetXWRCalName(feed.Name)
	}
	cal.SetXPublishedTTL(publishedTTL)

	stamp := e.now().UTC()
	for _, ce := range feed.Events {
		ev := cal.AddEvent(ce.UID)
		ev.SetDtStampTime(stamp)
		ev.SetProperty(ical.ComponentPropertyDtStart, ce.Start.Format(floatingLayout))
		ev.SetProperty(ical.ComponentPropertyDtEnd, ce.End.Format(floatingLayout))
		ev.SetSummary(ce.Summary)
		ev.SetProperty(ical.ComponentPropertyClass, "PUBLIC")
		if ce.Location != "" {
			ev.SetLocation(ce.Location)
		}
		if ce.Description != "" {
			ev.SetDescription(ce.Description)
		}
		if ce.URL != "" {
			ev.SetURL(ce.URL)
		}
		if len(ce.Categories) > 0 {
			ev.SetProperty(ical.ComponentPropertyCategories, strings.Join(ce.Categories, ","))
		}
		if feed.OrganizerEmail != "" {
			ev.SetOrganizer("mailto:"+feed.OrganizerEmail, ical.WithCN(feed.OrganizerName))
		}
	}
	return []byte(cal.Serialize()), nil
}
