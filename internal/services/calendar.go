package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conferenceschedule/internal/domain"
)

const (
	icsDateTimeLayout = "20060102T150405"
	appCalendarTTL    = "P0DT1H0M0S"
	allRoomsLocation  = "All Rooms"
)

// CalendarConfig holds the site-wide values printed into calendar feeds.
type CalendarConfig struct {
	SiteHost       string
	TalkURLPath    string
	OrganizerName  string
	OrganizerEmail string
	// ProdID overrides the default product id, {SiteHost}/p3/schedule/{conference}/.
	ProdID string
}

type calendarService struct {
	events         domain.EventRepository
	attendance     domain.AttendanceRepository
	encoder        domain.CalendarEncoder
	cfg            CalendarConfig
	contextTimeout time.Duration
}

// NewCalendarService returns the CalendarService behind the ICS and app feeds.
func NewCalendarService(events domain.EventRepository, attendance domain.AttendanceRepository, encoder domain.CalendarEncoder, cfg CalendarConfig, timeout time.Duration) domain.CalendarService {
	cfg.SiteHost = strings.TrimRight(cfg.SiteHost, "/")
	return &calendarService{
		events:         events,
		attendance:     attendance,
		encoder:        encoder,
		cfg:            cfg,
		contextTimeout: timeout,
	}
}

func (s *calendarService) ICS(ctx context.Context, conference string, userID int64, abstract bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.ListByConference(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if userID != 0 {
		starred, err := s.starred(ctx, conference, userID)
		if err != nil {
			return nil, err
		}
		kept := events[:0]
		for _, e := range events {
			if _, ok := starred[e.ID]; ok {
				kept = append(kept, e)
			}
		}
		events = kept
	}

	feed := domain.CalendarFeed{
		Name:           conference,
		ProdID:         s.prodID(conference),
		OrganizerName:  s.cfg.OrganizerName,
		OrganizerEmail: s.cfg.OrganizerEmail,
		Events:         make([]domain.CalendarEvent, 0, len(events)),
	}
	for _, e := range events {
		start, end := e.TimeRange()
		ce := domain.CalendarEvent{
			UID:        s.eventUID(e),
			Start:      start,
			End:        end,
			Summary:    e.Title(),
			Location:   location(e.Tracks),
			URL:        s.talkURL(e.Talk),
			Categories: e.Tags,
		}
		if abstract {
			ce.Description = e.Abstract
		}
		feed.Events = append(feed.Events, ce)
	}

	data, err := s.encoder.Encode(feed)
	if err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return data, nil
}

func (s *calendarService) AppCalendar(ctx context.Context, conference string, userID int64) (*domain.AppCalendar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.ListByConference(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var starred map[int64]struct{}
	if userID != 0 {
		if starred, err = s.starred(ctx, conference, userID); err != nil {
			return nil, err
		}
	}

	body := domain.AppCalendarBody{
		Version:      "2.0",
		Events:       make([]domain.AppEvent, 0, len(events)),
		PublishedTTL: appCalendarTTL,
		ProdID:       s.prodID(conference),
	}
	for _, e := range events {
		start, end := e.TimeRange()
		_, star := starred[e.ID]
		body.Events = append(body.Events, domain.AppEvent{
			Location:      location(e.Tracks),
			UID:           s.eventUID(e),
			Class:         "PUBLIC",
			Start:         start.Format(icsDateTimeLayout),
			End:           end.Format(icsDateTimeLayout),
			OrganizerName: s.cfg.OrganizerName,
			Organizer:     "mailto:" + s.cfg.OrganizerEmail,
			Summary:       e.Title(),
			Abstract:      s.talkURL(e.Talk),
			Star:          star,
			Language:      e.Language(),
		})
	}
	return &domain.AppCalendar{VCalendar: body}, nil
}

func (s *calendarService) starred(ctx context.Context, conference string, userID int64) (map[int64]struct{}, error) {
	refs, err := s.attendance.ListInterestedEvents(ctx, userID, conference)
	if err != nil {
		return nil, fmt.Errorf("list interested events: %w", err)
	}
	out := make(map[int64]struct{}, len(refs))
	for _, ref := range refs {
		out[ref.EventID] = struct{}{}
	}
	return out, nil
}

func (s *calendarService) prodID(conference string) string {
	if s.cfg.ProdID != "" {
		return s.cfg.ProdID
	}
	return fmt.Sprintf("%s/p3/schedule/%s/", s.cfg.SiteHost, conference)
}

func (s *calendarService) eventUID(e *domain.Event) string {
	return fmt.Sprintf("%s/%d", s.cfg.SiteHost, e.ID)
}

// talkURL returns the absolute page of the talk, or "" without a talk.
func (s *calendarService) talkURL(t *domain.Talk) string {
	if t == nil || t.Slug == "" {
		return ""
	}
	path := strings.Trim(s.cfg.TalkURLPath, "/")
	if path == "" {
		return fmt.Sprintf("%s/%s/", s.cfg.SiteHost, t.Slug)
	}
	return fmt.Sprintf("%s/%s/%s/", s.cfg.SiteHost, path, t.Slug)
}

// location is the single track title, or "All Rooms" for zero or several tracks.
func location(tracks []string) string {
	if len(tracks) == 1 {
		return tracks[0]
	}
	return allRoomsLocation
}
