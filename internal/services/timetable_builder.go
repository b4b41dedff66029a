package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"conferenceschedule/internal/domain"
)

// TimetableBuilder turns schedules, their events and the partner program into
// ordered timetables.
type TimetableBuilder struct {
	events    domain.EventRepository
	schedules domain.ScheduleRepository
	logger    *slog.Logger
}

// NewTimetableBuilder returns a builder reading from the given repositories.
func NewTimetableBuilder(events domain.EventRepository, schedules domain.ScheduleRepository, logger *slog.Logger) *TimetableBuilder {
	return &TimetableBuilder{events: events, schedules: schedules, logger: logger}
}

// Build returns one timetable per schedule, in chronological order of their
// first entry.
//
// With a nil restrict every event of a schedule is loaded. Otherwise only the
// event ids listed under the schedule id are kept, and a schedule absent from
// restrict yields an empty timetable.
//
// Partner entries are injected into the schedule of the same day. When no
// input schedule matches, the persisted schedule of the conference on that
// day is appended; when there is none the day is dropped.
func (b *TimetableBuilder) Build(ctx context.Context, conference string, schedules []*domain.Schedule, restrict map[int64][]int64, partner PartnerProgram) ([]domain.ScheduleTimetable, error) {
	var restricted map[int64][]*domain.Event
	if restrict != nil {
		var err error
		if restricted, err = b.loadRestricted(ctx, restrict); err != nil {
			return nil, err
		}
	}

	out := make([]domain.ScheduleTimetable, 0, len(schedules))
	byDay := make(map[domain.Day]*domain.Timetable, len(schedules))
	for _, s := range schedules {
		var events []*domain.Event
		if restrict == nil {
			var err error
			if events, err = b.events.ListByScheduleID(ctx, s.ID); err != nil {
				return nil, fmt.Errorf("list events of schedule %d: %w", s.ID, err)
			}
		} else {
			events = restricted[s.ID]
		}
		tt, err := domain.TimetableFromEvents(s, events)
		if err != nil {
			return nil, fmt.Errorf("timetable of schedule %d: %w", s.ID, err)
		}
		out = append(out, domain.ScheduleTimetable{ScheduleID: s.ID, Timetable: tt})
		if _, ok := byDay[s.Day()]; !ok {
			byDay[s.Day()] = tt
		}
	}

	for _, day := range partner.Days() {
		tt, ok := byDay[day]
		if !ok {
			s, err := b.schedules.GetByConferenceAndDate(ctx, conference, day)
			if errors.Is(err, domain.ErrNotFound) {
				b.logger.WarnContext(ctx, "no schedule for partner program day, entries dropped",
					"conference", conference, "day", day.String(), "entries", len(partner[day]))
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("schedule of %s on %s: %w", conference, day, err)
			}
			tt = domain.NewTimetable(s.ID, s.Date)
			byDay[day] = tt
			out = append(out, domain.ScheduleTimetable{ScheduleID: s.ID, Timetable: tt})
		}
		for _, entry := range partner[day] {
			entry.ScheduleID = tt.ScheduleID
			if err := tt.AddEntries(entry); err != nil {
				return nil, err
			}
		}
	}

	slices.SortStableFunc(out, func(a, b domain.ScheduleTimetable) int {
		if c := a.Timetable.SortKey().Compare(b.Timetable.SortKey()); c != 0 {
			return c
		}
		return cmp.Compare(a.ScheduleID, b.ScheduleID)
	})
	return out, nil
}

// loadRestricted fetches the restricted events in one query and groups them
// by schedule, keeping only the ids listed for that schedule.
func (b *TimetableBuilder) loadRestricted(ctx context.Context, restrict map[int64][]int64) (map[int64][]*domain.Event, error) {
	var ids []int64
	for _, eventIDs := range restrict {
		ids = append(ids, eventIDs...)
	}
	grouped := make(map[int64][]*domain.Event, len(restrict))
	if len(ids) == 0 {
		return grouped, nil
	}
	events, err := b.events.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list restricted events: %w", err)
	}
	for _, e := range events {
		if !slices.Contains(restrict[e.ScheduleID], e.ID) {
			continue
		}
		grouped[e.ScheduleID] = append(grouped[e.ScheduleID], e)
	}
	return grouped, nil
}
