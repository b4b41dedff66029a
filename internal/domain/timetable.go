package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Partner program markers carried by synthetic entries.
const (
	PartnerProgramTag   = "partner-program"
	PartnerProgramTrack = "partner0"
)

// ErrScheduleMismatch is returned when an entry is added to the timetable of another schedule.
var ErrScheduleMismatch = errors.New("entry belongs to another schedule")

// TimetableEntry is one item of a timetable: either a persisted event or a
// synthetic one built from a partner-program fare. Synthetic entries have a
// negative ID so they never collide with event ids.
type TimetableEntry struct {
	ID         int64     `json:"id"`
	ScheduleID int64     `json:"schedule_id"`
	Name       string    `json:"name"`
	Abstract   string    `json:"abstract"`
	Fare       string    `json:"fare,omitempty"`
	Time       time.Time `json:"time"`
	Duration   int       `json:"duration"`
	Tags       []string  `json:"tags"`
	Tracks     []string  `json:"tracks"`
	Talk       *Talk     `json:"talk,omitempty"`
}

// EntryFromEvent converts a persisted event.
func EntryFromEvent(e *Event) TimetableEntry {
	return TimetableEntry{
		ID:         e.ID,
		ScheduleID: e.ScheduleID,
		Name:       e.Title(),
		Abstract:   e.Abstract,
		Time:       e.StartTime,
		Duration:   e.Duration,
		Tags:       e.Tags,
		Tracks:     e.Tracks,
		Talk:       e.Talk,
	}
}

// Synthetic reports whether the entry was derived from a fare.
func (e TimetableEntry) Synthetic() bool { return e.ID < 0 }

// End returns the entry end time.
func (e TimetableEntry) End() time.Time {
	return e.Time.Add(time.Duration(e.Duration) * time.Minute)
}

func compareEntries(a, b TimetableEntry) int {
	if c := a.Time.Compare(b.Time); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// TimeSlot groups the entries starting at the same time.
type TimeSlot struct {
	Time    time.Time
	Entries []TimetableEntry
}

// Timetable is the in-memory view of one schedule's entries, grouped by track.
// All entries belong to ScheduleID.
type Timetable struct {
	ScheduleID int64
	Date       time.Time

	entries []TimetableEntry
	tracks  []string
	byTrack map[string][]TimetableEntry
}

// NewTimetable returns an empty timetable for the schedule.
func NewTimetable(scheduleID int64, date time.Time) *Timetable {
	return &Timetable{
		ScheduleID: scheduleID,
		Date:       date,
		byTrack:    make(map[string][]TimetableEntry),
	}
}

// TimetableFromEvents builds a timetable from persisted events of the schedule.
func TimetableFromEvents(s *Schedule, events []*Event) (*Timetable, error) {
	tt := NewTimetable(s.ID, s.Date)
	for _, e := range events {
		if err := tt.AddEntries(EntryFromEvent(e)); err != nil {
			return nil, err
		}
	}
	return tt, nil
}

// AddEntries adds entries to the timetable. An entry whose ScheduleID differs
// from the timetable's is rejected and nothing after it is added.
func (t *Timetable) AddEntries(entries ...TimetableEntry) error {
	for _, e := range entries {
		if e.ScheduleID != t.ScheduleID {
			return fmt.Errorf("%w: entry %d has schedule %d, timetable %d", ErrScheduleMismatch, e.ID, e.ScheduleID, t.ScheduleID)
		}
		t.entries = append(t.entries, e)
		for _, track := range e.Tracks {
			if _, ok := t.byTrack[track]; !ok {
				t.tracks = append(t.tracks, track)
			}
			t.byTrack[track] = append(t.byTrack[track], e)
		}
	}
	return nil
}

// Len returns the number of entries.
func (t *Timetable) Len() int { return len(t.entries) }

// Entries returns every entry ordered by time, then id.
func (t *Timetable) Entries() []TimetableEntry {
	out := slices.Clone(t.entries)
	slices.SortStableFunc(out, compareEntries)
	return out
}

// First returns the earliest entry, lowest id first on ties.
func (t *Timetable) First() (TimetableEntry, bool) {
	if len(t.entries) == 0 {
		return TimetableEntry{}, false
	}
	return slices.MinFunc(t.entries, compareEntries), true
}

// SortKey is the instant used to order timetables: the first entry's time,
// or the schedule date when the timetable is empty.
func (t *Timetable) SortKey() time.Time {
	if first, ok := t.First(); ok {
		return first.Time
	}
	return t.Date
}

// Tracks returns track names in the order they first appeared.
func (t *Timetable) Tracks() []string {
	return slices.Clone(t.tracks)
}

// TrackEntries returns the entries of one track ordered by time, then id.
func (t *Timetable) TrackEntries(track string) []TimetableEntry {
	out := slices.Clone(t.byTrack[track])
	slices.SortStableFunc(out, compareEntries)
	return out
}

// Slots groups the ordered entries by start time.
func (t *Timetable) Slots() []TimeSlot {
	var slots []TimeSlot
	for _, e := range t.Entries() {
		if n := len(slots); n > 0 && slots[n-1].Time.Equal(e.Time) {
			slots[n-1].Entries = append(slots[n-1].Entries, e)
			continue
		}
		slots = append(slots, TimeSlot{Time: e.Time, Entries: []TimetableEntry{e}})
	}
	return slots
}

// ScheduleTimetable pairs a schedule id with its timetable.
type ScheduleTimetable struct {
	ScheduleID int64
	Timetable  *Timetable
}

// ScheduleIDs returns the schedule ids of tts in order.
func ScheduleIDs(tts []ScheduleTimetable) []int64 {
	ids := make([]int64, len(tts))
	for i, tt := range tts {
		ids[i] = tt.ScheduleID
	}
	return ids
}

// SchedulePage is the context handed to the schedule page templates.
type SchedulePage struct {
	Conference  string
	ScheduleIDs []int64
	Timetables  []ScheduleTimetable
}

// NewSchedulePage builds the template context for tts.
func NewSchedulePage(conference string, tts []ScheduleTimetable) SchedulePage {
	return SchedulePage{
		Conference:  conference,
		ScheduleIDs: ScheduleIDs(tts),
		Timetables:  tts,
	}
}
