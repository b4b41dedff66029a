package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 5, 1, hour, min, 0, 0, time.UTC)
}

func TestTimetable_EntriesOrderedByTimeThenID(t *testing.T) {
	tt := NewTimetable(1, at(0, 0))
	require.NoError(t, tt.AddEntries(
		TimetableEntry{ID: 7, ScheduleID: 1, Time: at(10, 0), Tracks: []string{"Room A"}},
		TimetableEntry{ID: 3, ScheduleID: 1, Time: at(10, 0), Tracks: []string{"Room B"}},
		TimetableEntry{ID: -4, ScheduleID: 1, Time: at(9, 0), Tracks: []string{PartnerProgramTrack}},
	))

	var ids []int64
	for _, e := range tt.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{-4, 3, 7}, ids)
	assert.Equal(t, 3, tt.Len())
	assert.Equal(t, []string{"Room A", "Room B", PartnerProgramTrack}, tt.Tracks())
}

func TestTimetable_FirstTieBreaksOnLowestID(t *testing.T) {
	tt := NewTimetable(1, at(0, 0))
	require.NoError(t, tt.AddEntries(
		TimetableEntry{ID: 9, ScheduleID: 1, Time: at(9, 0)},
		TimetableEntry{ID: 2, ScheduleID: 1, Time: at(9, 0)},
		TimetableEntry{ID: 1, ScheduleID: 1, Time: at(11, 0)},
	))
	first, ok := tt.First()
	require.True(t, ok)
	assert.Equal(t, int64(2), first.ID)
	assert.True(t, at(9, 0).Equal(tt.SortKey()))
}

func TestTimetable_EmptySortKeyIsScheduleDate(t *testing.T) {
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	tt := NewTimetable(5, date)
	_, ok := tt.First()
	assert.False(t, ok)
	assert.True(t, date.Equal(tt.SortKey()))
	assert.Empty(t, tt.Slots())
}

func TestTimetable_RejectsOtherSchedule(t *testing.T) {
	tt := NewTimetable(1, at(0, 0))
	err := tt.AddEntries(
		TimetableEntry{ID: 1, ScheduleID: 1, Time: at(9, 0)},
		TimetableEntry{ID: 2, ScheduleID: 2, Time: at(9, 0)},
	)
	require.ErrorIs(t, err, ErrScheduleMismatch)
	assert.Equal(t, 1, tt.Len())
}

func TestTimetable_SlotsAndTracks(t *testing.T) {
	tt := NewTimetable(1, at(0, 0))
	require.NoError(t, tt.AddEntries(
		TimetableEntry{ID: 1, ScheduleID: 1, Time: at(9, 0), Tracks: []string{"Room A"}},
		TimetableEntry{ID: 2, ScheduleID: 1, Time: at(9, 0), Tracks: []string{"Room B"}},
		TimetableEntry{ID: 3, ScheduleID: 1, Time: at(10, 0), Tracks: []string{"Room A", "Room B"}},
	))

	slots := tt.Slots()
	require.Len(t, slots, 2)
	assert.Len(t, slots[0].Entries, 2)
	assert.Len(t, slots[1].Entries, 1)

	roomA := tt.TrackEntries("Room A")
	require.Len(t, roomA, 2)
	assert.Equal(t, int64(1), roomA[0].ID)
	assert.Equal(t, int64(3), roomA[1].ID)
	assert.Empty(t, tt.TrackEntries("Room C"))
}

func TestTimetableFromEvents(t *testing.T) {
	s := &Schedule{ID: 4, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	events := []*Event{
		{ID: 10, ScheduleID: 4, StartTime: at(9, 0), Duration: 45, Talk: &Talk{Title: "Keynote"}, Tracks: []string{"Main"}},
		{ID: 11, ScheduleID: 4, StartTime: at(10, 0), CustomTitle: "Coffee break"},
	}
	tt, err := TimetableFromEvents(s, events)
	require.NoError(t, err)
	entries := tt.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Keynote", entries[0].Name)
	assert.Equal(t, at(9, 45), entries[0].End())
	assert.Equal(t, "Coffee break", entries[1].Name)
	assert.False(t, entries[0].Synthetic())

	_, err = TimetableFromEvents(s, []*Event{{ID: 12, ScheduleID: 5}})
	require.ErrorIs(t, err, ErrScheduleMismatch)
}

func TestEvent_Language(t *testing.T) {
	assert.Equal(t, "en", (&Event{}).Language())
	assert.Equal(t, "it", (&Event{Talk: &Talk{Language: "it"}}).Language())
}

func TestNewSchedulePage(t *testing.T) {
	tts := []ScheduleTimetable{
		{ScheduleID: 3, Timetable: NewTimetable(3, at(0, 0))},
		{ScheduleID: 1, Timetable: NewTimetable(1, at(0, 0))},
	}
	page := NewSchedulePage("pycon8", tts)
	assert.Equal(t, "pycon8", page.Conference)
	assert.Equal(t, []int64{3, 1}, page.ScheduleIDs)
	assert.Len(t, page.Timetables, 2)
}
