package services

import (
	"fmt"
	"maps"
	"slices"

	"conferenceschedule/internal/domain"
)

// PartnerProgram holds synthetic entries built from partner fares, keyed by day.
type PartnerProgram map[domain.Day][]domain.TimetableEntry

// Days returns the days of the program in chronological order.
func (p PartnerProgram) Days() []domain.Day {
	return slices.Sorted(maps.Keys(p))
}

// SkippedFare records a fare that could not be turned into an entry.
type SkippedFare struct {
	FareID int64
	Err    error
}

// PartnerAsEvents converts partner fares into synthetic timetable entries.
// A fare whose blob lacks a valid date, departure or duration is skipped and
// reported in the second return value. The schedule id of every entry is left
// unset; the timetable builder assigns it on injection.
func PartnerAsEvents(fares []*domain.Fare) (PartnerProgram, []SkippedFare) {
	program := make(PartnerProgram)
	var skipped []SkippedFare
	for _, f := range fares {
		entry, err := partnerEntry(f)
		if err != nil {
			skipped = append(skipped, SkippedFare{FareID: f.ID, Err: err})
			continue
		}
		day := domain.DayOf(entry.Time)
		program[day] = append(program[day], entry)
	}
	return program, skipped
}

func partnerEntry(f *domain.Fare) (domain.TimetableEntry, error) {
	blob := f.ParsedBlob()
	date, err := blob.Date()
	if err != nil {
		return domain.TimetableEntry{}, fmt.Errorf("fare %d: %w", f.ID, err)
	}
	departure, err := blob.Departure()
	if err != nil {
		return domain.TimetableEntry{}, fmt.Errorf("fare %d: %w", f.ID, err)
	}
	duration, err := blob.Duration()
	if err != nil {
		return domain.TimetableEntry{}, fmt.Errorf("fare %d: %w", f.ID, err)
	}
	return domain.TimetableEntry{
		ID:       -f.ID,
		Name:     f.Name,
		Abstract: f.Description,
		Fare:     f.Code,
		Time:     date.Add(departure),
		Duration: duration,
		Tags:     []string{domain.PartnerProgramTag},
		Tracks:   []string{domain.PartnerProgramTrack},
	}, nil
}
