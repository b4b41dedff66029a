package services

import (
	"testing"
	"time"

	"conferenceschedule/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partnerFare(id int64, code, blob string) *domain.Fare {
	return &domain.Fare{
		ID:          id,
		Conference:  "pycon8",
		Code:        code,
		Name:        "Trip " + code,
		TicketType:  domain.TicketTypePartner,
		Description: "A visit to " + code,
		Blob:        blob,
	}
}

func TestPartnerAsEvents(t *testing.T) {
	fares := []*domain.Fare{
		partnerFare(5, "TRIP1", "date = 2024/05/01\ndeparture = 09:30\nduration = 120"),
		partnerFare(6, "TRIP2", "date = 2024/05/02\ndeparture = 14:00\nduration = 60"),
		partnerFare(7, "TRIP3", "date = 2024/05/01\ndeparture = 08:00\nduration = 30"),
	}

	program, skipped := PartnerAsEvents(fares)
	require.Empty(t, skipped)
	assert.Equal(t, []domain.Day{"2024-05-01", "2024-05-02"}, program.Days())

	first := program["2024-05-01"]
	require.Len(t, first, 2)
	// fare order is kept within a day
	assert.Equal(t, int64(-5), first[0].ID)
	assert.Equal(t, int64(-7), first[1].ID)

	e := first[0]
	assert.Equal(t, "Trip TRIP1", e.Name)
	assert.Equal(t, "A visit to TRIP1", e.Abstract)
	assert.Equal(t, "TRIP1", e.Fare)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), e.Time)
	assert.Equal(t, 120, e.Duration)
	assert.Equal(t, []string{domain.PartnerProgramTag}, e.Tags)
	assert.Equal(t, []string{domain.PartnerProgramTrack}, e.Tracks)
	assert.Zero(t, e.ScheduleID)
	assert.True(t, e.Synthetic())
}

func TestPartnerAsEvents_SkipsMalformedFares(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		wantErr error
	}{
		{"missing date", "departure = 09:30\nduration = 60", domain.ErrBlobFieldMissing},
		{"bad departure", "date = 2024/05/01\ndeparture = morning\nduration = 60", domain.ErrBlobFieldInvalid},
		{"bad duration", "date = 2024/05/01\ndeparture = 09:30\nduration = two hours", domain.ErrBlobFieldInvalid},
		{"empty blob", "", domain.ErrBlobFieldMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fares := []*domain.Fare{
				partnerFare(1, "BAD", tt.blob),
				partnerFare(2, "OK", "date = 2024/05/01\ndeparture = 10:00\nduration = 60"),
			}
			program, skipped := PartnerAsEvents(fares)
			require.Len(t, skipped, 1)
			assert.Equal(t, int64(1), skipped[0].FareID)
			assert.ErrorIs(t, skipped[0].Err, tt.wantErr)
			require.Len(t, program["2024-05-01"], 1)
			assert.Equal(t, int64(-2), program["2024-05-01"][0].ID)
		})
	}
}

func TestPartnerAsEvents_Empty(t *testing.T) {
	program, skipped := PartnerAsEvents(nil)
	assert.Empty(t, program)
	assert.Empty(t, skipped)
	assert.Empty(t, program.Days())
}
