package services

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"conferenceschedule/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeScheduleRepo is an in-memory ScheduleRepository for tests.
type fakeScheduleRepo struct {
	schedules []*domain.Schedule
	err       error
	lookups   int
}

func (f *fakeScheduleRepo) ListByConference(ctx context.Context, conference string) ([]*domain.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Schedule
	for _, s := range f.schedules {
		if s.Conference == conference {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Schedule
	for _, s := range f.schedules {
		if slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetByConferenceAndDate(ctx context.Context, conference string, d domain.Day) (*domain.Schedule, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.schedules {
		if s.Conference == conference && s.Day() == d {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events    []*domain.Event
	schedules []*domain.Schedule
	err       error
}

func (f *fakeEventRepo) ListByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		if e.ScheduleID == scheduleID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		if slices.Contains(ids, e.ID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByConference(ctx context.Context, conference string) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		for _, s := range f.schedules {
			if s.ID == e.ScheduleID && s.Conference == conference {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// fakeFareRepo is an in-memory FareRepository for tests.
type fakeFareRepo struct {
	fares []*domain.Fare
	err   error
}

func (f *fakeFareRepo) ListByConference(ctx context.Context, conference string) ([]*domain.Fare, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Fare
	for _, fare := range f.fares {
		if fare.Conference == conference {
			out = append(out, fare)
		}
	}
	return out, nil
}

// fakeAttendanceRepo returns canned attendance rows for every user.
type fakeAttendanceRepo struct {
	interested []domain.EventRef
	booked     []domain.EventRef
	fareIDs    []int64
	err        error
}

func (f *fakeAttendanceRepo) ListInterestedEvents(ctx context.Context, userID int64, conference string) ([]domain.EventRef, error) {
	return f.interested, f.err
}

func (f *fakeAttendanceRepo) ListBookedEvents(ctx context.Context, userID int64, conference string) ([]domain.EventRef, error) {
	return f.booked, f.err
}

func (f *fakeAttendanceRepo) ListPurchasedFareIDs(ctx context.Context, userID int64, conference, ticketType string) ([]int64, error) {
	return f.fareIDs, f.err
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	users []*domain.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeSearchIndex struct {
	hits  []domain.SearchHit
	err   error
	calls int
}

func (f *fakeSearchIndex) Search(ctx context.Context, conference, query string) ([]domain.SearchHit, error) {
	f.calls++
	return f.hits, f.err
}

// fakeEmailService records the data it was asked to send.
type fakeEmailService struct {
	sent []*domain.MyScheduleEmailData
	err  error
}

func (f *fakeEmailService) SendMySchedule(ctx context.Context, data *domain.MyScheduleEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
