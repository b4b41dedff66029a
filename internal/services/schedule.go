package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"conferenceschedule/internal/domain"
)

// ScheduleServiceDeps groups the collaborators of the schedule service.
type ScheduleServiceDeps struct {
	Schedules  domain.ScheduleRepository
	Fares      domain.FareRepository
	Attendance domain.AttendanceRepository
	Users      domain.UserRepository
	Search     domain.SearchIndex
	Email      domain.EmailService
	Builder    *TimetableBuilder
	Logger     *slog.Logger
	// SiteHost prefixes the calendar link sent in the my-schedule email.
	SiteHost string
}

type scheduleService struct {
	schedules      domain.ScheduleRepository
	fares          domain.FareRepository
	attendance     domain.AttendanceRepository
	users          domain.UserRepository
	search         domain.SearchIndex
	email          domain.EmailService
	builder        *TimetableBuilder
	logger         *slog.Logger
	siteHost       string
	contextTimeout time.Duration
}

// NewScheduleService returns the ScheduleService used by the view handlers.
func NewScheduleService(deps ScheduleServiceDeps, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		schedules:      deps.Schedules,
		fares:          deps.Fares,
		attendance:     deps.Attendance,
		users:          deps.Users,
		search:         deps.Search,
		email:          deps.Email,
		builder:        deps.Builder,
		logger:         deps.Logger,
		siteHost:       strings.TrimRight(deps.SiteHost, "/"),
		contextTimeout: timeout,
	}
}

func (s *scheduleService) ConferenceTimetables(ctx context.Context, conference string) ([]domain.ScheduleTimetable, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	schedules, err := s.schedules.ListByConference(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	partner, err := s.partnerProgram(ctx, conference, nil)
	if err != nil {
		return nil, err
	}
	return s.builder.Build(ctx, conference, schedules, nil, partner)
}

func (s *scheduleService) ListTimetables(ctx context.Context, conference string) ([]domain.ScheduleTimetable, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	schedules, err := s.schedules.ListByConference(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return s.builder.Build(ctx, conference, schedules, nil, nil)
}

func (s *scheduleService) MyTimetables(ctx context.Context, conference string, userID int64) ([]domain.ScheduleTimetable, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.myTimetables(ctx, conference, userID)
}

func (s *scheduleService) myTimetables(ctx context.Context, conference string, userID int64) ([]domain.ScheduleTimetable, error) {
	interested, err := s.attendance.ListInterestedEvents(ctx, userID, conference)
	if err != nil {
		return nil, fmt.Errorf("list interested events: %w", err)
	}
	booked, err := s.attendance.ListBookedEvents(ctx, userID, conference)
	if err != nil {
		return nil, fmt.Errorf("list booked events: %w", err)
	}

	restrict := make(map[int64][]int64)
	var scheduleIDs []int64
	for _, ref := range slices.Concat(interested, booked) {
		ids, seen := restrict[ref.ScheduleID]
		if !seen {
			scheduleIDs = append(scheduleIDs, ref.ScheduleID)
		}
		if !slices.Contains(ids, ref.EventID) {
			restrict[ref.ScheduleID] = append(ids, ref.EventID)
		}
	}

	fareIDs, err := s.attendance.ListPurchasedFareIDs(ctx, userID, conference, domain.TicketTypePartner)
	if err != nil {
		return nil, fmt.Errorf("list purchased fares: %w", err)
	}
	var partner PartnerProgram
	if len(fareIDs) > 0 {
		if partner, err = s.partnerProgram(ctx, conference, fareIDs); err != nil {
			return nil, err
		}
	}

	var schedules []*domain.Schedule
	if len(scheduleIDs) > 0 {
		if schedules, err = s.schedules.ListByIDs(ctx, scheduleIDs); err != nil {
			return nil, fmt.Errorf("list schedules: %w", err)
		}
	}
	return s.builder.Build(ctx, conference, schedules, restrict, partner)
}

// partnerProgram loads the partner fares of the conference, limited to
// fareIDs when it is non-nil, and logs the fares that had to be skipped.
func (s *scheduleService) partnerProgram(ctx context.Context, conference string, fareIDs []int64) (PartnerProgram, error) {
	fares, err := s.fares.ListByConference(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("list fares: %w", err)
	}
	partnerFares := slices.DeleteFunc(fares, func(f *domain.Fare) bool {
		if f.TicketType != domain.TicketTypePartner {
			return true
		}
		return fareIDs != nil && !slices.Contains(fareIDs, f.ID)
	})
	program, skipped := PartnerAsEvents(partnerFares)
	for _, sk := range skipped {
		s.logger.WarnContext(ctx, "partner fare skipped", "conference", conference, "fare_id", sk.FareID, "err", sk.Err)
	}
	return program, nil
}

func (s *scheduleService) Search(ctx context.Context, conference, query string) ([]domain.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchHit{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	hits, err := s.search.Search(ctx, conference, query)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	if hits == nil {
		hits = []domain.SearchHit{}
	}
	return hits, nil
}

func (s *scheduleService) EmailMySchedule(ctx context.Context, conference string, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	tts, err := s.myTimetables(ctx, conference, userID)
	if err != nil {
		return err
	}

	data := &domain.MyScheduleEmailData{
		Email:       user.Email,
		Name:        user.Name,
		Conference:  conference,
		CalendarURL: fmt.Sprintf("%s/p3/schedule/%s/my-schedule.ics", s.siteHost, conference),
	}
	for _, st := range tts {
		if st.Timetable.Len() == 0 {
			continue
		}
		data.Days = append(data.Days, domain.MyScheduleDay{
			Date:    st.Timetable.Date,
			Entries: st.Timetable.Entries(),
		})
	}
	return s.email.SendMySchedule(ctx, data)
}
