package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"conferenceschedule/internal/delivery/http/controllers"
	"conferenceschedule/internal/delivery/http/middleware"
	"conferenceschedule/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type stubSchedules struct{}

func (stubSchedules) ConferenceTimetables(context.Context, string) ([]domain.ScheduleTimetable, error) {
	return nil, nil
}
func (stubSchedules) ListTimetables(context.Context, string) ([]domain.ScheduleTimetable, error) {
	return nil, nil
}
func (stubSchedules) MyTimetables(context.Context, string, int64) ([]domain.ScheduleTimetable, error) {
	return nil, nil
}
func (stubSchedules) Search(context.Context, string, string) ([]domain.SearchHit, error) {
	return []domain.SearchHit{}, nil
}
func (stubSchedules) EmailMySchedule(context.Context, string, int64) error { return nil }

type stubPages struct{}

func (stubPages) Render(w io.Writer, name string, _ any) error {
	_, err := io.WriteString(w, name)
	return err
}

type stubCalendar struct{}

func (stubCalendar) ICS(context.Context, string, int64, bool) ([]byte, error) {
	return []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil
}
func (stubCalendar) AppCalendar(context.Context, string, int64) (*domain.AppCalendar, error) {
	return &domain.AppCalendar{}, nil
}

type stubAuth struct{}

func (stubAuth) Authenticate(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}
func (stubAuth) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

type stubPinger struct{}

func (stubPinger) PingContext(context.Context) error { return nil }

func newTestRouter() *http.ServeMux {
	return NewRouter(Controllers{
		Schedule: controllers.NewScheduleController(testLogger, stubSchedules{}, stubPages{}, "pycon8"),
		Calendar: controllers.NewCalendarController(testLogger, stubCalendar{}, stubAuth{}),
		Auth:     controllers.NewAuthController(testLogger, stubAuth{}, controllers.SessionCookie{Name: "session"}),
		Health:   controllers.NewHealthController(testLogger, stubPinger{}),
	}, RouterConfig{LoginURL: "/accounts/login/"})
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		userID     int64
		wantStatus int
		wantLoc    string
	}{
		{name: "schedule", method: http.MethodGet, path: "/p3/schedule/pycon8/", wantStatus: http.StatusOK},
		{name: "list", method: http.MethodGet, path: "/p3/schedule/pycon8/list/", wantStatus: http.StatusOK},
		{name: "search", method: http.MethodGet, path: "/p3/schedule/pycon8/search/?q=x", wantStatus: http.StatusOK},
		{name: "ics", method: http.MethodGet, path: "/p3/schedule/pycon8/schedule.ics", wantStatus: http.StatusOK},
		{name: "app feed", method: http.MethodGet, path: "/p3/schedule/pycon8/app-schedule.json", wantStatus: http.StatusOK},
		{name: "my ics anonymous", method: http.MethodGet, path: "/p3/schedule/pycon8/my-schedule.ics", wantStatus: http.StatusNotFound},
		{name: "my schedule anonymous", method: http.MethodGet, path: "/p3/schedule/pycon8/my-schedule/", wantStatus: http.StatusFound, wantLoc: "/accounts/login/?next=%2Fp3%2Fschedule%2Fpycon8%2Fmy-schedule%2F"},
		{name: "my schedule", method: http.MethodGet, path: "/p3/schedule/pycon8/my-schedule/", userID: 7, wantStatus: http.StatusOK},
		{name: "jump", method: http.MethodGet, path: "/p3/my-schedule/", userID: 7, wantStatus: http.StatusFound, wantLoc: "/p3/schedule/pycon8/my-schedule/"},
		{name: "email anonymous", method: http.MethodPost, path: "/p3/schedule/pycon8/my-schedule/email", wantStatus: http.StatusUnauthorized},
		{name: "email", method: http.MethodPost, path: "/p3/schedule/pycon8/my-schedule/email", userID: 7, wantStatus: http.StatusAccepted},
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "wrong method", method: http.MethodPost, path: "/p3/schedule/pycon8/", wantStatus: http.StatusMethodNotAllowed},
	}
	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.userID != 0 {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.userID))
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rr.Header().Get("Location"))
			}
		})
	}
}
