package http

import (
	"net/http"

	"conferenceschedule/internal/delivery/http/controllers"
	"conferenceschedule/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Schedule *controllers.ScheduleController
	Calendar *controllers.CalendarController
	Auth     *controllers.AuthController
	Health   *controllers.HealthController
}

// RouterConfig carries the middleware built by the caller.
type RouterConfig struct {
	LoginURL string
	// Cache wraps the anonymous public routes. Nil disables caching.
	Cache func(http.Handler) http.Handler
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	requireLogin := middleware.RequireLogin(cfg.LoginURL)
	requireAuth := middleware.RequireAuth()
	cached := func(h http.HandlerFunc) http.Handler {
		if cfg.Cache == nil {
			return h
		}
		return cfg.Cache(h)
	}

	// Public schedule views
	mux.Handle("GET /p3/schedule/{conference}/{$}", cached(c.Schedule.Schedule))
	mux.Handle("GET /p3/schedule/{conference}/list/{$}", cached(c.Schedule.ScheduleList))
	mux.Handle("GET /p3/schedule/{conference}/search/{$}", cached(c.Schedule.Search))
	mux.Handle("GET /p3/schedule/{conference}/schedule.ics", cached(c.Calendar.ScheduleICS))
	mux.HandleFunc("GET /p3/schedule/{conference}/app-schedule.json", c.Calendar.AppScheduleJSON)

	// Personal views
	mux.HandleFunc("GET /p3/my-schedule/{$}", requireLogin(c.Schedule.JumpToMySchedule))
	mux.HandleFunc("GET /p3/schedule/{conference}/my-schedule/{$}", requireLogin(c.Schedule.MySchedule))
	mux.HandleFunc("GET /p3/schedule/{conference}/my-schedule.ics", c.Calendar.MyScheduleICS)
	mux.HandleFunc("POST /p3/schedule/{conference}/my-schedule/email", requireAuth(c.Schedule.EmailMySchedule))

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
