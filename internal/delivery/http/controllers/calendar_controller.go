package controllers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"conferenceschedule/internal/delivery/http/helpers"
	"conferenceschedule/internal/delivery/http/middleware"
	"conferenceschedule/internal/domain"
)

// CalendarController serves the iCalendar and JSON calendar feeds.
type CalendarController struct {
	Logger   *slog.Logger
	Service  domain.CalendarService
	Accounts domain.AuthService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService, accounts domain.AuthService) *CalendarController {
	return &CalendarController{Logger: logger, Service: svc, Accounts: accounts}
}

// ScheduleICS godoc
// @Summary Conference calendar
// @Description iCalendar feed with every event of the conference. With the abstract parameter present, descriptions are included.
// @Tags calendar
// @Produce text/calendar
// @Param conference path string true "Conference code"
// @Param abstract query string false "Include event descriptions when present"
// @Success 200 {string} string "text/calendar"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/schedule.ics [get]
func (c *CalendarController) ScheduleICS(w http.ResponseWriter, r *http.Request) {
	c.writeICS(w, r, 0)
}

// MyScheduleICS godoc
// @Summary Personal calendar
// @Description iCalendar feed with the events the authenticated user starred. Anonymous requests get 404.
// @Tags calendar
// @Produce text/calendar
// @Security BearerAuth
// @Param conference path string true "Conference code"
// @Param abstract query string false "Include event descriptions when present"
// @Success 200 {string} string "text/calendar"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/my-schedule.ics [get]
func (c *CalendarController) MyScheduleICS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
		return
	}
	c.writeICS(w, r, userID)
}

func (c *CalendarController) writeICS(w http.ResponseWriter, r *http.Request, userID int64) {
	body, err := c.Service.ICS(r.Context(), r.PathValue("conference"), userID, r.URL.Query().Has("abstract"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// AppScheduleJSON godoc
// @Summary Calendar app feed
// @Description JSON VCALENDAR document for the calendar app. Basic credentials in the Authorization header mark the user's starred events; missing or bad credentials give the anonymous feed.
// @Tags calendar
// @Produce json
// @Param conference path string true "Conference code"
// @Success 200 {object} domain.AppCalendar
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/app-schedule.json [get]
func (c *CalendarController) AppScheduleJSON(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if email, password, ok := parseBasicCredentials(r.Header.Get("Authorization")); ok {
		user, err := c.Accounts.Authenticate(r.Context(), email, password)
		if err != nil {
			c.Logger.DebugContext(r.Context(), "app feed credentials rejected", "err", err)
		} else {
			userID = user.ID
		}
	}
	feed, err := c.Service.AppCalendar(r.Context(), r.PathValue("conference"), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, feed)
}

// parseBasicCredentials reads "<scheme> <base64(email:password)>". The scheme
// itself is not checked.
func parseBasicCredentials(header string) (email, password string, ok bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(fields[1])
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return "", "", false
	}
	return email, password, true
}
