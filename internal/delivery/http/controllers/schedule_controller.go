package controllers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"conferenceschedule/internal/delivery/http/helpers"
	"conferenceschedule/internal/delivery/http/middleware"
	"conferenceschedule/internal/domain"
)

// ScheduleController serves the HTML schedule views, search and the
// personalized schedule email.
type ScheduleController struct {
	Logger            *slog.Logger
	Service           domain.ScheduleService
	Pages             domain.PageRenderer
	DefaultConference string
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService, pages domain.PageRenderer, defaultConference string) *ScheduleController {
	return &ScheduleController{
		Logger:            logger,
		Service:           svc,
		Pages:             pages,
		DefaultConference: defaultConference,
	}
}

// Schedule godoc
// @Summary Conference schedule page
// @Description Renders every schedule of the conference with the partner program merged in.
// @Tags schedule
// @Produce html
// @Param conference path string true "Conference code"
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/ [get]
func (c *ScheduleController) Schedule(w http.ResponseWriter, r *http.Request) {
	conference := r.PathValue("conference")
	tts, err := c.Service.ConferenceTimetables(r.Context(), conference)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.render(w, r, domain.PageSchedule, domain.NewSchedulePage(conference, tts))
}

// ScheduleList godoc
// @Summary Schedule list page
// @Description Renders one timetable per schedule, without the partner program.
// @Tags schedule
// @Produce html
// @Param conference path string true "Conference code"
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/list/ [get]
func (c *ScheduleController) ScheduleList(w http.ResponseWriter, r *http.Request) {
	conference := r.PathValue("conference")
	tts, err := c.Service.ListTimetables(r.Context(), conference)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.render(w, r, domain.PageScheduleList, domain.NewSchedulePage(conference, tts))
}

// MySchedule godoc
// @Summary Personal schedule page
// @Description Renders the events the user is interested in or booked, plus purchased partner program fares. Anonymous users are redirected to the login page.
// @Tags schedule
// @Produce html
// @Security BearerAuth
// @Param conference path string true "Conference code"
// @Success 200 {string} string "HTML page"
// @Failure 302 {string} string "redirect to login"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/my-schedule/ [get]
func (c *ScheduleController) MySchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conference := r.PathValue("conference")
	tts, err := c.Service.MyTimetables(r.Context(), conference, userID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.render(w, r, domain.PageMySchedule, domain.NewSchedulePage(conference, tts))
}

// JumpToMySchedule godoc
// @Summary Redirect to the personal schedule
// @Description Redirects to the personal schedule of the default conference.
// @Tags schedule
// @Security BearerAuth
// @Success 302 {string} string "redirect"
// @Router /p3/my-schedule/ [get]
func (c *ScheduleController) JumpToMySchedule(w http.ResponseWriter, r *http.Request) {
	target := "/p3/schedule/" + url.PathEscape(c.DefaultConference) + "/my-schedule/"
	http.Redirect(w, r, target, http.StatusFound)
}

// Search godoc
// @Summary Search events
// @Description Free-text search over the events of the conference. An empty query returns an empty array.
// @Tags schedule
// @Produce json
// @Param conference path string true "Conference code"
// @Param q query string false "Search terms"
// @Success 200 {array} domain.SearchHit
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/search/ [get]
func (c *ScheduleController) Search(w http.ResponseWriter, r *http.Request) {
	hits, err := c.Service.Search(r.Context(), r.PathValue("conference"), r.URL.Query().Get("q"))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, hits)
}

// EmailMySchedule godoc
// @Summary Email the personal schedule
// @Description Sends the personal schedule of the authenticated user to their email address.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param conference path string true "Conference code"
// @Success 202 {object} helpers.APIResponse "data.status: sent"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /p3/schedule/{conference}/my-schedule/email [post]
func (c *ScheduleController) EmailMySchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.EmailMySchedule(r.Context(), r.PathValue("conference"), userID); err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

// render buffers the page so a template error still yields a clean 500.
func (c *ScheduleController) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := c.Pages.Render(&buf, name, data); err != nil {
		c.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (c *ScheduleController) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(c.Logger, w, r, err)
}

// writeServiceError maps domain errors to the JSON error envelope.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
