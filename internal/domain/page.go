package domain

import "io"

// Page template names.
const (
	PageSchedule     = "schedule.html"
	PageScheduleList = "schedule_list.html"
	PageMySchedule   = "my_schedule.html"
)

// PageRenderer renders a named HTML template.
type PageRenderer interface {
	Render(w io.Writer, name string, data any) error
}
