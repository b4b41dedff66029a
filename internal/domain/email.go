package domain

import (
	"context"
	"time"
)

// Mailer sends emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// MyScheduleDay is one day of the personalized schedule email.
type MyScheduleDay struct {
	Date    time.Time
	Entries []TimetableEntry
}

// MyScheduleEmailData holds data for the personalized schedule email.
type MyScheduleEmailData struct {
	Email       string
	Name        string
	Conference  string
	CalendarURL string
	Days        []MyScheduleDay
}

// EmailService sends domain-level emails.
type EmailService interface {
	SendMySchedule(ctx context.Context, data *MyScheduleEmailData) error
}
