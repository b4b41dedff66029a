package services

import (
	"context"
	"fmt"
	"log/slog"

	"conferenceschedule/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendMySchedule sends the personalized schedule using the "my_schedule" template.
func (s *emailService) SendMySchedule(ctx context.Context, data *domain.MyScheduleEmailData) error {
	if data == nil {
		return fmt.Errorf("my schedule email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("my_schedule", data)
	if err != nil {
		return fmt.Errorf("failed to render my_schedule template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send my schedule email: %w", err)
	}
	s.logger.InfoContext(ctx, "my schedule email sent", "to", data.Email, "conference", data.Conference, "days", len(data.Days))
	return nil
}
