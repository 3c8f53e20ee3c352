package services

import (
	"context"
	"fmt"

	"gameonbaby/internal/domain"
)

const (
	templateRegistrationConfirmation = "registration_confirmation"
	templateWaitlistPromotion        = "waitlist_promotion"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) send(to, templateName string, data any) error {
	subject, html, text, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}
	if err := s.mailer.Send(to, subject, html, text); err != nil {
		return fmt.Errorf("send %s: %w", templateName, err)
	}
	return nil
}

func (s *emailService) SendRegistrationConfirmation(_ context.Context, data *domain.RegistrationConfirmationEmailData) error {
	return s.send(data.Email, templateRegistrationConfirmation, data)
}

func (s *emailService) SendWaitlistPromotion(_ context.Context, data *domain.WaitlistPromotionEmailData) error {
	return s.send(data.Email, templateWaitlistPromotion, data)
}
