package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData holds data for the registration confirmation email.
type RegistrationConfirmationEmailData struct {
	Email      string
	FirstName  string
	EventTitle string
	EventDate  string
	EventPlace string
	QRCode     string // base64 PNG data URI, empty for cash payments
}

// WaitlistPromotionEmailData holds data for the waiting-list promotion notice.
type WaitlistPromotionEmailData struct {
	Email      string
	FirstName  string
	EventTitle string
	EventDate  string
	EventPlace string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
	SendWaitlistPromotion(ctx context.Context, data *WaitlistPromotionEmailData) error
}
