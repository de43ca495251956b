package domain

import "context"

// Mailer sends a single email. Implementations: AWS SES, noop.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html, and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData is the template data for the registration confirmation email.
type RegistrationEmailData struct {
	Email       string
	StudentName string
	EventTitle  string
	EventDate   string
	Location    string
}

// EmailService sends application emails. Sending is best-effort; callers log
// failures and do not roll back the triggering operation.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
}
