package domain

import (
	"context"
	"html/template"
)

// EmailMessage is a single outgoing email. Messages are never persisted;
// delivery confirmation is not tracked.
type EmailMessage struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// Nov21EmailData holds data for the dated-invite email templates. The image
// data URL is typed so the HTML template does not sanitize the inline QR.
type Nov21EmailData struct {
	FullName       string
	Email          string
	Phone          string
	Designation    string
	QRToken        string
	QRImageDataURL template.URL
}

// FirstName returns the first whitespace-separated word of the full name.
func (d *Nov21EmailData) FirstName() string {
	return firstName(d.FullName)
}

// AudienceRegistrar registers an address into a managed mailing list
// (infrastructure port; used by the newsletter flow when a list is configured).
type AudienceRegistrar interface {
	RegisterContact(ctx context.Context, email string) error
}
