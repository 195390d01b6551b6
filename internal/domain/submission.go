package domain

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// Flow identifies one of the submission kinds. Each flow has its own field
// schema and email templates.
type Flow string

const (
	FlowContact       Flow = "contact"
	FlowNewsletter    Flow = "newsletter"
	FlowInviteGeneral Flow = "invite-general"
	FlowInviteNov21   Flow = "invite-nov21"
)

// NormalizeBody resolves a raw request body into a field object. An empty or
// whitespace-only body is treated as an empty object; anything else must be a
// JSON object (arrays and scalars are rejected).
func NormalizeBody(raw []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, ErrInvalidJSON
	}
	switch body := v.(type) {
	case map[string]any:
		return body, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, ErrInvalidFormat
	}
}

// ParseSubmission normalizes raw into an object and extracts the required
// fields as trimmed strings. A field that is absent, non-stringifiable, or
// trims to empty fails the whole submission with ErrMissingFields.
func ParseSubmission(raw []byte, required []string) (map[string]string, error) {
	body, err := NormalizeBody(raw)
	if err != nil {
		return nil, err
	}

	// Presence first, then trim, so whitespace-only values are also rejected.
	for _, field := range required {
		if v, ok := body[field]; !ok || stringify(v) == "" {
			return nil, ErrMissingFields
		}
	}

	sanitized := make(map[string]string, len(required))
	for _, field := range required {
		value := strings.TrimSpace(stringify(body[field]))
		if value == "" {
			return nil, ErrMissingFields
		}
		sanitized[field] = value
	}
	return sanitized, nil
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// ContactPayload is a validated contact-form submission.
type ContactPayload struct {
	Name    string
	Email   string
	Message string
}

// ParseContactPayload validates a raw contact-form body.
func ParseContactPayload(raw []byte) (*ContactPayload, error) {
	fields, err := ParseSubmission(raw, []string{"name", "email", "message"})
	if err != nil {
		return nil, err
	}
	return &ContactPayload{
		Name:    fields["name"],
		Email:   fields["email"],
		Message: fields["message"],
	}, nil
}

// NewsletterPayload is a validated newsletter signup.
type NewsletterPayload struct {
	Email string
}

// ParseNewsletterPayload validates a raw newsletter body.
func ParseNewsletterPayload(raw []byte) (*NewsletterPayload, error) {
	fields, err := ParseSubmission(raw, []string{"email"})
	if err != nil {
		return nil, err
	}
	return &NewsletterPayload{Email: fields["email"]}, nil
}

// GeneralInvitePayload is a validated general-invite signup.
type GeneralInvitePayload struct {
	FullName  string
	Email     string
	Phone     string
	Community string
}

// ParseGeneralInvitePayload validates a raw general-invite body.
func ParseGeneralInvitePayload(raw []byte) (*GeneralInvitePayload, error) {
	fields, err := ParseSubmission(raw, []string{"fullName", "email", "phone", "community"})
	if err != nil {
		return nil, err
	}
	return &GeneralInvitePayload{
		FullName:  fields["fullName"],
		Email:     fields["email"],
		Phone:     fields["phone"],
		Community: fields["community"],
	}, nil
}

// FirstName returns the first whitespace-separated word of the full name, for
// use in guest-facing email copy.
func (p *GeneralInvitePayload) FirstName() string {
	return firstName(p.FullName)
}

// Nov21InvitePayload is a validated RSVP for the dated (Nov 21) event.
type Nov21InvitePayload struct {
	FullName    string
	Email       string
	Phone       string
	Designation string
}

// ParseNov21InvitePayload validates a raw dated-invite body.
func ParseNov21InvitePayload(raw []byte) (*Nov21InvitePayload, error) {
	fields, err := ParseSubmission(raw, []string{"fullName", "email", "phone", "designation"})
	if err != nil {
		return nil, err
	}
	return &Nov21InvitePayload{
		FullName:    fields["fullName"],
		Email:       fields["email"],
		Phone:       fields["phone"],
		Designation: fields["designation"],
	}, nil
}

// FirstName returns the first whitespace-separated word of the full name.
func (p *Nov21InvitePayload) FirstName() string {
	return firstName(p.FullName)
}

func firstName(full string) string {
	if parts := strings.Fields(full); len(parts) > 0 {
		return parts[0]
	}
	return full
}

// ContactService handles contact-form submissions end to end.
type ContactService interface {
	Submit(ctx context.Context, raw []byte) error
}

// NewsletterService handles newsletter signups end to end.
type NewsletterService interface {
	Subscribe(ctx context.Context, raw []byte) error
}
