package domain

import "context"

// ContactMessage is the persisted form of a contact submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// NewsletterSubscriber is the persisted form of a newsletter signup.
type NewsletterSubscriber struct {
	Email string
}

// GeneralSignup is the persisted form of a general-invite submission.
type GeneralSignup struct {
	FullName  string
	Email     string
	Phone     string
	Community string
}

// Nov21RSVP is the persisted form of a dated-invite submission, including the
// door check-in token and the rendered QR material.
type Nov21RSVP struct {
	FullName     string
	Email        string
	Phone        string
	Designation  string
	CheckinToken string
	QRPayload    string
	QRImagePNG   []byte
}

// SubmissionStore is the persistence port shared by all four submission
// flows. Every upsert is keyed by email: a repeat submission overwrites the
// prior record (last write wins). Implementations backed by nothing (storage
// disabled) must treat every write as a logged no-op success.
type SubmissionStore interface {
	UpsertContactMessage(ctx context.Context, m *ContactMessage) error
	UpsertNewsletterSubscriber(ctx context.Context, s *NewsletterSubscriber) error
	UpsertGeneralSignup(ctx context.Context, s *GeneralSignup) error
	CountGeneralSignups(ctx context.Context) (int, error)
	UpsertNov21RSVP(ctx context.Context, r *Nov21RSVP) error
	GetNov21RSVPByEmail(ctx context.Context, email string) (*Nov21RSVP, error)
}
