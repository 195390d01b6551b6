package postgres

import (
	"context"
	"log/slog"

	"tar1ksite/internal/domain"
)

// disabledStore is the SubmissionStore used when persistence is
// administratively disabled or unconfigured. Writes are logged no-ops that
// callers must treat as success, so the pipeline runs with zero external
// configuration; the signup count reads as 0, leaving the capacity gate open.
type disabledStore struct {
	logger *slog.Logger
}

// NewDisabledStore returns a no-op SubmissionStore.
func NewDisabledStore(logger *slog.Logger) domain.SubmissionStore {
	return &disabledStore{logger: logger}
}

func (s *disabledStore) UpsertContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	s.skip(ctx, "contact_messages", m.Email)
	return nil
}

func (s *disabledStore) UpsertNewsletterSubscriber(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	s.skip(ctx, "newsletter_subscribers", sub.Email)
	return nil
}

func (s *disabledStore) UpsertGeneralSignup(ctx context.Context, sig *domain.GeneralSignup) error {
	s.skip(ctx, "invite_general_signups", sig.Email)
	return nil
}

func (s *disabledStore) CountGeneralSignups(ctx context.Context) (int, error) {
	return 0, nil
}

func (s *disabledStore) UpsertNov21RSVP(ctx context.Context, r *domain.Nov21RSVP) error {
	s.skip(ctx, "invite_nov21_rsvps", r.Email)
	return nil
}

func (s *disabledStore) GetNov21RSVPByEmail(ctx context.Context, email string) (*domain.Nov21RSVP, error) {
	return nil, domain.ErrNotFound
}

func (s *disabledStore) skip(ctx context.Context, collection, email string) {
	s.logger.WarnContext(ctx, "skipping persistence; storage is disabled or unconfigured",
		"collection", collection,
		"email", email,
	)
}
