package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tar1ksite/internal/domain"
)

type submissionStore struct {
	DB *sql.DB
}

// NewSubmissionStore returns a SubmissionStore backed by Postgres. Every
// upsert conflicts on email and overwrites the prior row (last write wins).
func NewSubmissionStore(db *sql.DB) domain.SubmissionStore {
	return &submissionStore{DB: db}
}

func (r *submissionStore) UpsertContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (email, name, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, message = EXCLUDED.message, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, m.Email, m.Name, m.Message, time.Now()); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

func (r *submissionStore) UpsertNewsletterSubscriber(ctx context.Context, s *domain.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (email) DO UPDATE
		SET updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, s.Email, time.Now()); err != nil {
		return fmt.Errorf("failed to store subscriber: %w", err)
	}
	return nil
}

func (r *submissionStore) UpsertGeneralSignup(ctx context.Context, s *domain.GeneralSignup) error {
	query := `
		INSERT INTO invite_general_signups (email, full_name, phone, community, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name, phone = EXCLUDED.phone,
		    community = EXCLUDED.community, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, s.Email, s.FullName, s.Phone, s.Community, time.Now()); err != nil {
		return fmt.Errorf("failed to store signup: %w", err)
	}
	return nil
}

func (r *submissionStore) CountGeneralSignups(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM invite_general_signups`
	if err := r.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to fetch signup count: %w", err)
	}
	return count, nil
}

func (r *submissionStore) UpsertNov21RSVP(ctx context.Context, rsvp *domain.Nov21RSVP) error {
	query := `
		INSERT INTO invite_nov21_rsvps (email, full_name, phone, designation, checkin_token, qr_payload, qr_image_png, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name, phone = EXCLUDED.phone,
		    designation = EXCLUDED.designation, checkin_token = EXCLUDED.checkin_token,
		    qr_payload = EXCLUDED.qr_payload, qr_image_png = EXCLUDED.qr_image_png,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query,
		rsvp.Email, rsvp.FullName, rsvp.Phone, rsvp.Designation,
		rsvp.CheckinToken, rsvp.QRPayload, rsvp.QRImagePNG, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store rsvp: %w", err)
	}
	return nil
}

func (r *submissionStore) GetNov21RSVPByEmail(ctx context.Context, email string) (*domain.Nov21RSVP, error) {
	query := `
		SELECT email, full_name, phone, designation, checkin_token, qr_payload, qr_image_png
		FROM invite_nov21_rsvps
		WHERE email = $1
	`
	rsvp := &domain.Nov21RSVP{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&rsvp.Email, &rsvp.FullName, &rsvp.Phone, &rsvp.Designation,
		&rsvp.CheckinToken, &rsvp.QRPayload, &rsvp.QRImagePNG)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rsvp: %w", err)
	}
	return rsvp, nil
}
