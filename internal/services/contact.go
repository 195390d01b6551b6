package services

import (
	"context"
	"fmt"
	"log/slog"

	"tar1ksite/internal/domain"
)

type contactService struct {
	logger    *slog.Logger
	store     domain.SubmissionStore
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	from      string
	operators []string
}

// NewContactService creates a ContactService with the given store, mailer,
// and addressing.
func NewContactService(
	logger *slog.Logger,
	store domain.SubmissionStore,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	from string,
	operators []string,
) domain.ContactService {
	return &contactService{
		logger:    logger,
		store:     store,
		mailer:    mailer,
		renderer:  renderer,
		from:      from,
		operators: operators,
	}
}

// Submit validates a raw contact body, stores the message, and sends the
// operator notification followed by the guest acknowledgement. Validation
// runs before any side effect; a guest-send failure after the operator send
// succeeded does not fail the submission.
func (s *contactService) Submit(ctx context.Context, raw []byte) error {
	payload, err := domain.ParseContactPayload(raw)
	if err != nil {
		return err
	}

	if err := s.store.UpsertContactMessage(ctx, &domain.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	}); err != nil {
		return fmt.Errorf("store contact message: %w", err)
	}

	subject, html, text, err := s.renderer.Render("contact_organizer", payload)
	if err != nil {
		return fmt.Errorf("render organizer email: %w", err)
	}
	if err := s.mailer.Send(ctx, &domain.EmailMessage{
		From:    s.from,
		To:      s.operators,
		ReplyTo: payload.Email,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		return fmt.Errorf("send operator notification: %w", err)
	}

	subject, html, text, err = s.renderer.Render("contact_ack", payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "render guest acknowledgement failed", "email", payload.Email, "err", err)
		return nil
	}
	if err := s.mailer.Send(ctx, &domain.EmailMessage{
		From:    s.from,
		To:      []string{payload.Email},
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		s.logger.ErrorContext(ctx, "send guest acknowledgement failed", "email", payload.Email, "err", err)
	}
	return nil
}
