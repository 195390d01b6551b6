package services

import (
	"context"
	"fmt"
	"log/slog"

	"tar1ksite/internal/domain"
)

type newsletterService struct {
	logger    *slog.Logger
	store     domain.SubmissionStore
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	audience  domain.AudienceRegistrar
	from      string
	operators []string
}

// NewNewsletterService creates a NewsletterService. When audience is non-nil,
// signups are registered into the managed list instead of notifying the
// operators; the guest welcome email is sent either way.
func NewNewsletterService(
	logger *slog.Logger,
	store domain.SubmissionStore,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	audience domain.AudienceRegistrar,
	from string,
	operators []string,
) domain.NewsletterService {
	return &newsletterService{
		logger:    logger,
		store:     store,
		mailer:    mailer,
		renderer:  renderer,
		audience:  audience,
		from:      from,
		operators: operators,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, raw []byte) error {
	payload, err := domain.ParseNewsletterPayload(raw)
	if err != nil {
		return err
	}

	if err := s.store.UpsertNewsletterSubscriber(ctx, &domain.NewsletterSubscriber{
		Email: payload.Email,
	}); err != nil {
		return fmt.Errorf("store subscriber: %w", err)
	}

	if s.audience != nil {
		if err := s.audience.RegisterContact(ctx, payload.Email); err != nil {
			return fmt.Errorf("register audience contact: %w", err)
		}
	} else {
		subject, html, text, err := s.renderer.Render("newsletter_notify", payload)
		if err != nil {
			return fmt.Errorf("render operator notification: %w", err)
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
	}

	subject, html, text, err := s.renderer.Render("newsletter_welcome", payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "render welcome email failed", "email", payload.Email, "err", err)
		return nil
	}
	if err := s.mailer.Send(ctx, &domain.EmailMessage{
		From:    s.from,
		To:      []string{payload.Email},
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		s.logger.ErrorContext(ctx, "send welcome email failed", "email", payload.Email, "err", err)
	}
	return nil
}
