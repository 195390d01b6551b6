package services

import (
	"context"
	"fmt"
	"log/slog"

	"tar1ksite/internal/domain"
)

type generalInviteService struct {
	logger    *slog.Logger
	store     domain.SubmissionStore
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	from      string
	operators []string
}

// NewGeneralInviteService creates the capacity-gated general-invite service.
func NewGeneralInviteService(
	logger *slog.Logger,
	store domain.SubmissionStore,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	from string,
	operators []string,
) domain.GeneralInviteService {
	return &generalInviteService{
		logger:    logger,
		store:     store,
		mailer:    mailer,
		renderer:  renderer,
		from:      from,
		operators: operators,
	}
}

// Status computes the signup status from the current stored count. Never
// cached; a disabled store counts 0 and leaves the gate open.
func (s *generalInviteService) Status(ctx context.Context) (domain.SignupStatus, error) {
	count, err := s.store.CountGeneralSignups(ctx)
	if err != nil {
		return domain.SignupStatus{}, fmt.Errorf("fetch signup count: %w", err)
	}
	return domain.NewSignupStatus(count), nil
}

// Submit runs the pipeline: validate, capacity gate, persist, notify
// (organizer first, then guest). The gate runs strictly before persistence;
// the check-then-act pair is not atomic, so concurrent submissions near the
// limit can overshoot it.
func (s *generalInviteService) Submit(ctx context.Context, raw []byte) error {
	payload, err := domain.ParseGeneralInvitePayload(raw)
	if err != nil {
		return err
	}

	status, err := s.Status(ctx)
	if err != nil {
		return err
	}
	if status.IsClosed {
		return domain.ErrSignupLimitReached
	}

	if err := s.store.UpsertGeneralSignup(ctx, &domain.GeneralSignup{
		FullName:  payload.FullName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Community: payload.Community,
	}); err != nil {
		return fmt.Errorf("store signup: %w", err)
	}

	subject, html, text, err := s.renderer.Render("invite_general_organizer", payload)
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
		return fmt.Errorf("send organizer notification: %w", err)
	}

	subject, html, text, err = s.renderer.Render("invite_general_guest", payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "render guest confirmation failed", "email", payload.Email, "err", err)
		return nil
	}
	if err := s.mailer.Send(ctx, &domain.EmailMessage{
		From:    s.from,
		To:      []string{payload.Email},
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		s.logger.ErrorContext(ctx, "send guest confirmation failed", "email", payload.Email, "err", err)
	}
	return nil
}
