package services

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"tar1ksite/internal/domain"
)

type nov21InviteService struct {
	logger    *slog.Logger
	store     domain.SubmissionStore
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	codec     domain.CheckinCodec
	from      string
	operators []string
}

// NewNov21InviteService creates the dated-invite RSVP service. Each accepted
// RSVP gets a signed check-in code rendered as a QR image; token, payload,
// and image are stored with the record for verification at the door.
func NewNov21InviteService(
	logger *slog.Logger,
	store domain.SubmissionStore,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	codec domain.CheckinCodec,
	from string,
	operators []string,
) domain.Nov21InviteService {
	return &nov21InviteService{
		logger:    logger,
		store:     store,
		mailer:    mailer,
		renderer:  renderer,
		codec:     codec,
		from:      from,
		operators: operators,
	}
}

func (s *nov21InviteService) Submit(ctx context.Context, raw []byte) error {
	payload, err := domain.ParseNov21InvitePayload(raw)
	if err != nil {
		return err
	}

	code, err := s.codec.Issue(domain.FlowInviteNov21, payload.Email)
	if err != nil {
		return fmt.Errorf("issue check-in code: %w", err)
	}

	if err := s.store.UpsertNov21RSVP(ctx, &domain.Nov21RSVP{
		FullName:     payload.FullName,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Designation:  payload.Designation,
		CheckinToken: code.Token,
		QRPayload:    code.Payload,
		QRImagePNG:   code.ImagePNG,
	}); err != nil {
		return fmt.Errorf("store rsvp: %w", err)
	}

	data := &domain.Nov21EmailData{
		FullName:       payload.FullName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Designation:    payload.Designation,
		QRToken:        code.Token,
		QRImageDataURL: template.URL(code.ImageDataURL),
	}

	subject, html, text, err := s.renderer.Render("invite_nov21_organizer", data)
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

	subject, html, text, err = s.renderer.Render("invite_nov21_guest", data)
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
