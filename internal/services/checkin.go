package services

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"

	"tar1ksite/internal/domain"
)

type checkinService struct {
	store domain.SubmissionStore
	codec domain.CheckinCodec
}

// NewCheckinService creates the door check-in verification service.
func NewCheckinService(store domain.SubmissionStore, codec domain.CheckinCodec) domain.CheckinService {
	return &checkinService{store: store, codec: codec}
}

// Verify checks a scanned QR payload: signature, flow, and a constant-time
// token comparison against the stored RSVP. A token mismatch reports the same
// ErrNotFound as an unknown email, so a forged payload learns nothing.
func (s *checkinService) Verify(ctx context.Context, qrPayload string) (*domain.Nov21RSVP, error) {
	claims, err := s.codec.Verify(qrPayload)
	if err != nil {
		return nil, err
	}
	if claims.Flow != domain.FlowInviteNov21 {
		return nil, domain.ErrInvalidCheckinPayload
	}

	rsvp, err := s.store.GetNov21RSVPByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetch rsvp: %w", err)
	}

	if !hmac.Equal([]byte(rsvp.CheckinToken), []byte(claims.Token)) {
		return nil, domain.ErrNotFound
	}
	return rsvp, nil
}
