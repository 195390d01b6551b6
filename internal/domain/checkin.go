package domain

import "context"

// CheckinCode is the generated door check-in material for an RSVP: a random
// unique token, the signed payload encoding it, and that payload rendered as
// a QR image.
type CheckinCode struct {
	Token        string
	Payload      string
	ImagePNG     []byte
	ImageDataURL string
}

// CheckinClaims are the verified contents of a scanned QR payload.
type CheckinClaims struct {
	Flow  Flow
	Email string
	Token string
}

// CheckinCodec issues and verifies signed check-in payloads. Possession of
// the email alone proves nothing: verification requires the token embedded in
// the payload to match the one in storage.
type CheckinCodec interface {
	Issue(flow Flow, email string) (*CheckinCode, error)
	Verify(payload string) (*CheckinClaims, error)
}

// CheckinService verifies a scanned QR payload against the stored RSVP.
type CheckinService interface {
	Verify(ctx context.Context, qrPayload string) (*Nov21RSVP, error)
}
