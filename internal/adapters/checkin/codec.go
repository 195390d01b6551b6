// Package checkin issues and verifies signed door check-in codes.
package checkin

import (
	"encoding/base64"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"tar1ksite/internal/domain"
)

const qrImageSize = 256

type checkinClaims struct {
	jwt.RegisteredClaims
	Flow  string `json:"flow"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type codec struct {
	secret []byte
}

// NewCodec returns a CheckinCodec that signs QR payloads with HS256 using the
// given secret. Payloads carry the flow name, the submitter email, and a
// random unique token; possession of the email alone is not enough to pass
// verification at the door.
func NewCodec(secret string) domain.CheckinCodec {
	return &codec{secret: []byte(secret)}
}

func (c *codec) Issue(flow domain.Flow, email string) (*domain.CheckinCode, error) {
	token := uuid.NewString()
	claims := checkinClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
		Flow:             string(flow),
		Email:            email,
		Token:            token,
	}
	payload, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign check-in payload: %w", err)
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return &domain.CheckinCode{
		Token:        token,
		Payload:      payload,
		ImagePNG:     png,
		ImageDataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

func (c *codec) Verify(payload string) (*domain.CheckinClaims, error) {
	claims := &checkinClaims{}
	_, err := jwt.ParseWithClaims(payload, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCheckinPayload, err)
	}
	if claims.Flow == "" || claims.Email == "" || claims.Token == "" {
		return nil, domain.ErrInvalidCheckinPayload
	}
	return &domain.CheckinClaims{
		Flow:  domain.Flow(claims.Flow),
		Email: claims.Email,
		Token: claims.Token,
	}, nil
}
