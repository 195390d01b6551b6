package domain

import "context"

// GeneralSignupLimit is the fixed maximum number of accepted general-invite
// signups. Policy constant, not derived from storage.
const GeneralSignupLimit = 15

// SignupStatus describes current general-invite capacity. It is computed
// fresh on every read and never cached across requests.
type SignupStatus struct {
	Limit     int  `json:"limit"`
	Count     int  `json:"count"`
	Remaining int  `json:"remaining"`
	IsClosed  bool `json:"isClosed"`
}

// NewSignupStatus derives a SignupStatus from the current stored count.
func NewSignupStatus(count int) SignupStatus {
	remaining := GeneralSignupLimit - count
	if remaining < 0 {
		remaining = 0
	}
	return SignupStatus{
		Limit:     GeneralSignupLimit,
		Count:     count,
		Remaining: remaining,
		IsClosed:  count >= GeneralSignupLimit,
	}
}

// GeneralInviteService handles the capacity-gated general-invite flow.
type GeneralInviteService interface {
	Status(ctx context.Context) (SignupStatus, error)
	Submit(ctx context.Context, raw []byte) error
}

// Nov21InviteService handles the dated-invite RSVP flow, including check-in
// code generation.
type Nov21InviteService interface {
	Submit(ctx context.Context, raw []byte) error
}
