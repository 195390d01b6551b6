package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tar1ksite/internal/delivery/http/helpers"
)

// RequirePasscode returns a wrapper that checks the door-staff passcode in
// the Authorization header against its bcrypt hash. An empty hash means
// check-in is not configured: the endpoint answers 503 instead of letting
// anyone through. On failure it responds without calling next.
func RequirePasscode(passcodeHash string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if passcodeHash == "" {
				helpers.WriteError(w, http.StatusServiceUnavailable, "Check-in verification is not configured")
				return
			}
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			passcode := strings.TrimSpace(auth[len(prefix):])
			if passcode == "" {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(passcodeHash), []byte(passcode)); err != nil {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next(w, r)
		}
	}
}
