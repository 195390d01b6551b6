package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRequirePasscode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("door-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		hash       string
		authHeader string
		wantStatus int
		wantError  string
		nextCalled bool
	}{
		{
			name:       "valid passcode calls next",
			hash:       string(hash),
			authHeader: "Bearer door-secret",
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "not configured",
			hash:       "",
			authHeader: "Bearer door-secret",
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "Check-in verification is not configured",
		},
		{
			name:       "missing authorization header",
			hash:       string(hash),
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "no bearer prefix",
			hash:       string(hash),
			authHeader: "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "empty passcode after bearer",
			hash:       string(hash),
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "wrong passcode",
			hash:       string(hash),
			authHeader: "Bearer wrong-secret",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}
			handler := RequirePasscode(tt.hash)(next)

			req := httptest.NewRequest(http.MethodPost, "http://test/api/checkin/verify", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.wantError != "" {
				var body map[string]any
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}
