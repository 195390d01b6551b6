package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tar1ksite/internal/delivery/http/controllers"
	"tar1ksite/internal/domain"
)

type stubSubmitService struct{}

func (stubSubmitService) Submit(context.Context, []byte) error { return nil }

type stubNewsletterService struct{}

func (stubNewsletterService) Subscribe(context.Context, []byte) error { return nil }

type stubGeneralInviteService struct{}

func (stubGeneralInviteService) Status(context.Context) (domain.SignupStatus, error) {
	return domain.NewSignupStatus(3), nil
}

func (stubGeneralInviteService) Submit(context.Context, []byte) error { return nil }

type stubCheckinService struct{}

func (stubCheckinService) Verify(context.Context, string) (*domain.Nov21RSVP, error) {
	return nil, domain.ErrNotFound
}

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(
		controllers.NewContactController(logger, stubSubmitService{}),
		controllers.NewNewsletterController(logger, stubNewsletterService{}),
		controllers.NewInviteGeneralController(logger, stubGeneralInviteService{}),
		controllers.NewInviteNov21Controller(logger, stubSubmitService{}),
		controllers.NewCheckinController(logger, stubCheckinService{}),
		"",
	)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/contact"},
		{http.MethodDelete, "/api/contact"},
		{http.MethodGet, "/api/newsletter"},
		{http.MethodPut, "/api/invite-general"},
		{http.MethodGet, "/api/invite-nov21"},
		{http.MethodGet, "/api/checkin/verify"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, "Method Not Allowed", body["error"])
		})
	}
}

func TestRouter_KnownRoutes(t *testing.T) {
	mux := newTestRouter(t)

	t.Run("signup status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/api/invite-general", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var status domain.SignupStatus
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&status))
		assert.Equal(t, domain.GeneralSignupLimit, status.Limit)
		assert.Equal(t, 3, status.Count)
	})

	t.Run("health check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/healthz", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("checkin not configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "http://test/api/checkin/verify", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/api/unknown", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
