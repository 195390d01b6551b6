package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/domain"
)

type CheckinController struct {
	Logger  *slog.Logger
	Service domain.CheckinService
}

func NewCheckinController(logger *slog.Logger, svc domain.CheckinService) *CheckinController {
	return &CheckinController{
		Logger:  logger,
		Service: svc,
	}
}

// Verify godoc
// @Summary Verify a scanned check-in QR payload
// @Description Verifies the payload signature and matches its token against the stored RSVP. A token mismatch is indistinguishable from an unknown guest.
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "qrPayload"
// @Success 200 {object} map[string]any "success true with guest details"
// @Failure 400 {object} helpers.ErrorResponse "missing or invalid payload"
// @Failure 401 {object} helpers.ErrorResponse "missing or wrong door passcode"
// @Failure 404 {object} helpers.ErrorResponse "no matching RSVP"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/checkin/verify [post]
func (c *CheckinController) Verify(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, domain.ErrInvalidFormat.Error())
		return
	}
	fields, err := domain.ParseSubmission(raw, []string{"qrPayload"})
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rsvp, err := c.Service.Verify(r.Context(), fields["qrPayload"])
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCheckinPayload):
			helpers.WriteError(w, http.StatusBadRequest, "Invalid check-in code")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteError(w, http.StatusNotFound, "No matching RSVP")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteErrorDetails(w, http.StatusInternalServerError, "Failed to verify check-in", err.Error())
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"fullName":    rsvp.FullName,
		"email":       rsvp.Email,
		"designation": rsvp.Designation,
	})
}
