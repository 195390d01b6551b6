package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/domain"
)

type InviteNov21Controller struct {
	Logger  *slog.Logger
	Service domain.Nov21InviteService
}

func NewInviteNov21Controller(logger *slog.Logger, svc domain.Nov21InviteService) *InviteNov21Controller {
	return &InviteNov21Controller{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit an RSVP for the Nov 21 event
// @Description Validates the payload, issues a signed QR check-in code, stores the RSVP keyed by email, and sends the organizer notification followed by the guest confirmation carrying the QR image.
// @Tags invite
// @Accept json
// @Produce json
// @Param body body object true "fullName, email, phone, designation"
// @Success 200 {object} map[string]any "success true with confirmation message"
// @Failure 400 {object} helpers.ErrorResponse "validation failure"
// @Failure 500 {object} helpers.ErrorResponse "persistence or delivery failure"
// @Router /api/invite-nov21 [post]
func (c *InviteNov21Controller) Submit(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, domain.ErrInvalidFormat.Error())
		return
	}

	if err := c.Service.Submit(r.Context(), raw); err != nil {
		writeSubmissionError(c.Logger, w, r, err, "Failed to send RSVP")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "RSVP submitted! Check your inbox for confirmation.")
}
