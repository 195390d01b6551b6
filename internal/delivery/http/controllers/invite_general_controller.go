package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/domain"
)

type InviteGeneralController struct {
	Logger  *slog.Logger
	Service domain.GeneralInviteService
}

func NewInviteGeneralController(logger *slog.Logger, svc domain.GeneralInviteService) *InviteGeneralController {
	return &InviteGeneralController{
		Logger:  logger,
		Service: svc,
	}
}

// Status godoc
// @Summary Read general-invite signup capacity
// @Description Returns the fixed limit, current stored count, remaining seats, and whether signups are closed. Computed fresh on every request.
// @Tags invite
// @Produce json
// @Success 200 {object} map[string]any "success true with limit, count, remaining, isClosed"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/invite-general [get]
func (c *InviteGeneralController) Status(w http.ResponseWriter, r *http.Request) {
	status, err := c.Service.Status(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteErrorDetails(w, http.StatusInternalServerError, "Failed to load signup status", err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"limit":     status.Limit,
		"count":     status.Count,
		"remaining": status.Remaining,
		"isClosed":  status.IsClosed,
	})
}

// Submit godoc
// @Summary Submit a general-invite signup
// @Description Validates the payload, rejects with 409 when the signup limit is reached, stores the signup keyed by email, and sends the organizer notification followed by the guest confirmation.
// @Tags invite
// @Accept json
// @Produce json
// @Param body body object true "fullName, email, phone, community"
// @Success 200 {object} map[string]any "success true with confirmation message"
// @Failure 400 {object} helpers.ErrorResponse "validation failure"
// @Failure 409 {object} helpers.ErrorResponse "signup limit reached"
// @Failure 500 {object} helpers.ErrorResponse "persistence or delivery failure"
// @Router /api/invite-general [post]
func (c *InviteGeneralController) Submit(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, domain.ErrInvalidFormat.Error())
		return
	}

	if err := c.Service.Submit(r.Context(), raw); err != nil {
		writeSubmissionError(c.Logger, w, r, err, "Failed to process signup")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Signup submitted! Check your inbox for confirmation.")
}
