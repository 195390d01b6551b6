package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit the contact form
// @Description Validates the contact payload, stores the message, and notifies the operators with reply-to set to the sender.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body object true "name, email, message"
// @Success 200 {object} map[string]any "success true with confirmation message"
// @Failure 400 {object} helpers.ErrorResponse "validation failure"
// @Failure 500 {object} helpers.ErrorResponse "persistence or delivery failure"
// @Router /api/contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, domain.ErrInvalidFormat.Error())
		return
	}

	if err := c.Service.Submit(r.Context(), raw); err != nil {
		writeSubmissionError(c.Logger, w, r, err, "Failed to send message")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Message sent! We'll get back to you soon.")
}
