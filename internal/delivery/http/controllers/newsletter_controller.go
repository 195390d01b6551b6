package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/domain"
)

type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{
		Logger:  logger,
		Service: svc,
	}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Validates the email, stores the subscriber, and registers it into the managed audience list when one is configured, notifying the operators otherwise.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body object true "email"
// @Success 200 {object} map[string]any "success true with confirmation message"
// @Failure 400 {object} helpers.ErrorResponse "validation failure"
// @Failure 500 {object} helpers.ErrorResponse "persistence or delivery failure"
// @Router /api/newsletter [post]
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, domain.ErrInvalidFormat.Error())
		return
	}

	if err := c.Service.Subscribe(r.Context(), raw); err != nil {
		writeSubmissionError(c.Logger, w, r, err, "Failed to process subscription")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Subscribed! Welcome to the list.")
}
