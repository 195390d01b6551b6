package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"tar1ksite/internal/delivery/http/helpers"
	"tar1ksite/internal/domain"
)

// writeSubmissionError maps a pipeline failure to the response contract:
// validation errors → 400 with the specific message, capacity → 409, anything
// else → 500 with the flow's generic message and the cause in details.
func writeSubmissionError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	switch {
	case domain.IsValidationError(err):
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSignupLimitReached):
		helpers.WriteError(w, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteErrorDetails(w, http.StatusInternalServerError, failMessage, err.Error())
	}
}
