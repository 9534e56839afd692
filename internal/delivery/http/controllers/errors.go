package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventsportal/internal/delivery/http/helpers"
	"eventsportal/internal/domain"
	"eventsportal/internal/validation"
)

// writeServiceError maps service errors onto the response envelope.
// Anything unrecognised is logged and answered with 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, fieldErrs.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, domain.ErrDuplicateEmail.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, domain.ErrInvalidCredentials.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
	}
}
