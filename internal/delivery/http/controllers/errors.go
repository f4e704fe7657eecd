package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventbooker/internal/delivery/http/helpers"
	"eventbooker/internal/domain"
)

// writeDomainError maps a service error onto the HTTP envelope. Validation
// kinds are 400, missing targets and dangling references 404, uniqueness
// collisions 409, everything else 500 (logged).
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrFieldLength),
		errors.Is(err, domain.ErrInvalidEnum),
		errors.Is(err, domain.ErrEmptySequence),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrInvalidTimeValue),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrMalformedReference):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrDanglingReference),
		errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateSlug),
		errors.Is(err, domain.ErrDuplicateBooking):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
