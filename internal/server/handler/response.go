// Package handler exposes the record service over HTTP. Handlers translate
// between JSON and the service layer; domain errors map to status codes
// here and nowhere else.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/logging"
)

// ErrorResponse is the error shape returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, log logging.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already gone; all we can do is log.
			log.Error(context.Background(), "encoding response", "error", err)
		}
	}
}

// writeError maps apperror sentinels to HTTP statuses. Unknown errors become
// an opaque 500 so internals never leak to the client.
func writeError(w http.ResponseWriter, log logging.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		}

		writeJSON(w, log, status, ErrorResponse{Error: errorType, Message: appErr.Message})
		return
	}

	log.Error(context.Background(), "unhandled error", "error", err)
	writeJSON(w, log, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}
