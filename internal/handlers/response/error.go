package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/golf-2025.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// FromError maps service errors to what the caller is told.
// Judge and store failures are retryable and say so.
func FromError(err error) ErrorMessage {
	switch {
	case errors.Is(err, errs.ErrChallengeNotFound):
		return ErrorMessage{Message: errs.ErrChallengeNotFound.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.ErrLanguageNotFound):
		return ErrorMessage{Message: errs.ErrLanguageNotFound.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.ErrJudgeUnavailable):
		return ErrorMessage{Message: errs.ErrJudgeUnavailable.Error(), StatusCode: http.StatusServiceUnavailable}
	case errors.Is(err, errs.ErrStoreConflict):
		return ErrorMessage{Message: errs.ErrStoreConflict.Error(), StatusCode: http.StatusServiceUnavailable}
	case errors.Is(err, errs.ErrStoreUnavailable):
		return ErrorMessage{Message: errs.ErrStoreUnavailable.Error(), StatusCode: http.StatusServiceUnavailable}
	default:
		return ErrorMessage{Message: errs.InternalError.Error(), StatusCode: http.StatusInternalServerError}
	}
}
