package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rshade/carbonlens/internal/engine"
)

// APIError is the JSON error body returned by every endpoint.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

// ToHTTPError wraps the error in the response envelope.
func (e *APIError) ToHTTPError() gin.H {
	return gin.H{"error": e}
}

func newAPIError(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

var errInvalidPayload = newAPIError("INVALID_PAYLOAD", "Invalid footprint payload", http.StatusBadRequest)

// mapAssessError converts an engine error into an API error. Validation
// failures keep their message so callers can see which field was rejected.
func mapAssessError(err error) *APIError {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		return newAPIError("INVALID_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrRenderFailed):
		return newAPIError("RENDER_FAILED", "Failed to render footprint output", http.StatusInternalServerError)
	default:
		return newAPIError("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	}
}
