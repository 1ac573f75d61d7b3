package utils

import (
	"github.com/gin-gonic/gin"
)

// APIError is the standardized JSON error envelope. Internal error
// text never goes into Message; Details is for operator-facing codes,
// not exception dumps.
type APIError struct {
	StatusCode int    `json:"-"` // HTTP status, not part of the body
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// NewAPIError creates a new APIError instance.
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

// RespondWithError sends a standardized JSON error response and stops
// further handler processing.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}

// Application error codes returned by this API. Form errors render as
// HTML, so only the JSON endpoints need codes.
const (
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
)
