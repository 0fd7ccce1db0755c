// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/spaceper/internal/httputil"
)

// ErrDocumentNotFound is returned when an ID is not in the current result set.
var ErrDocumentNotFound = errors.New("document not found in current results")

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeRequestTooLarge  ErrorCode = "REQUEST_TOO_LARGE"
	ErrorCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"

	ErrorCodeUpstreamFailed  ErrorCode = "UPSTREAM_FAILED"
	ErrorCodeUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"
	ErrorCodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// APIError is the body of every error response.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	// Retryable tells the UI whether to offer "try again".
	Retryable bool `json:"retryable"`
}

// SendError writes an APIError and aborts the handler chain.
func SendError(c *gin.Context, status int, code ErrorCode, message string, retryable bool) {
	resp := APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}
	c.AbortWithStatusJSON(status, resp)
}

// sendValidationError reports a bad request field.
func sendValidationError(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, message, false)
}

// sendBindError reports a body that could not be decoded.
func sendBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge,
			"Request body exceeds the size limit", false)
		return
	}
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid JSON in request body: "+err.Error(), false)
}

// sendUpstreamError maps a failed backend call to 504 for deadlines and 502
// for everything else.
func sendUpstreamError(c *gin.Context, operation string, err error) {
	retryable := httputil.IsRetryable(err)
	if httputil.IsTimeout(err) {
		SendError(c, http.StatusGatewayTimeout, ErrorCodeUpstreamTimeout,
			"The research backend did not answer in time ("+operation+")", retryable)
		return
	}
	if errors.Is(err, context.Canceled) {
		SendError(c, http.StatusBadGateway, ErrorCodeUpstreamFailed, operation+" was cancelled", false)
		return
	}
	SendError(c, http.StatusBadGateway, ErrorCodeUpstreamFailed,
		"The research backend failed during "+operation+": "+err.Error(), retryable)
}
