package errors

import (
	"context"
	"errors"
	"net/http"
)

// MapBackendStatus maps a catalog backend HTTP response status to an
// AppError. Bodies with a usable message should be surfaced by the caller
// via the message argument; when empty a generic one is used.
func MapBackendStatus(status int, message string) *AppError {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusBadRequest:
		if message == "" {
			message = "the backend rejected the request"
		}
		return Validation(message)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if message == "" {
			message = "backend session is not valid"
		}
		return Unauthorized(message)
	case status == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return NotFound(message)
	case status == http.StatusConflict:
		if message == "" {
			message = "resource already exists"
		}
		return Conflict(message)
	default:
		if message == "" {
			message = "catalog backend request failed"
		}
		return &AppError{Code: ErrCodeUpstream, Message: message}
	}
}

// MapTransportError maps transport-level failures (connection refused,
// timeouts, cancellation) to AppError codes. Context errors are
// distinguished so handlers can skip logging client disconnects.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeTimeout, "catalog backend timed out")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeCanceled, "request canceled")
	}
	return Wrap(err, ErrCodeUpstream, "catalog backend unreachable")
}
