package errs

import (
	"net/http"
)

// ValidationErrorCode is the machine code attached to every request
// validation failure.
const ValidationErrorCode = "VALIDATION_ERROR"

// StoreUnavailableCode is the machine code for a persistence medium that
// is unreachable or locked beyond the bounded wait.
const StoreUnavailableCode = "STORE_UNAVAILABLE"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Parameters:
//   - message: text to send to the client
//   - override: whether middleware may show this message verbatim
//   - code: optional custom code string (defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewValidationError creates a 422 Unprocessable Entity HTTPError carrying
// the violated fields. Validation failures are client faults: they are
// surfaced with field detail and never treated as server defects.
func NewValidationError(message string, override bool, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     ValidationErrorCode,
		Message:  message,
		Status:   http.StatusUnprocessableEntity,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports an optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewStoreUnavailableError creates a 503 Service Unavailable HTTPError.
//
// Returned when the store cannot be acquired within the bounded wait.
// The caller should retry; the service does not recover it internally.
func NewStoreUnavailableError(message string) *HTTPError {
	return &HTTPError{
		Code:     StoreUnavailableCode,
		Message:  message,
		Status:   http.StatusServiceUnavailable,
		Override: false,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error
// message, so internal detail never leaks to clients.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
