package errs

import "net/http"

func newError(status int, message string, code string) *HTTPError {
	if code == "" {
		code = statusCode(status)
	}
	return &HTTPError{Code: code, Message: message, Status: status}
}

// NewBadRequestError creates a 400 error. Field errors are optional.
func NewBadRequestError(message string, code string, fields []FieldError) *HTTPError {
	e := newError(http.StatusBadRequest, message, code)
	e.Errors = fields
	return e
}

func NewNotFoundError(message string, code string) *HTTPError {
	return newError(http.StatusNotFound, message, code)
}

// NewConflictError creates a 409 error, used for constraint violations that
// depend on the current state of the store.
func NewConflictError(message string, code string) *HTTPError {
	return newError(http.StatusConflict, message, code)
}

func NewServiceUnavailableError(message string) *HTTPError {
	return newError(http.StatusServiceUnavailable, message, "")
}

func NewGatewayTimeoutError(message string) *HTTPError {
	return newError(http.StatusGatewayTimeout, message, "")
}

func NewPayloadTooLargeError(message string) *HTTPError {
	return newError(http.StatusRequestEntityTooLarge, message, "")
}

func NewTooManyRequestsError(message string) *HTTPError {
	return newError(http.StatusTooManyRequests, message, "")
}

// NewInternalServerError hides the underlying cause from the client.
func NewInternalServerError() *HTTPError {
	return newError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
}
