package errors

import "fmt"

// HTTPError is an error that carries the status code and message rendered to clients.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status for the error. Codes outside the HTTP range map to 400.
func (e *HTTPError) StatusCode() int {
	if e.Code >= 400 && e.Code < 600 {
		return e.Code
	}
	return 400
}
