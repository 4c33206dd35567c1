package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows how it should be rendered to API clients.
// Code is the application error code; StatusCode the HTTP status.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. Codes in the 4xx/5xx range double as the HTTP status;
// other codes are treated as client errors.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 400 && code < 600 {
		status = code
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

// NewUnauthorizedHTTPError returns the shared 401 error.
func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}

// NewForbiddenHTTPError returns the shared 403 error.
func NewForbiddenHTTPError() *HTTPError {
	return NewHTTPError(http.StatusForbidden, "Forbidden")
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Code, e.Message)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorCollector gathers ValidationErrors.
type ValidationErrorCollector struct {
	errors []ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

func (c *ValidationErrorCollector) Add(field, message string) {
	c.errors = append(c.errors, ValidationError{Field: field, Message: message})
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	if len(c.errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", c.errors[0].Field, c.errors[0].Message)
}
