package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUnsupportedFormat = errors.New("backend: unsupported export format")

// APIError is a non-2xx reply from the analysis backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 reply.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
