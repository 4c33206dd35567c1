package http

import (
	"errors"

	"insight-srv/internal/session"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errTokenRequired = pkgErrors.NewHTTPError(401, "Token is required")
	errLogoutFailed  = pkgErrors.NewHTTPError(500, "Failed to end the session")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrTokenRequired):
		return errTokenRequired
	default:
		panic(err)
	}
}
