package http

import (
	"errors"

	pkgErrors "insight-srv/pkg/errors"
	"insight-srv/pkg/payload"
)

var (
	errInvalidPayload = pkgErrors.NewHTTPError(400, "Payload is not valid JSON")
	errPayloadTooDeep = pkgErrors.NewHTTPError(400, "Payload is nested too deeply")
	errBodyTooLarge   = pkgErrors.NewHTTPError(413, "Payload is too large")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, payload.ErrInvalidJSON):
		return errInvalidPayload
	case errors.Is(err, payload.ErrTooDeep):
		return errPayloadTooDeep
	default:
		panic(err)
	}
}
