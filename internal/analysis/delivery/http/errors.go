package http

import (
	"errors"
	"net/http"
	"strings"

	"insight-srv/internal/analysis"
	pkgErrors "insight-srv/pkg/errors"
	"insight-srv/pkg/payload"
)

var (
	errURLRequired       = pkgErrors.NewHTTPError(400, "Informe um link para analisar.")
	errInvalidURL        = pkgErrors.NewHTTPError(400, "O link precisa começar com http:// ou https://.")
	errNotFound          = pkgErrors.NewHTTPError(404, "Analysis not found")
	errForbidden         = pkgErrors.NewHTTPError(403, "Analysis belongs to another user")
	errInvalidPayload    = pkgErrors.NewHTTPError(400, "Analysis payload must be a JSON object")
	errExternalIDMissing = pkgErrors.NewHTTPError(400, "External ID is required")
	errInvalidStatus     = pkgErrors.NewHTTPError(400, "Invalid status filter")
	errInvalidPlatform   = pkgErrors.NewHTTPError(400, "Invalid platform filter")
	errInvalidJSON       = pkgErrors.NewHTTPError(400, "Payload is not valid JSON")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrUpstreamFailed):
		return upstreamError(err)
	case errors.Is(err, analysis.ErrURLRequired):
		return errURLRequired
	case errors.Is(err, analysis.ErrInvalidURL):
		return errInvalidURL
	case errors.Is(err, analysis.ErrNotFound):
		return errNotFound
	case errors.Is(err, analysis.ErrForbidden):
		return errForbidden
	case errors.Is(err, analysis.ErrInvalidPayload):
		return errInvalidPayload
	case errors.Is(err, analysis.ErrExternalIDMissing):
		return errExternalIDMissing
	case errors.Is(err, analysis.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, analysis.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, payload.ErrInvalidJSON):
		return errInvalidJSON
	default:
		panic(err)
	}
}

// upstreamError surfaces the backend's own message, which is what the user reads.
func upstreamError(err error) error {
	msg := strings.TrimPrefix(err.Error(), analysis.ErrUpstreamFailed.Error()+": ")
	if msg == "" || msg == err.Error() {
		msg = "Erro ao comunicar com o servidor."
	}
	return pkgErrors.NewHTTPError(http.StatusBadGateway, msg)
}
