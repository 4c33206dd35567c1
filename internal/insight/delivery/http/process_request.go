package http

import (
	"errors"
	"net/http"

	"insight-srv/pkg/locale"
	"insight-srv/pkg/payload"

	"github.com/gin-gonic/gin"
)

func (h *handler) processNormalizeRequest(c *gin.Context) (normalizeReq, error) {
	ctx := c.Request.Context()

	data, err := c.GetRawData()
	if err != nil {
		h.l.Warnf(ctx, "insight.delivery.http.processNormalizeRequest: GetRawData failed: %v", err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return normalizeReq{}, errBodyTooLarge
		}
		return normalizeReq{}, err
	}

	raw, err := payload.Parse(data)
	if err != nil {
		h.l.Warnf(ctx, "insight.delivery.http.processNormalizeRequest: Parse failed: %v", err)
		return normalizeReq{}, h.mapError(err)
	}

	return normalizeReq{
		Raw:  raw,
		Lang: locale.GetLang(ctx),
	}, nil
}
