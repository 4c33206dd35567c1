package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Build the insight dashboard
// @Description Normalize a raw analysis result into the dashboard projection: payload, metric cards, comments, audience bars and risk badges
// @Tags Insight
// @Accept json
// @Produce json
// @Param lang header string false "Response language (pt, en)"
// @Param body body object true "Raw analysis result"
// @Success 200 {object} dashboardResp
// @Failure 400 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Router /api/v1/insights/normalize [post]
func (h *handler) Normalize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNormalizeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insight.delivery.http.Normalize: processNormalizeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Normalize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "insight.delivery.http.Normalize: usecase Normalize failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(o))
}

// @Summary Build fallback insight cards
// @Description Render any insight payload shape as a list of titled cards
// @Tags Insight
// @Accept json
// @Produce json
// @Param lang header string false "Response language (pt, en)"
// @Param body body object true "Raw insights"
// @Success 200 {object} cardsResp
// @Failure 400 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Router /api/v1/insights/cards [post]
func (h *handler) Cards(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNormalizeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insight.delivery.http.Cards: processNormalizeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Cards(ctx, req.toCardsInput())
	if err != nil {
		h.l.Errorf(ctx, "insight.delivery.http.Cards: usecase Cards failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCardsResp(o))
}
