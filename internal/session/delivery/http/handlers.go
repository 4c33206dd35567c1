package http

import (
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Current session
// @Description Resolve the caller against the backend session and profile endpoints
// @Tags Session
// @Produce json
// @Success 200 {object} sessionResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/session [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processGetRequest(c)
	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSessionResp(o))
}

// @Summary Logout
// @Description Forget the cached session of the caller
// @Tags Session
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/session/logout [post]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, scope.GetScopeFromContext(ctx)); err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Logout: usecase Logout failed: %v", err)
		response.Error(c, errLogoutFailed, h.discord)
		return
	}

	response.OK(c, nil)
}
