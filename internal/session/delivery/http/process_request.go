package http

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetRequest(c *gin.Context) (getReq, model.Scope) {
	ctx := c.Request.Context()
	req := getReq{
		Token: scope.GetTokenFromContext(ctx),
		Lang:  locale.GetLang(ctx),
	}
	return req, scope.GetScopeFromContext(ctx)
}
