package http

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processExportRequest(c *gin.Context) (exportReq, model.Scope, error) {
	var req exportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.processExportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidFormat
	}
	req.AnalysisID = c.Param("analysis_id")
	req.Token = scope.GetTokenFromContext(ctx)
	req.Lang = locale.GetLang(ctx)

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processReportRequest(c *gin.Context) (string, model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return c.Param("report_id"), sc, nil
}
