package http

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, model.Scope, error) {
	var req analyzeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.processAnalyzeRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errURLRequired
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (detailReq, model.Scope, error) {
	ctx := c.Request.Context()
	req := detailReq{
		ID:   c.Param("analysis_id"),
		Lang: locale.GetLang(ctx),
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processIngestRequest(c *gin.Context) (ingestReq, error) {
	var req ingestReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.processIngestRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
