package http

import (
	"insight-srv/pkg/locale"
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze a post
// @Description Send a post link to the analysis backend, store the result and return its dashboard
// @Tags Analysis
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param lang header string false "Response language (pt, en)"
// @Param body body analyzeReq true "Post link"
// @Success 200 {object} detailResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analyses [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, sc, req.toInput(scope.GetTokenFromContext(ctx), locale.GetLang(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}

// @Summary List analyses
// @Description List the caller's analyses, newest first
// @Tags Analysis
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param platform query string false "instagram, facebook, tiktok, youtube or other"
// @Param status query string false "PROCESSING, COMPLETED or FAILED"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/analyses [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get an analysis
// @Description Return an analysis with its dashboard when it completed
// @Tags Analysis
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param lang header string false "Response language (pt, en)"
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} detailResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/analyses/{analysis_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Detail: processDetailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}

// @Summary Delete an analysis
// @Tags Analysis
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/analyses/{analysis_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Delete: processDetailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.ID); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Ingest a finished analysis
// @Description Store an analysis produced by the analysis pipeline and rebuild its dashboard
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Service-Key header string true "Encrypted service key"
// @Param body body ingestReq true "Finished analysis"
// @Success 200 {object} detailResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /internal/v1/analyses [post]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Ingest: processIngestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Ingest: usecase Ingest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}
