package http

import (
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Export an analysis
// @Description Queue an export of a completed analysis as md, html, pdf or excel. An identical export still in progress is returned instead.
// @Tags Report
// @Accept json
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Param body body exportReq true "Export request"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyses/{analysis_id}/exports [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}

// @Summary List exports of an analysis
// @Tags Report
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/analyses/{analysis_id}/exports [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	analysisID, sc := c.Param("analysis_id"), scope.GetScopeFromContext(ctx)
	o, err := h.uc.List(ctx, sc, analysisID)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get report status and metadata
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Get: processReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Download report file
// @Description Generate a presigned download URL for a completed report
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} downloadResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/{report_id}/download [get]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Download: processReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Download(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}
