package http

import (
	"insight-srv/internal/analysis"
	"insight-srv/internal/insight"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
	"insight-srv/pkg/payload"
	"insight-srv/pkg/response"
)

type analyzeReq struct {
	URL string `json:"url" binding:"required"`
}

func (r analyzeReq) toInput(token, lang string) analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		URL:   r.URL,
		Token: token,
		Lang:  lang,
	}
}

type detailReq struct {
	ID   string
	Lang string
}

func (r detailReq) toInput() analysis.DetailInput {
	return analysis.DetailInput{
		ID:   r.ID,
		Lang: r.Lang,
	}
}

type listReq struct {
	paginator.PaginateQuery
	Platform string `form:"platform"`
	Status   string `form:"status"`
}

func (r listReq) toInput() analysis.ListInput {
	return analysis.ListInput{
		Paginate: r.PaginateQuery,
		Platform: r.Platform,
		Status:   r.Status,
	}
}

// ingestReq is pushed by the analysis pipeline. Result holds the raw analysis.
type ingestReq struct {
	ExternalID string        `json:"external_id" binding:"required"`
	UserID     string        `json:"user_id"`
	URL        string        `json:"url"`
	Result     payload.Value `json:"result" swaggertype:"object"`
}

func (r ingestReq) toInput() analysis.IngestInput {
	return analysis.IngestInput{
		ExternalID: r.ExternalID,
		UserID:     r.UserID,
		URL:        r.URL,
		Payload:    r.Result,
	}
}

type analysisResp struct {
	ID           string            `json:"id"`
	ExternalID   string            `json:"external_id,omitempty"`
	URL          string            `json:"url"`
	Platform     string            `json:"platform"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

type detailResp struct {
	Analysis  analysisResp       `json:"analysis"`
	Dashboard *insight.Dashboard `json:"dashboard,omitempty" swaggertype:"object"`
}

type listResp struct {
	Analyses  []analysisResp              `json:"analyses"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newAnalysisResp(a model.Analysis) analysisResp {
	return analysisResp{
		ID:           a.ID,
		ExternalID:   a.ExternalID,
		URL:          a.URL,
		Platform:     a.Platform,
		Status:       a.Status,
		ErrorMessage: a.ErrorMessage,
		CreatedAt:    response.DateTime(a.CreatedAt),
		UpdatedAt:    response.DateTime(a.UpdatedAt),
	}
}

func (h *handler) newDetailResp(o analysis.AnalysisOutput) detailResp {
	return detailResp{
		Analysis:  h.newAnalysisResp(o.Analysis),
		Dashboard: o.Dashboard,
	}
}

func (h *handler) newListResp(o analysis.ListOutput) listResp {
	items := make([]analysisResp, 0, len(o.Analyses))
	for _, a := range o.Analyses {
		items = append(items, h.newAnalysisResp(a))
	}
	return listResp{
		Analyses:  items,
		Paginator: o.Paginator.ToResponse(),
	}
}
