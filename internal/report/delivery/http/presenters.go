package http

import (
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/pkg/response"
)

type exportReq struct {
	Format string `json:"format" binding:"required"`

	AnalysisID string `json:"-"`
	Token      string `json:"-"`
	Lang       string `json:"-"`
}

func (r exportReq) toInput() report.ExportInput {
	return report.ExportInput{
		AnalysisID: r.AnalysisID,
		Format:     r.Format,
		Token:      r.Token,
		Lang:       r.Lang,
	}
}

type reportResp struct {
	ID            string             `json:"id"`
	AnalysisID    string             `json:"analysis_id"`
	Format        string             `json:"format"`
	Status        string             `json:"status"`
	ErrorMessage  string             `json:"error_message,omitempty"`
	FileSizeBytes int64              `json:"file_size_bytes,omitempty"`
	CompletedAt   *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt     response.DateTime  `json:"created_at"`
}

type exportResp struct {
	Report reportResp `json:"report"`
	Reused bool       `json:"reused"`
}

type listResp struct {
	Reports []reportResp `json:"reports"`
}

type downloadResp struct {
	DownloadURL string            `json:"download_url"`
	ExpiresAt   response.DateTime `json:"expires_at"`
	FileName    string            `json:"file_name"`
	FileSize    int64             `json:"file_size"`
}

func (h *handler) newReportResp(r model.Report) reportResp {
	resp := reportResp{
		ID:            r.ID,
		AnalysisID:    r.AnalysisID,
		Format:        r.Format,
		Status:        r.Status,
		ErrorMessage:  r.ErrorMessage,
		FileSizeBytes: r.FileSizeBytes,
		CreatedAt:     response.DateTime(r.CreatedAt),
	}
	if r.CompletedAt != nil {
		t := response.DateTime(*r.CompletedAt)
		resp.CompletedAt = &t
	}
	return resp
}

func (h *handler) newExportResp(o report.ExportOutput) exportResp {
	return exportResp{
		Report: h.newReportResp(o.Report),
		Reused: o.Reused,
	}
}

func (h *handler) newListResp(rpts []model.Report) listResp {
	out := make([]reportResp, 0, len(rpts))
	for _, r := range rpts {
		out = append(out, h.newReportResp(r))
	}
	return listResp{Reports: out}
}

func (h *handler) newDownloadResp(o report.DownloadOutput) downloadResp {
	return downloadResp{
		DownloadURL: o.URL,
		ExpiresAt:   response.DateTime(o.ExpiresAt),
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}
