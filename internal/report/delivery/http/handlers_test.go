package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	report.UseCase
	err       error
	gotExport report.ExportInput
	gotID     string
}

func (f *fakeUseCase) Export(ctx context.Context, sc model.Scope, input report.ExportInput) (report.ExportOutput, error) {
	f.gotExport = input
	if f.err != nil {
		return report.ExportOutput{}, f.err
	}
	return report.ExportOutput{Report: model.Report{ID: "r1", AnalysisID: input.AnalysisID, Format: input.Format, Status: report.StatusProcessing}}, nil
}

func (f *fakeUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Report, error) {
	f.gotID = id
	if f.err != nil {
		return model.Report{}, f.err
	}
	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return model.Report{ID: id, Status: report.StatusCompleted, CompletedAt: &done}, nil
}

func (f *fakeUseCase) Download(ctx context.Context, sc model.Scope, id string) (report.DownloadOutput, error) {
	f.gotID = id
	if f.err != nil {
		return report.DownloadOutput{}, f.err
	}
	return report.DownloadOutput{URL: "https://files/r1", FileName: "insights.pdf", FileSize: 3}, nil
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, analysisID string) ([]model.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []model.Report{{ID: "r1", AnalysisID: analysisID}, {ID: "r2", AnalysisID: analysisID}}, nil
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: log.NewNop(), uc: uc}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"})
		ctx = scope.SetTokenToContext(ctx, "tok")
		ctx = locale.SetLocaleToContext(ctx, locale.EN)
		c.Request = c.Request.WithContext(ctx)
	})
	r.POST("/analyses/:analysis_id/exports", h.Export)
	r.GET("/analyses/:analysis_id/exports", h.List)
	r.GET("/reports/:report_id", h.Get)
	r.GET("/reports/:report_id/download", h.Download)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestExportHandler(t *testing.T) {
	t.Run("builds the input from path and context", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := do(newTestRouter(uc), http.MethodPost, "/analyses/a1/exports", `{"format": "pdf"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, report.ExportInput{AnalysisID: "a1", Format: "pdf", Token: "tok", Lang: locale.EN}, uc.gotExport)

		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, false, data["reused"])
		assert.Equal(t, "r1", data["report"].(map[string]any)["id"])
	})

	t.Run("missing format", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/analyses/a1/exports", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	tcs := map[string]struct {
		err    error
		status int
	}{
		"invalid format":     {err: report.ErrInvalidFormat, status: http.StatusBadRequest},
		"analysis not ready": {err: report.ErrAnalysisNotReady, status: http.StatusConflict},
		"analysis not found": {err: analysis.ErrNotFound, status: http.StatusNotFound},
		"analysis forbidden": {err: analysis.ErrForbidden, status: http.StatusForbidden},
		"export failed":      {err: report.ErrExportFailed, status: http.StatusInternalServerError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := do(newTestRouter(&fakeUseCase{err: tc.err}), http.MethodPost, "/analyses/a1/exports", `{"format": "md"}`)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/analyses/a1/exports", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["reports"], 2)
}

func TestGetHandler(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodGet, "/reports/r9", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "r9", uc.gotID)
	data := decode(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["completed_at"])

	w = do(newTestRouter(&fakeUseCase{err: report.ErrReportNotFound}), http.MethodGet, "/reports/r9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadHandler(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/reports/r1/download", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "https://files/r1", data["download_url"])
	assert.Equal(t, "insights.pdf", data["file_name"])

	w = do(newTestRouter(&fakeUseCase{err: report.ErrReportNotCompleted}), http.MethodGet, "/reports/r1/download", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
