package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/insight"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
	"insight-srv/pkg/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = model.Scope{UserID: "u1"}
	stranger = model.Scope{UserID: "u2"}
)

type fakeRepo struct {
	mu        sync.Mutex
	rows      map[string]*model.Report
	failed    map[string]string
	createErr error
	listOpts  repository.ListReportsOptions
}

func newFakeRepo(rows ...model.Report) *fakeRepo {
	r := &fakeRepo{rows: map[string]*model.Report{}, failed: map[string]string{}}
	for i := range rows {
		row := rows[i]
		r.rows[row.ID] = &row
	}
	return r
}

func (r *fakeRepo) CreateReport(_ context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rpt := &model.Report{
		ID:         opts.ID,
		AnalysisID: opts.AnalysisID,
		UserID:     opts.UserID,
		Format:     opts.Format,
		ParamsHash: opts.ParamsHash,
		Status:     report.StatusProcessing,
	}
	r.rows[rpt.ID] = rpt
	cp := *rpt
	return &cp, nil
}

func (r *fakeRepo) GetReportByID(_ context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rpt, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	cp := *rpt
	return &cp, nil
}

func (r *fakeRepo) FindByParamsHash(_ context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rpt := range r.rows {
		if rpt.ParamsHash == opts.ParamsHash && rpt.UserID == opts.UserID && rpt.Status == opts.Status {
			cp := *rpt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateCompleted(_ context.Context, opts repository.UpdateCompletedOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rpt := r.rows[opts.ReportID]
	rpt.Status = report.StatusCompleted
	rpt.ObjectName = opts.ObjectName
	rpt.ContentType = opts.ContentType
	rpt.FileSizeBytes = opts.FileSizeBytes
	return nil
}

func (r *fakeRepo) UpdateFailed(_ context.Context, opts repository.UpdateFailedOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[opts.ReportID].Status = report.StatusFailed
	r.failed[opts.ReportID] = opts.ErrorMessage
	return nil
}

func (r *fakeRepo) ListReports(_ context.Context, opts repository.ListReportsOptions) ([]*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listOpts = opts
	var out []*model.Report
	for _, rpt := range r.rows {
		if rpt.AnalysisID == opts.AnalysisID && rpt.UserID == opts.UserID {
			cp := *rpt
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAnalysis struct {
	analysis.UseCase
	out analysis.AnalysisOutput
	err error
}

func (f *fakeAnalysis) Detail(_ context.Context, sc model.Scope, input analysis.DetailInput) (analysis.AnalysisOutput, error) {
	if f.err != nil {
		return analysis.AnalysisOutput{}, f.err
	}
	if sc.UserID != f.out.Analysis.UserID {
		return analysis.AnalysisOutput{}, analysis.ErrForbidden
	}
	return f.out, nil
}

type fakeBackend struct {
	backend.IBackend
	file  *backend.File
	err   error
	token string
	id    string
}

func (f *fakeBackend) Export(_ context.Context, token, format, analysisID string) (*backend.File, error) {
	f.token = token
	f.id = analysisID
	return f.file, f.err
}

type fakeStorage struct {
	uploaded  map[string][]byte
	types     map[string]string
	uploadErr error
	presign   *minio.PresignedURLRequest
}

func (s *fakeStorage) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	body, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	s.uploaded[req.ObjectName] = body
	s.types[req.ObjectName] = req.ContentType
	return &minio.FileInfo{ObjectName: req.ObjectName, Size: int64(len(body))}, nil
}

func (s *fakeStorage) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	s.presign = req
	return &minio.PresignedURLResponse{
		URL:       "https://files/" + req.ObjectName,
		ExpiresAt: time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
	}, nil
}

type fakePublisher struct {
	jobs []report.ExportJob
	err  error
}

func (p *fakePublisher) PublishExport(_ context.Context, job report.ExportJob) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, job)
	return nil
}

type fixture struct {
	uc        *implUseCase
	repo      *fakeRepo
	analysis  *fakeAnalysis
	backend   *fakeBackend
	storage   *fakeStorage
	publisher *fakePublisher
}

func completedAnalysis() analysis.AnalysisOutput {
	raw := payload.MustParse(`{
		"id": "backend-1",
		"insights": {
			"sentimentoGeral": "positivo",
			"principaisTemas": ["moda", "viagem"],
			"riscosReputacao": [{"alerta": "crise", "severidade": "alta"}],
			"topComentarios": [{"texto": "Amei\nisso", "likes": 12}]
		}
	}`)
	d := insight.BuildDashboard(raw)
	return analysis.AnalysisOutput{
		Analysis: model.Analysis{
			ID:       "a1",
			UserID:   "u1",
			URL:      "https://instagram.com/p/1",
			Platform: analysis.PlatformInstagram,
			Status:   analysis.StatusCompleted,
			Raw:      []byte(raw.JSON()),
		},
		Dashboard: &d,
	}
}

func newFixture(rows ...model.Report) fixture {
	f := fixture{
		repo:      newFakeRepo(rows...),
		analysis:  &fakeAnalysis{out: completedAnalysis()},
		backend:   &fakeBackend{},
		storage:   &fakeStorage{uploaded: map[string][]byte{}, types: map[string]string{}},
		publisher: &fakePublisher{},
	}
	uc := New(log.NewNop(), f.repo, f.analysis, f.backend, f.storage, f.publisher, Config{}).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	f.uc = uc
	return f
}

func TestExport(t *testing.T) {
	t.Run("queues a new export", func(t *testing.T) {
		f := newFixture()

		out, err := f.uc.Export(context.Background(), owner, report.ExportInput{AnalysisID: "a1", Format: " PDF ", Token: "tok", Lang: "en"})
		require.NoError(t, err)

		assert.False(t, out.Reused)
		assert.Equal(t, report.FormatPDF, out.Report.Format)
		assert.Equal(t, report.StatusProcessing, out.Report.Status)
		require.Len(t, f.publisher.jobs, 1)
		assert.Equal(t, report.ExportJob{ReportID: out.Report.ID, Scope: owner, Token: "tok", Lang: "en"}, f.publisher.jobs[0])
	})

	t.Run("reuses an export in flight", func(t *testing.T) {
		f := newFixture()

		first, err := f.uc.Export(context.Background(), owner, report.ExportInput{AnalysisID: "a1", Format: "md"})
		require.NoError(t, err)
		second, err := f.uc.Export(context.Background(), owner, report.ExportInput{AnalysisID: "a1", Format: "md"})
		require.NoError(t, err)

		assert.True(t, second.Reused)
		assert.Equal(t, first.Report.ID, second.Report.ID)
		assert.Len(t, f.publisher.jobs, 1)
	})

	t.Run("queue failure marks the report failed", func(t *testing.T) {
		f := newFixture()
		f.publisher.err = errors.New("broker down")

		_, err := f.uc.Export(context.Background(), owner, report.ExportInput{AnalysisID: "a1", Format: "html"})
		require.ErrorIs(t, err, report.ErrExportFailed)

		require.Len(t, f.repo.failed, 1)
		for id := range f.repo.failed {
			assert.Equal(t, report.StatusFailed, f.repo.rows[id].Status)
		}
	})

	tcs := map[string]struct {
		input   report.ExportInput
		sc      model.Scope
		status  string
		wantErr error
	}{
		"invalid format":     {input: report.ExportInput{AnalysisID: "a1", Format: "docx"}, sc: owner, wantErr: report.ErrInvalidFormat},
		"missing analysis":   {input: report.ExportInput{Format: "pdf"}, sc: owner, wantErr: report.ErrAnalysisRequired},
		"not the owner":      {input: report.ExportInput{AnalysisID: "a1", Format: "pdf"}, sc: stranger, wantErr: analysis.ErrForbidden},
		"analysis not ready": {input: report.ExportInput{AnalysisID: "a1", Format: "pdf"}, sc: owner, status: analysis.StatusProcessing, wantErr: report.ErrAnalysisNotReady},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			if tc.status != "" {
				f.analysis.out.Analysis.Status = tc.status
			}

			_, err := f.uc.Export(context.Background(), tc.sc, tc.input)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, f.publisher.jobs)
		})
	}
}

func processing(id, format string) model.Report {
	return model.Report{ID: id, AnalysisID: "a1", UserID: "u1", Format: format, Status: report.StatusProcessing}
}

func TestProcess(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatMarkdown))

		require.NoError(t, f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1"}))

		body := string(f.storage.uploaded["reports/r1.md"])
		assert.Contains(t, body, "# Relatório de insights")
		assert.Contains(t, body, "**Sentimento geral:** positivo")
		assert.Contains(t, body, "- moda\n- viagem")
		assert.Contains(t, body, "> Amei isso (12 curtidas)")
		assert.Equal(t, contentTypeMarkdown, f.storage.types["reports/r1.md"])

		rpt := f.repo.rows["r1"]
		assert.Equal(t, report.StatusCompleted, rpt.Status)
		assert.Equal(t, "reports/r1.md", rpt.ObjectName)
		assert.Equal(t, int64(len(body)), rpt.FileSizeBytes)
	})

	t.Run("html is sanitized", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatHTML))
		out := completedAnalysis()
		out.Dashboard.Payload.MainThemes = []string{`<script>alert(1)</script>moda`}
		f.analysis.out = out

		require.NoError(t, f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1"}))

		body := string(f.storage.uploaded["reports/r1.html"])
		assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
		assert.Contains(t, body, `<html lang="pt">`)
		assert.Contains(t, body, "<h1")
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "moda")
	})

	t.Run("pdf is rendered by the backend", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatPDF))
		f.backend.file = &backend.File{Body: []byte("%PDF"), ContentType: "application/pdf"}

		require.NoError(t, f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1", Token: "tok"}))

		assert.Equal(t, "tok", f.backend.token)
		assert.Equal(t, "backend-1", f.backend.id)
		assert.Equal(t, []byte("%PDF"), f.storage.uploaded["reports/r1.pdf"])
	})

	t.Run("excel falls back to the spreadsheet type", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatExcel))
		f.backend.file = &backend.File{Body: []byte("xlsx")}

		require.NoError(t, f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1"}))
		assert.Equal(t, contentTypeExcel, f.storage.types["reports/r1.xlsx"])
	})

	t.Run("backend error is recorded", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatPDF))
		f.backend.err = &backend.APIError{Status: 500, Message: "Erro ao baixar o arquivo."}

		err := f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1"})
		require.ErrorIs(t, err, report.ErrExportFailed)
		assert.Equal(t, report.StatusFailed, f.repo.rows["r1"].Status)
		assert.Equal(t, "Erro ao baixar o arquivo.", f.repo.failed["r1"])
	})

	t.Run("upload error is recorded", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatMarkdown))
		f.storage.uploadErr = errors.New("disk full")

		err := f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1"})
		require.ErrorIs(t, err, report.ErrExportFailed)
		assert.Equal(t, report.StatusFailed, f.repo.rows["r1"].Status)
	})

	t.Run("finished reports are skipped", func(t *testing.T) {
		done := processing("r1", report.FormatMarkdown)
		done.Status = report.StatusCompleted
		f := newFixture(done)

		require.NoError(t, f.uc.Process(context.Background(), owner, report.ProcessInput{ReportID: "r1"}))
		assert.Empty(t, f.storage.uploaded)
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newFixture(processing("r1", report.FormatMarkdown))

		err := f.uc.Process(context.Background(), stranger, report.ProcessInput{ReportID: "r1"})
		require.ErrorIs(t, err, report.ErrForbidden)
	})
}

func TestDownload(t *testing.T) {
	done := processing("r1", report.FormatExcel)
	done.Status = report.StatusCompleted
	done.ObjectName = "reports/r1.xlsx"
	done.FileSizeBytes = 7

	t.Run("presigns the object", func(t *testing.T) {
		f := newFixture(done)

		out, err := f.uc.Download(context.Background(), owner, "r1")
		require.NoError(t, err)

		assert.Equal(t, "https://files/reports/r1.xlsx", out.URL)
		assert.Equal(t, "insights.xlsx", out.FileName)
		assert.Equal(t, int64(7), out.FileSize)
		assert.Equal(t, defaultReportBucket, f.storage.presign.BucketName)
		assert.Equal(t, defaultURLExpiry, f.storage.presign.Expiry)
	})

	tcs := map[string]struct {
		rows    []model.Report
		sc      model.Scope
		wantErr error
	}{
		"not found":     {sc: owner, wantErr: report.ErrReportNotFound},
		"not the owner": {rows: []model.Report{done}, sc: stranger, wantErr: report.ErrForbidden},
		"not completed": {rows: []model.Report{processing("r1", report.FormatPDF)}, sc: owner, wantErr: report.ErrReportNotCompleted},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFixture(tc.rows...)
			_, err := f.uc.Download(context.Background(), tc.sc, "r1")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestList(t *testing.T) {
	f := newFixture(processing("r1", report.FormatPDF), processing("r2", report.FormatMarkdown))

	out, err := f.uc.List(context.Background(), owner, "a1")
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, repository.ListReportsOptions{AnalysisID: "a1", UserID: "u1"}, f.repo.listOpts)

	out, err = f.uc.List(context.Background(), stranger, "a1")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = f.uc.List(context.Background(), owner, "")
	require.ErrorIs(t, err, report.ErrAnalysisRequired)
}
