package backend

import (
	"context"
	"strings"

	pkghttp "insight-srv/pkg/http"
)

// IBackend is the client of the analysis backend. Every call forwards the
// caller's bearer token. Implementations are safe for concurrent use.
type IBackend interface {
	// Analyze submits a post URL and returns the raw analysis JSON.
	Analyze(ctx context.Context, token, url string) ([]byte, error)
	// FetchSession returns nil when there is no valid session.
	FetchSession(ctx context.Context, token string) (*Session, error)
	// FetchProfile returns nil when there is no valid profile.
	FetchProfile(ctx context.Context, token string) (*User, error)
	Export(ctx context.Context, token, format, analysisID string) (*File, error)
}

func New(cfg Config) IBackend {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   DefaultRetries,
			RetryWait: DefaultRetryWait,
		})
	}
	if cfg.AnalyzeClient == nil {
		cfg.AnalyzeClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: DefaultTimeout,
		})
	}
	return &backendImpl{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    cfg.HTTPClient,
		analyzeClient: cfg.AnalyzeClient,
	}
}
