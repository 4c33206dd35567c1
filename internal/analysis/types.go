package analysis

import (
	"time"

	"insight-srv/internal/insight"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
	"insight-srv/pkg/payload"
)

const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformOther     = "other"
)

type AnalyzeInput struct {
	URL   string
	Token string
	Lang  string
}

type DetailInput struct {
	ID   string
	Lang string
}

type ListInput struct {
	Paginate paginator.PaginateQuery
	Platform string
	Status   string
}

// IngestInput is an analysis pushed by the analysis pipeline instead of
// requested by a user.
type IngestInput struct {
	ExternalID string
	UserID     string
	URL        string
	Payload    payload.Value
}

type AnalysisOutput struct {
	Analysis  model.Analysis
	Dashboard *insight.Dashboard
}

type ListOutput struct {
	Analyses  []model.Analysis
	Paginator paginator.Paginator
}

// DashboardReadyEvent is published once a dashboard has been built and cached.
type DashboardReadyEvent struct {
	AnalysisID string
	UserID     string
	Platform   string
	Metrics    []insight.MetricCard
	ReadyAt    time.Time
}
