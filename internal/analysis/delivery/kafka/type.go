package kafka

import (
	"encoding/json"
	"time"
)

const (
	// Consumer topics
	TopicAnalysisCompleted   = "insight.analysis.completed"
	GroupIDAnalysisCompleted = "insight-consumer-analysis-completed"

	// Producer topics
	TopicDashboardReady = "insight.dashboard.ready"
)

// AnalysisCompletedMessage is emitted by the analysis pipeline once a post
// has been analysed. Result is the raw analysis as the backend produced it.
type AnalysisCompletedMessage struct {
	AnalysisID  string          `json:"analysis_id"`
	UserID      string          `json:"user_id"`
	URL         string          `json:"url"`
	Result      json.RawMessage `json:"result"`
	CompletedAt time.Time       `json:"completed_at"`
}

type MetricMessage struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardReadyMessage tells subscribers that a dashboard can be displayed.
type DashboardReadyMessage struct {
	AnalysisID string          `json:"analysis_id"`
	UserID     string          `json:"user_id"`
	Platform   string          `json:"platform"`
	Metrics    []MetricMessage `json:"metrics"`
	ReadyAt    time.Time       `json:"ready_at"`
}
