package insight

import "insight-srv/pkg/payload"

// InsightPayload is the structured analysis of a post, always fully populated.
type InsightPayload struct {
	OverallSentiment    string              `json:"overallSentiment"`
	MainThemes          []string            `json:"mainThemes"`
	AudienceSplit       AudienceSplit       `json:"audienceSplit"`
	EngagementTriggers  []EngagementTrigger `json:"engagementTriggers"`
	ReputationRisks     []ReputationRisk    `json:"reputationRisks"`
	TopComments         []payload.Value     `json:"topComments"`
	Polarization        Polarization        `json:"polarization"`
	ActionSuggestions   []string            `json:"actionSuggestions"`
	QuantitativeSummary QuantitativeSummary `json:"quantitativeSummary"`
}

type AudienceSplit struct {
	Fans     float64 `json:"fans"`
	Neutrals float64 `json:"neutrals"`
	Haters   float64 `json:"haters"`
	Unit     string  `json:"unit"`
}

type EngagementTrigger struct {
	Trigger string  `json:"trigger"`
	Impact  float64 `json:"impact"`
}

type ReputationRisk struct {
	Alert    string `json:"alert"`
	Severity string `json:"severity"`
}

type Polarization struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// QuantitativeSummary keeps the upstream summary record as received.
// Its members are coerced only when read.
type QuantitativeSummary struct {
	raw payload.Value
}

func NewQuantitativeSummary(raw payload.Value) QuantitativeSummary {
	return QuantitativeSummary{raw: raw}
}

func (q QuantitativeSummary) Raw() payload.Value {
	if q.raw.IsAbsent() {
		return payload.Map()
	}
	return q.raw
}

func (q QuantitativeSummary) Likes() payload.Value {
	return q.raw.Lookup(keySummaryLikes...)
}

func (q QuantitativeSummary) Shares() payload.Value {
	return q.raw.Lookup(keySummaryShares...)
}

func (q QuantitativeSummary) Comments() payload.Value {
	return q.raw.Lookup(keySummaryComments...)
}

func (q QuantitativeSummary) EstimatedReach() payload.Value {
	return q.raw.Lookup(keySummaryReach...)
}

func (q QuantitativeSummary) Equal(o QuantitativeSummary) bool {
	return q.Raw().Equal(o.Raw())
}

func (q QuantitativeSummary) MarshalJSON() ([]byte, error) {
	return q.Raw().MarshalJSON()
}

func (q *QuantitativeSummary) UnmarshalJSON(data []byte) error {
	return q.raw.UnmarshalJSON(data)
}

// NormalizedComment is a displayable comment.
type NormalizedComment struct {
	Text      string   `json:"text"`
	Likes     *float64 `json:"likes,omitempty"`
	Sentiment string   `json:"sentiment,omitempty"`
	Theme     string   `json:"theme,omitempty"`
}

// InsightCard is a free-form titled insight used when the payload has no recognizable structure.
type InsightCard struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

const (
	MetricLikes            = "likes"
	MetricShares           = "shares"
	MetricCommentsAnalysed = "comments_analysed"
	MetricTopComments      = "top_comments"
	MetricEngagement       = "engagement"
	MetricEstimatedReach   = "estimated_reach"
)

type MetricCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// AudienceWidths holds the clamped audience percentages and their bar widths,
// which sum to 100 whenever any percentage is positive.
type AudienceWidths struct {
	FansPercent     float64 `json:"fans_percent"`
	NeutralsPercent float64 `json:"neutrals_percent"`
	HatersPercent   float64 `json:"haters_percent"`
	FansWidth       float64 `json:"fans_width"`
	NeutralsWidth   float64 `json:"neutrals_width"`
	HatersWidth     float64 `json:"haters_width"`
}

type Severity string

const (
	SeverityHigh    Severity = "high"
	SeverityMedium  Severity = "medium"
	SeverityLow     Severity = "low"
	SeverityNeutral Severity = "neutral"
)

type TriggerBar struct {
	Trigger string  `json:"trigger"`
	Impact  float64 `json:"impact"`
	Width   float64 `json:"width"`
}

type RiskBadge struct {
	Alert    string   `json:"alert"`
	Severity string   `json:"severity"`
	Class    Severity `json:"class"`
}

type PolarizationGauge struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
	Width float64 `json:"width"`
}

// Dashboard is everything needed to render an analysis result.
type Dashboard struct {
	Lang         string              `json:"lang"`
	Payload      InsightPayload      `json:"payload"`
	Cards        []InsightCard       `json:"cards"`
	Comments     []NormalizedComment `json:"comments"`
	Metrics      []MetricCard        `json:"metrics"`
	Audience     AudienceWidths      `json:"audience"`
	Triggers     []TriggerBar        `json:"triggers"`
	Risks        []RiskBadge         `json:"risks"`
	Polarization PolarizationGauge   `json:"polarization"`
	FullReport   bool                `json:"full_report"`
}

// NormalizeInput carries a raw analysis result as returned by the analysis backend.
type NormalizeInput struct {
	Raw  payload.Value
	Lang string
}

type CardsInput struct {
	Raw  payload.Value
	Lang string
}
