package http

import (
	"insight-srv/internal/insight"
	"insight-srv/pkg/payload"
)

// normalizeReq is the raw analysis exactly as the analysis backend returned it.
type normalizeReq struct {
	Raw  payload.Value
	Lang string
}

func (r normalizeReq) toInput() insight.NormalizeInput {
	return insight.NormalizeInput{
		Raw:  r.Raw,
		Lang: r.Lang,
	}
}

func (r normalizeReq) toCardsInput() insight.CardsInput {
	return insight.CardsInput{
		Raw:  r.Raw,
		Lang: r.Lang,
	}
}

type metricResp struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type cardResp struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentResp struct {
	Text      string   `json:"text"`
	Likes     *float64 `json:"likes,omitempty"`
	Sentiment string   `json:"sentiment,omitempty"`
	Theme     string   `json:"theme,omitempty"`
}

type dashboardResp struct {
	Lang         string                    `json:"lang"`
	Payload      insight.InsightPayload    `json:"payload" swaggertype:"object"`
	Cards        []cardResp                `json:"cards"`
	Comments     []commentResp             `json:"comments"`
	Metrics      []metricResp              `json:"metrics"`
	Audience     insight.AudienceWidths    `json:"audience"`
	Triggers     []insight.TriggerBar      `json:"triggers"`
	Risks        []insight.RiskBadge       `json:"risks"`
	Polarization insight.PolarizationGauge `json:"polarization"`
	FullReport   bool                      `json:"full_report"`
}

type cardsResp struct {
	Cards []cardResp `json:"cards"`
}

func (h *handler) newDashboardResp(d insight.Dashboard) dashboardResp {
	metrics := make([]metricResp, 0, len(d.Metrics))
	for _, m := range d.Metrics {
		metrics = append(metrics, metricResp{Key: m.Key, Label: m.Label, Value: m.Value})
	}

	comments := make([]commentResp, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, commentResp{Text: c.Text, Likes: c.Likes, Sentiment: c.Sentiment, Theme: c.Theme})
	}

	return dashboardResp{
		Lang:         d.Lang,
		Payload:      d.Payload,
		Cards:        h.newCardsResp(d.Cards).Cards,
		Comments:     comments,
		Metrics:      metrics,
		Audience:     d.Audience,
		Triggers:     d.Triggers,
		Risks:        d.Risks,
		Polarization: d.Polarization,
		FullReport:   d.FullReport,
	}
}

func (h *handler) newCardsResp(cards []insight.InsightCard) cardsResp {
	out := make([]cardResp, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardResp{Title: c.Title, Content: c.Content})
	}
	return cardsResp{Cards: out}
}
