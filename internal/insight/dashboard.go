package insight

import "insight-srv/pkg/payload"

// BuildDashboard derives the whole dashboard from a raw analysis result with
// the Portuguese labels.
func BuildDashboard(analysis payload.Value) Dashboard {
	return DefaultsFor("").Dashboard(analysis)
}

// Dashboard derives the whole dashboard from a raw analysis result. The
// insights live under "insights" when present, otherwise the analysis itself
// is taken as the insight payload.
func (l Labels) Dashboard(analysis payload.Value) Dashboard {
	raw := analysis.Get(keyAnalysisInsights).Or(analysis)
	p := l.Normalize(raw)

	source := p.TopComments
	if len(source) == 0 {
		source = analysis.Get(keyAnalysisTopComments).Items()
	}
	comments := NormalizeComments(source)

	triggers := make([]TriggerBar, 0, len(p.EngagementTriggers))
	for _, t := range p.EngagementTriggers {
		triggers = append(triggers, TriggerBar{Trigger: t.Trigger, Impact: t.Impact, Width: payload.ClampPercent(t.Impact)})
	}

	risks := make([]RiskBadge, 0, len(p.ReputationRisks))
	for _, r := range p.ReputationRisks {
		risks = append(risks, RiskBadge{Alert: r.Alert, Severity: r.Severity, Class: SeverityClass(r.Severity)})
	}

	return Dashboard{
		Lang:     l.Lang,
		Payload:  p,
		Cards:    l.Cards(raw),
		Comments: comments,
		Metrics:  l.MetricCards(p, analysis, comments),
		Audience: AudienceBreakdown(p.AudienceSplit),
		Triggers: triggers,
		Risks:    risks,
		Polarization: PolarizationGauge{
			Score: p.Polarization.Score,
			Level: p.Polarization.Level,
			Width: payload.ClampPercent(p.Polarization.Score),
		},
		FullReport: resolveMetrics(p, analysis).any(),
	}
}
