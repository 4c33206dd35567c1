package insight

import (
	"strconv"
	"strings"

	"insight-srv/pkg/payload"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxMetricFractionDigits = 3

var metricPrinter = message.NewPrinter(language.BrazilianPortuguese)

// AudienceBreakdown clamps each audience bucket to [0, 100] and scales the
// bar widths so they fill the whole bar. All widths are 0 when nothing is positive.
func AudienceBreakdown(split AudienceSplit) AudienceWidths {
	w := AudienceWidths{
		FansPercent:     payload.ClampPercent(split.Fans),
		NeutralsPercent: payload.ClampPercent(split.Neutrals),
		HatersPercent:   payload.ClampPercent(split.Haters),
	}
	total := w.FansPercent + w.NeutralsPercent + w.HatersPercent
	if total <= 0 {
		return w
	}
	scale := 100 / total
	w.FansWidth = w.FansPercent * scale
	w.NeutralsWidth = w.NeutralsPercent * scale
	w.HatersWidth = w.HatersPercent * scale
	return w
}

// SeverityClass buckets a free-text severity level.
func SeverityClass(level string) Severity {
	value := strings.ToLower(level)
	switch {
	case strings.Contains(value, "alta"), strings.Contains(value, "high"):
		return SeverityHigh
	case strings.Contains(value, "media"), strings.Contains(value, "medium"):
		return SeverityMedium
	case strings.Contains(value, "baixa"), strings.Contains(value, "low"):
		return SeverityLow
	default:
		return SeverityNeutral
	}
}

// FormatMetricValue renders a summary value for a metric card. Numbers use
// Brazilian grouping ("1.234,5"); missing values read "0".
func FormatMetricValue(v payload.Value) string {
	switch v.Kind() {
	case payload.KindAbsent, payload.KindNull:
		return "0"
	case payload.KindText:
		if v.Str() == "" {
			return "0"
		}
		return v.Str()
	case payload.KindNumber:
		return formatMetricNumber(v.Num())
	default:
		return payload.ToText(v)
	}
}

func formatMetricNumber(f float64) string {
	return metricPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(maxMetricFractionDigits)))
}

// MetricCards builds the headline metric cards with the Portuguese labels.
func MetricCards(p InsightPayload, analysis payload.Value, comments []NormalizedComment) []MetricCard {
	return DefaultsFor("").MetricCards(p, analysis, comments)
}

// MetricCards builds the headline metric cards. Summary values missing from the
// payload fall back to the counters on the analysis record. Cards that read
// zero are left out, except the analysed comments count.
func (l Labels) MetricCards(p InsightPayload, analysis payload.Value, comments []NormalizedComment) []MetricCard {
	m := resolveMetrics(p, analysis)
	engagement := payload.ParseCount(m.likes) + payload.ParseCount(m.shares)

	cards := []MetricCard{
		{Key: MetricLikes, Label: l.Likes, Value: FormatMetricValue(m.likes)},
		{Key: MetricShares, Label: l.Shares, Value: FormatMetricValue(m.shares)},
		{Key: MetricCommentsAnalysed, Label: l.CommentsAnalysed, Value: FormatMetricValue(m.comments)},
		{Key: MetricTopComments, Label: l.TopComments, Value: strconv.Itoa(len(comments))},
		{Key: MetricEngagement, Label: l.Engagement, Value: formatMetricNumber(engagement)},
		{Key: MetricEstimatedReach, Label: l.EstimatedReach, Value: FormatMetricValue(m.reach)},
	}

	out := make([]MetricCard, 0, len(cards))
	for _, c := range cards {
		if c.Key != MetricCommentsAnalysed && c.Value == "0" {
			continue
		}
		out = append(out, c)
	}
	return out
}

type resolvedMetrics struct {
	likes    payload.Value
	shares   payload.Value
	comments payload.Value
	reach    payload.Value
}

func (m resolvedMetrics) any() bool {
	return !m.likes.IsAbsent() || !m.shares.IsAbsent() || !m.comments.IsAbsent()
}

func resolveMetrics(p InsightPayload, analysis payload.Value) resolvedMetrics {
	s := p.QuantitativeSummary
	return resolvedMetrics{
		likes:    s.Likes().Or(analysis.Get(keyAnalysisLikes)),
		shares:   s.Shares().Or(analysis.Get(keyAnalysisShares)),
		comments: s.Comments().Or(analysis.Get(keyAnalysisComments)),
		reach:    s.EstimatedReach(),
	}
}
