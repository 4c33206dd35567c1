package insight

import (
	"testing"

	"insight-srv/pkg/payload"

	"github.com/stretchr/testify/assert"
)

func TestAudienceBreakdown(t *testing.T) {
	tcs := map[string]struct {
		in   AudienceSplit
		want AudienceWidths
	}{
		"sums to 100": {
			in:   AudienceSplit{Fans: 70, Neutrals: 20, Haters: 10},
			want: AudienceWidths{FansPercent: 70, NeutralsPercent: 20, HatersPercent: 10, FansWidth: 70, NeutralsWidth: 20, HatersWidth: 10},
		},
		"scaled up": {
			in:   AudienceSplit{Fans: 30, Neutrals: 10, Haters: 10},
			want: AudienceWidths{FansPercent: 30, NeutralsPercent: 10, HatersPercent: 10, FansWidth: 60, NeutralsWidth: 20, HatersWidth: 20},
		},
		"clamped": {
			in:   AudienceSplit{Fans: -5, Neutrals: 150, Haters: 0},
			want: AudienceWidths{NeutralsPercent: 100, NeutralsWidth: 100},
		},
		"all zero": {
			in:   AudienceSplit{},
			want: AudienceWidths{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, AudienceBreakdown(tc.in))
		})
	}
}

func TestAudienceBreakdownFillsBar(t *testing.T) {
	w := AudienceBreakdown(AudienceSplit{Fans: 50, Neutrals: 50, Haters: 50})
	assert.InDelta(t, 100, w.FansWidth+w.NeutralsWidth+w.HatersWidth, 1e-9)
	assert.InDelta(t, 33.333, w.FansWidth, 1e-3)
}

func TestSeverityClass(t *testing.T) {
	tcs := map[string]Severity{
		"Alta":           SeverityHigh,
		"muito ALTA":     SeverityHigh,
		"media":          SeverityMedium,
		"Média":          SeverityNeutral,
		"baixa":          SeverityLow,
		"high":           SeverityHigh,
		"Medium":         SeverityMedium,
		"low":            SeverityLow,
		"indefinida":     SeverityNeutral,
		"":               SeverityNeutral,
		"alta ou baixa?": SeverityHigh,
	}

	for in, want := range tcs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, SeverityClass(in))
		})
	}
}

func TestFormatMetricValue(t *testing.T) {
	tcs := map[string]struct {
		in   payload.Value
		want string
	}{
		"absent":     {in: payload.Value{}, want: "0"},
		"null":       {in: payload.Null(), want: "0"},
		"empty text": {in: payload.Text(""), want: "0"},
		"text":       {in: payload.Text("1,2 mil"), want: "1,2 mil"},
		"integer":    {in: payload.Number(1200), want: "1.200"},
		"fraction":   {in: payload.Number(1234.5), want: "1.234,5"},
		"rounded":    {in: payload.Number(0.12345), want: "0,123"},
		"small":      {in: payload.Number(12), want: "12"},
		"zero":       {in: payload.Number(0), want: "0"},
		"bool":       {in: payload.Bool(true), want: "true"},
		"mapping":    {in: payload.MustParse(`{"a":1}`), want: `{"a":1}`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMetricValue(tc.in))
		})
	}
}

func TestMetricCards(t *testing.T) {
	t.Run("summary with analysis fallback", func(t *testing.T) {
		p := NormalizeInsightPayload(payload.MustParse(`{"resumoQuantitativo": {"likes": 1200, "shares": "30"}}`))
		analysis := payload.MustParse(`{"numberOfLikes": 5, "commentsCount": 0}`)
		comments := []NormalizedComment{{Text: "a"}, {Text: "b"}}

		got := MetricCards(p, analysis, comments)

		assert.Equal(t, []MetricCard{
			{Key: MetricLikes, Label: "Likes", Value: "1.200"},
			{Key: MetricShares, Label: "Partilhas", Value: "30"},
			{Key: MetricCommentsAnalysed, Label: "Comentarios analisados", Value: "0"},
			{Key: MetricTopComments, Label: "Top comentarios", Value: "2"},
			{Key: MetricEngagement, Label: "Engajamento", Value: "1.230"},
		}, got)
	})

	t.Run("null summary value falls back", func(t *testing.T) {
		p := NormalizeInsightPayload(payload.MustParse(`{"resumoQuantitativo": {"likes": null, "alcanceEstimado": "10 mil"}}`))
		analysis := payload.MustParse(`{"numberOfLikes": "7", "shared": 3, "commentsCount": 12}`)

		got := DefaultsFor("en").MetricCards(p, analysis, nil)

		assert.Equal(t, []MetricCard{
			{Key: MetricLikes, Label: "Likes", Value: "7"},
			{Key: MetricShares, Label: "Shares", Value: "3"},
			{Key: MetricCommentsAnalysed, Label: "Comments analysed", Value: "12"},
			{Key: MetricEngagement, Label: "Engagement", Value: "10"},
			{Key: MetricEstimatedReach, Label: "Estimated reach", Value: "10 mil"},
		}, got)
	})

	t.Run("nothing known", func(t *testing.T) {
		got := MetricCards(Defaults(), payload.Value{}, nil)
		assert.Equal(t, []MetricCard{{Key: MetricCommentsAnalysed, Label: "Comentarios analisados", Value: "0"}}, got)
	})
}
