package usecase

import (
	"context"
	"testing"

	"insight-srv/internal/insight"
	"insight-srv/pkg/log"
	"insight-srv/pkg/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	uc := New(log.NewNop())

	tcs := map[string]struct {
		input     insight.NormalizeInput
		lang      string
		sentiment string
	}{
		"portuguese analysis": {
			input:     insight.NormalizeInput{Raw: payload.MustParse(`{"insights": {"sentimentoGeral": "positivo"}}`), Lang: "pt"},
			lang:      "pt",
			sentiment: "positivo",
		},
		"absent payload in english": {
			input:     insight.NormalizeInput{Lang: "en"},
			lang:      "en",
			sentiment: "Undefined",
		},
		"text payload": {
			input:     insight.NormalizeInput{Raw: payload.Text("resultado livre")},
			lang:      "pt",
			sentiment: "Indefinido",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := uc.Normalize(context.Background(), tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.lang, got.Lang)
			assert.Equal(t, tc.sentiment, got.Payload.OverallSentiment)
			assert.NotEmpty(t, got.Cards)
		})
	}
}

func TestCards(t *testing.T) {
	uc := New(log.NewNop())
	labels := insight.DefaultsFor("pt")

	got, err := uc.Cards(context.Background(), insight.CardsInput{Raw: payload.Null()})
	require.NoError(t, err)
	assert.Equal(t, []insight.InsightCard{{Title: labels.Insights, Content: labels.Placeholder}}, got)

	got, err = uc.Cards(context.Background(), insight.CardsInput{Raw: payload.Text("único")})
	require.NoError(t, err)
	assert.Equal(t, []insight.InsightCard{{Title: labels.Insights, Content: "único"}}, got)
}
