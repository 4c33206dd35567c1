package insight

import (
	"testing"

	"insight-srv/pkg/payload"

	"github.com/stretchr/testify/assert"
)

func likes(f float64) *float64 { return &f }

func TestNormalizeComments(t *testing.T) {
	tcs := map[string]struct {
		in   string
		want []NormalizedComment
	}{
		"mixed list keeps the serialized empty object": {
			in: `[{}, {"text": "ok"}, "bare", 42]`,
			want: []NormalizedComment{
				{Text: "{}"},
				{Text: "ok"},
				{Text: "bare"},
				{Text: "42"},
			},
		},
		"text field order": {
			in: `[{"texto": "c", "comment": "b", "text": "a"}, {"texto": "c", "comment": "b"}, {"texto": "c", "text": 5}]`,
			want: []NormalizedComment{
				{Text: "a"},
				{Text: "b"},
				{Text: "c"},
			},
		},
		"no text field serializes the element": {
			in:   `[{"likes": 3}]`,
			want: []NormalizedComment{{Text: `{"likes":3}`, Likes: likes(3)}},
		},
		"likes coercion": {
			in: `[{"text": "a", "likes": "12"}, {"text": "b", "likes": "x"}, {"text": "c", "likes": null}, {"text": "d"}, {"text": "e", "likes": true}, {"text": "f", "likes": "1,5"}]`,
			want: []NormalizedComment{
				{Text: "a", Likes: likes(12)},
				{Text: "b"},
				{Text: "c", Likes: likes(0)},
				{Text: "d"},
				{Text: "e", Likes: likes(1)},
				{Text: "f"},
			},
		},
		"sentiment and theme only when text": {
			in: `[{"text": "a", "sentimento": "positivo", "tema": "moda"}, {"text": "b", "sentimento": 1, "tema": null}, {"text": "c", "sentiment": "neg", "theme": "x"}]`,
			want: []NormalizedComment{
				{Text: "a", Sentiment: "positivo", Theme: "moda"},
				{Text: "b"},
				{Text: "c", Sentiment: "neg", Theme: "x"},
			},
		},
		"scalars are spelled out": {
			in: `[null, true, 1.5, ""]`,
			want: []NormalizedComment{
				{Text: "null"},
				{Text: "true"},
				{Text: "1.5"},
			},
		},
		"empty text field is dropped": {
			in:   `[{"text": ""}, "x"]`,
			want: []NormalizedComment{{Text: "x"}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeComments(payload.MustParse(tc.in).Items()))
		})
	}
}

func TestNormalizeCommentsEmpty(t *testing.T) {
	assert.Equal(t, []NormalizedComment{}, NormalizeComments(nil))
	assert.Equal(t, []NormalizedComment{}, NormalizeComments([]payload.Value{}))
	assert.Equal(t, []NormalizedComment{{Text: "undefined"}}, NormalizeComments([]payload.Value{{}}))
}
