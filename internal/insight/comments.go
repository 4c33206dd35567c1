package insight

import "insight-srv/pkg/payload"

// NormalizeComments turns loosely shaped comments into displayable ones,
// keeping their order and dropping entries without text.
func NormalizeComments(items []payload.Value) []NormalizedComment {
	out := []NormalizedComment{}
	for _, item := range items {
		c := normalizeComment(item)
		if c.Text == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func normalizeComment(item payload.Value) NormalizedComment {
	switch {
	case item.Kind() == payload.KindText:
		return NormalizedComment{Text: item.Str()}
	case item.IsObject():
		text, ok := firstText(item, keyCommentText)
		if !ok {
			text = item.JSON()
		}
		c := NormalizedComment{Text: text}
		if likes := payload.Numeric(item.Get(keyCommentLikes)); payload.IsFinite(likes) {
			c.Likes = &likes
		}
		c.Sentiment, _ = firstText(item, keyCommentSentiment)
		c.Theme, _ = firstText(item, keyCommentTheme)
		return c
	default:
		return NormalizedComment{Text: scalarString(item)}
	}
}

// firstText returns the first member among keys holding text.
func firstText(item payload.Value, keys []string) (string, bool) {
	for _, k := range keys {
		if v := item.Get(k); v.Kind() == payload.KindText {
			return v.Str(), true
		}
	}
	return "", false
}

// scalarString spells out a non-text scalar, including the missing and null markers.
func scalarString(v payload.Value) string {
	switch v.Kind() {
	case payload.KindAbsent:
		return "undefined"
	case payload.KindNull:
		return "null"
	default:
		return payload.ToText(v)
	}
}
