package insight

import (
	"strconv"

	"insight-srv/pkg/payload"
)

// NormalizeInsights renders any payload shape as a non-empty list of titled
// cards, falling back to a single placeholder card.
func NormalizeInsights(raw payload.Value) []InsightCard {
	return DefaultsFor("").Cards(raw)
}

// Cards is NormalizeInsights with this label set's titles and placeholder.
func (l Labels) Cards(raw payload.Value) []InsightCard {
	if !raw.Truthy() {
		return l.placeholder()
	}

	switch raw.Kind() {
	case payload.KindSequence:
		cards := []InsightCard{}
		for i, item := range raw.Items() {
			// Numbering follows the element position, skipped elements included.
			index := l.Insight + " " + strconv.Itoa(i+1)
			switch {
			case item.Kind() == payload.KindText:
				cards = append(cards, InsightCard{Title: index, Content: item.Str()})
			case item.IsObject():
				title := payload.ToText(item.Get(keyCardTitle))
				if title == "" {
					title = index
				}
				content := payload.ToText(item.Lookup(keyCardContent...).Or(item))
				if content == "" {
					content = item.JSON()
				}
				cards = append(cards, InsightCard{Title: title, Content: content})
			}
		}
		if len(cards) == 0 {
			return l.placeholder()
		}
		return cards
	case payload.KindText:
		return []InsightCard{{Title: l.Insights, Content: raw.Str()}}
	default:
		return []InsightCard{{Title: l.Insights, Content: raw.JSON()}}
	}
}

func (l Labels) placeholder() []InsightCard {
	return []InsightCard{{Title: l.Insights, Content: l.Placeholder}}
}
