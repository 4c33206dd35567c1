package insight

import "insight-srv/pkg/payload"

// NormalizeInsightPayload maps an arbitrary analysis payload onto a fully
// populated InsightPayload using the Portuguese defaults. It never fails.
func NormalizeInsightPayload(raw payload.Value) InsightPayload {
	return DefaultsFor("").Normalize(raw)
}

// Normalize is NormalizeInsightPayload with this label set's defaults.
func (l Labels) Normalize(raw payload.Value) InsightPayload {
	if !raw.IsObject() {
		return l.Defaults()
	}

	audience := raw.Lookup(keyAudience...)
	polarization := raw.Lookup(keyPolarization...)

	return InsightPayload{
		OverallSentiment: textOr(raw.Lookup(keySentiment...), l.Sentiment),
		MainThemes:       textList(raw.Lookup(keyThemes...)),
		AudienceSplit: AudienceSplit{
			Fans:     payload.ToNumber(audience.Lookup(keyAudienceFans...)),
			Neutrals: payload.ToNumber(audience.Lookup(keyAudienceNeutrals...)),
			Haters:   payload.ToNumber(audience.Lookup(keyAudienceHaters...)),
			Unit:     truthyTextOr(audience.Lookup(keyAudienceUnit...), l.Unit),
		},
		EngagementTriggers: l.triggers(raw.Lookup(keyTriggers...)),
		ReputationRisks:    l.risks(raw.Lookup(keyRisks...)),
		TopComments:        rawList(raw.Lookup(keyTopComments...)),
		Polarization: Polarization{
			Score: payload.ToNumber(polarization.Lookup(keyPolarizationScore...)),
			Level: textOr(polarization.Lookup(keyPolarizationLevel...), l.PolarizationLevel),
		},
		ActionSuggestions:   textList(raw.Lookup(keySuggestions...)),
		QuantitativeSummary: summary(raw.Lookup(keySummary...)),
	}
}

func (l Labels) triggers(src payload.Value) []EngagementTrigger {
	out := []EngagementTrigger{}
	for _, item := range src.Items() {
		switch {
		case item.Kind() == payload.KindText:
			out = append(out, EngagementTrigger{Trigger: item.Str()})
		case item.IsObject():
			out = append(out, EngagementTrigger{
				Trigger: textOrElement(item, keyTriggerName),
				Impact:  payload.ToNumber(item.Lookup(keyTriggerImpact...)),
			})
		}
	}
	return out
}

func (l Labels) risks(src payload.Value) []ReputationRisk {
	out := []ReputationRisk{}
	for _, item := range src.Items() {
		switch {
		case item.Kind() == payload.KindText:
			out = append(out, ReputationRisk{Alert: item.Str(), Severity: l.Severity})
		case item.IsObject():
			out = append(out, ReputationRisk{
				Alert:    textOrElement(item, keyRiskAlert),
				Severity: textOr(item.Lookup(keyRiskSeverity...), l.Severity),
			})
		}
	}
	return out
}

// textOr renders v as text, def when that is empty.
func textOr(v payload.Value, def string) string {
	if s := payload.ToText(v); s != "" {
		return s
	}
	return def
}

// truthyTextOr renders v as text only when v is truthy.
func truthyTextOr(v payload.Value, def string) string {
	if !v.Truthy() {
		return def
	}
	return payload.ToText(v)
}

// textOrElement reads a named text member, falling back to the whole element
// when the member is missing. A text member is kept as is, even when empty.
func textOrElement(item payload.Value, keys []string) string {
	field := item.Lookup(keys...)
	if field.Kind() == payload.KindText {
		return field.Str()
	}
	return payload.ToText(field.Or(item))
}

func textList(src payload.Value) []string {
	out := []string{}
	for _, item := range src.Items() {
		if s := payload.ToText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func rawList(src payload.Value) []payload.Value {
	if items := src.Items(); items != nil {
		return items
	}
	return []payload.Value{}
}

func summary(src payload.Value) QuantitativeSummary {
	switch src.Kind() {
	case payload.KindMapping, payload.KindSequence:
		return NewQuantitativeSummary(src)
	default:
		return NewQuantitativeSummary(payload.Map())
	}
}
