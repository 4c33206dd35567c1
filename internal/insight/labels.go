package insight

import (
	"insight-srv/pkg/locale"
	"insight-srv/pkg/payload"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Labels is the localized text used for defaults, placeholders and headings.
type Labels struct {
	Lang string

	Sentiment         string
	Unit              string
	PolarizationLevel string
	Severity          string

	Insight     string
	Insights    string
	Placeholder string

	Likes            string
	Shares           string
	CommentsAnalysed string
	TopComments      string
	Engagement       string
	EstimatedReach   string

	DashboardTitle      string
	AudienceHeading     string
	SentimentHeading    string
	ThemesHeading       string
	TriggersHeading     string
	PolarizationHeading string
	RisksHeading        string
	SuggestionsHeading  string
	CommentsHeading     string
	Fans                string
	Neutrals            string
	Haters              string
	Level               string
	SeverityLabel       string

	NoThemes      string
	NoTriggers    string
	NoRisks       string
	NoSuggestions string
	NoComments    string
}

const (
	msgSentiment         = "default.sentiment"
	msgUnit              = "default.unit"
	msgPolarizationLevel = "default.polarization_level"
	msgSeverity          = "default.severity"
	msgInsight           = "card.insight"
	msgInsights          = "card.insights"
	msgPlaceholder       = "card.placeholder"
	msgLikes             = "metric.likes"
	msgShares            = "metric.shares"
	msgCommentsAnalysed  = "metric.comments_analysed"
	msgTopComments       = "metric.top_comments"
	msgEngagement        = "metric.engagement"
	msgEstimatedReach    = "metric.estimated_reach"
	msgDashboardTitle    = "heading.dashboard"
	msgAudience          = "heading.audience"
	msgSentimentHeading  = "heading.sentiment"
	msgThemes            = "heading.themes"
	msgTriggers          = "heading.triggers"
	msgPolarization      = "heading.polarization"
	msgRisks             = "heading.risks"
	msgSuggestions       = "heading.suggestions"
	msgComments          = "heading.comments"
	msgFans              = "audience.fans"
	msgNeutrals          = "audience.neutrals"
	msgHaters            = "audience.haters"
	msgLevel             = "polarization.level"
	msgSeverityLabel     = "risk.severity"
	msgNoThemes          = "empty.themes"
	msgNoTriggers        = "empty.triggers"
	msgNoRisks           = "empty.risks"
	msgNoSuggestions     = "empty.suggestions"
	msgNoComments        = "empty.comments"
)

var translations = map[language.Tag]map[string]string{
	language.Portuguese: {
		msgSentiment:         "Indefinido",
		msgUnit:              "percentual",
		msgPolarizationLevel: "indefinido",
		msgSeverity:          "indefinida",
		msgInsight:           "Insight",
		msgInsights:          "Insights",
		msgPlaceholder:       "Envie um link para ver os insights gerados.",
		msgLikes:             "Likes",
		msgShares:            "Partilhas",
		msgCommentsAnalysed:  "Comentarios analisados",
		msgTopComments:       "Top comentarios",
		msgEngagement:        "Engajamento",
		msgEstimatedReach:    "Alcance estimado",
		msgDashboardTitle:    "Painel de Insights",
		msgAudience:          "Distribuicao do publico",
		msgSentimentHeading:  "Sentimento geral",
		msgThemes:            "Principais temas",
		msgTriggers:          "Gatilhos de engajamento",
		msgPolarization:      "Polarizacao do publico",
		msgRisks:             "Riscos de reputacao",
		msgSuggestions:       "Sugestoes de acao",
		msgComments:          "Top comentarios",
		msgFans:              "Fas",
		msgNeutrals:          "Neutros",
		msgHaters:            "Haters",
		msgLevel:             "Nivel",
		msgSeverityLabel:     "Severidade",
		msgNoThemes:          "Sem temas detectados.",
		msgNoTriggers:        "Nenhum gatilho identificado.",
		msgNoRisks:           "Nenhum risco relevante encontrado.",
		msgNoSuggestions:     "Nenhuma sugestão adicional.",
		msgNoComments:        "Nenhum comentario destacado.",
	},
	language.English: {
		msgSentiment:         "Undefined",
		msgUnit:              "percentage",
		msgPolarizationLevel: "undefined",
		msgSeverity:          "undefined",
		msgInsight:           "Insight",
		msgInsights:          "Insights",
		msgPlaceholder:       "Submit a link to see the generated insights.",
		msgLikes:             "Likes",
		msgShares:            "Shares",
		msgCommentsAnalysed:  "Comments analysed",
		msgTopComments:       "Top comments",
		msgEngagement:        "Engagement",
		msgEstimatedReach:    "Estimated reach",
		msgDashboardTitle:    "Insights Dashboard",
		msgAudience:          "Audience distribution",
		msgSentimentHeading:  "Overall sentiment",
		msgThemes:            "Main themes",
		msgTriggers:          "Engagement triggers",
		msgPolarization:      "Audience polarization",
		msgRisks:             "Reputation risks",
		msgSuggestions:       "Suggested actions",
		msgComments:          "Top comments",
		msgFans:              "Fans",
		msgNeutrals:          "Neutrals",
		msgHaters:            "Haters",
		msgLevel:             "Level",
		msgSeverityLabel:     "Severity",
		msgNoThemes:          "No themes detected.",
		msgNoTriggers:        "No trigger identified.",
		msgNoRisks:           "No relevant risk found.",
		msgNoSuggestions:     "No additional suggestion.",
		msgNoComments:        "No highlighted comment.",
	},
}

var (
	labelCatalog = buildCatalog()
	labelsByLang = map[string]Labels{
		locale.PT: buildLabels(locale.PT),
		locale.EN: buildLabels(locale.EN),
	}
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Portuguese))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func buildLabels(lang string) Labels {
	p := message.NewPrinter(locale.Tag(lang), message.Catalog(labelCatalog))
	return Labels{
		Lang:                lang,
		Sentiment:           p.Sprintf(msgSentiment),
		Unit:                p.Sprintf(msgUnit),
		PolarizationLevel:   p.Sprintf(msgPolarizationLevel),
		Severity:            p.Sprintf(msgSeverity),
		Insight:             p.Sprintf(msgInsight),
		Insights:            p.Sprintf(msgInsights),
		Placeholder:         p.Sprintf(msgPlaceholder),
		Likes:               p.Sprintf(msgLikes),
		Shares:              p.Sprintf(msgShares),
		CommentsAnalysed:    p.Sprintf(msgCommentsAnalysed),
		TopComments:         p.Sprintf(msgTopComments),
		Engagement:          p.Sprintf(msgEngagement),
		EstimatedReach:      p.Sprintf(msgEstimatedReach),
		DashboardTitle:      p.Sprintf(msgDashboardTitle),
		AudienceHeading:     p.Sprintf(msgAudience),
		SentimentHeading:    p.Sprintf(msgSentimentHeading),
		ThemesHeading:       p.Sprintf(msgThemes),
		TriggersHeading:     p.Sprintf(msgTriggers),
		PolarizationHeading: p.Sprintf(msgPolarization),
		RisksHeading:        p.Sprintf(msgRisks),
		SuggestionsHeading:  p.Sprintf(msgSuggestions),
		CommentsHeading:     p.Sprintf(msgComments),
		Fans:                p.Sprintf(msgFans),
		Neutrals:            p.Sprintf(msgNeutrals),
		Haters:              p.Sprintf(msgHaters),
		Level:               p.Sprintf(msgLevel),
		SeverityLabel:       p.Sprintf(msgSeverityLabel),
		NoThemes:            p.Sprintf(msgNoThemes),
		NoTriggers:          p.Sprintf(msgNoTriggers),
		NoRisks:             p.Sprintf(msgNoRisks),
		NoSuggestions:       p.Sprintf(msgNoSuggestions),
		NoComments:          p.Sprintf(msgNoComments),
	}
}

// DefaultsFor returns the label set for a language code or header value.
// Unsupported languages get the Portuguese set.
func DefaultsFor(lang string) Labels {
	return labelsByLang[locale.ParseLang(lang)]
}

// Defaults returns the payload every field of which holds its default value.
func Defaults() InsightPayload {
	return DefaultsFor(locale.PT).Defaults()
}

// Defaults returns the all-defaults payload in this label set's language.
func (l Labels) Defaults() InsightPayload {
	return InsightPayload{
		OverallSentiment:    l.Sentiment,
		MainThemes:          []string{},
		AudienceSplit:       AudienceSplit{Unit: l.Unit},
		EngagementTriggers:  []EngagementTrigger{},
		ReputationRisks:     []ReputationRisk{},
		TopComments:         []payload.Value{},
		Polarization:        Polarization{Level: l.PolarizationLevel},
		ActionSuggestions:   []string{},
		QuantitativeSummary: NewQuantitativeSummary(payload.Map()),
	}
}
