package usecase

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	"text/template"
	"time"

	"insight-srv/internal/insight"
	"insight-srv/internal/model"
	"insight-srv/pkg/locale"
	"insight-srv/pkg/payload"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

type reportLabels struct {
	Title        string
	Link         string
	Platform     string
	Generated    string
	Summary      string
	Sentiment    string
	Polarization string
	Metrics      string
	Audience     string
	Fans         string
	Neutrals     string
	Haters       string
	Themes       string
	Triggers     string
	Risks        string
	Suggestions  string
	Comments     string
	Likes        string
	None         string
}

var reportLabelsByLang = map[string]reportLabels{
	locale.PT: {
		Title:        "Relatório de insights",
		Link:         "Link",
		Platform:     "Plataforma",
		Generated:    "Gerado em",
		Summary:      "Resumo",
		Sentiment:    "Sentimento geral",
		Polarization: "Polarização do público",
		Metrics:      "Métricas",
		Audience:     "Fãs vs haters",
		Fans:         "Fãs",
		Neutrals:     "Neutros",
		Haters:       "Haters",
		Themes:       "Principais temas",
		Triggers:     "Gatilhos de engajamento",
		Risks:        "Riscos de reputação",
		Suggestions:  "Sugestões de ação",
		Comments:     "Top comentários",
		Likes:        "curtidas",
		None:         "Nenhum item.",
	},
	locale.EN: {
		Title:        "Insights report",
		Link:         "Link",
		Platform:     "Platform",
		Generated:    "Generated at",
		Summary:      "Summary",
		Sentiment:    "Overall sentiment",
		Polarization: "Audience polarization",
		Metrics:      "Metrics",
		Audience:     "Fans vs haters",
		Fans:         "Fans",
		Neutrals:     "Neutrals",
		Haters:       "Haters",
		Themes:       "Main themes",
		Triggers:     "Engagement triggers",
		Risks:        "Reputation risks",
		Suggestions:  "Action suggestions",
		Comments:     "Top comments",
		Likes:        "likes",
		None:         "No items.",
	},
}

const markdownTemplate = `# {{.L.Title}}

**{{.L.Link}}:** {{.Analysis.URL}}  
**{{.L.Platform}}:** {{.Analysis.Platform}}  
**{{.L.Generated}}:** {{.Generated}}

## {{.L.Summary}}

- **{{.L.Sentiment}}:** {{line .D.Payload.OverallSentiment}}
- **{{.L.Polarization}}:** {{line .D.Polarization.Level}} ({{num .D.Polarization.Score}})

## {{.L.Metrics}}

{{range .D.Metrics}}- **{{.Label}}:** {{.Value}}
{{else}}{{$.L.None}}
{{end}}
## {{.L.Audience}}

- {{.L.Fans}}: {{num .D.Audience.FansPercent}}%
- {{.L.Neutrals}}: {{num .D.Audience.NeutralsPercent}}%
- {{.L.Haters}}: {{num .D.Audience.HatersPercent}}%

## {{.L.Themes}}

{{range .D.Payload.MainThemes}}- {{line .}}
{{else}}{{$.L.None}}
{{end}}
## {{.L.Triggers}}

{{range .D.Triggers}}- {{line .Trigger}}{{if .Impact}} ({{num .Impact}}){{end}}
{{else}}{{$.L.None}}
{{end}}
## {{.L.Risks}}

{{range .D.Risks}}- **{{line .Severity}}:** {{line .Alert}}
{{else}}{{$.L.None}}
{{end}}
## {{.L.Suggestions}}

{{range .D.Payload.ActionSuggestions}}- {{line .}}
{{else}}{{$.L.None}}
{{end}}
## {{.L.Comments}}

{{range .D.Comments}}> {{line .Text}}{{if .Likes}} ({{num (deref .Likes)}} {{$.L.Likes}}){{end}}

{{else}}{{$.L.None}}
{{end}}`

var (
	mdTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
		"num":   payload.NumberString,
		"line":  oneLine,
		"deref": func(f *float64) float64 { return *f },
	}).Parse(markdownTemplate))

	htmlDocument = htmltemplate.Must(htmltemplate.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))
)

// oneLine keeps free text from breaking the markdown structure.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func labelsFor(lang string) reportLabels {
	return reportLabelsByLang[locale.ParseLang(lang)]
}

// renderMarkdown writes the dashboard of an analysis as a markdown document.
func renderMarkdown(a model.Analysis, d insight.Dashboard, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := mdTemplate.Execute(&buf, map[string]interface{}{
		"L":         labelsFor(d.Lang),
		"Analysis":  a,
		"D":         d,
		"Generated": generatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderHTML converts the markdown report into a sanitized standalone page.
func renderHTML(md []byte, lang string) ([]byte, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	body := bluemonday.UGCPolicy().SanitizeBytes(markdown.Render(doc, renderer))

	var buf bytes.Buffer
	err := htmlDocument.Execute(&buf, map[string]interface{}{
		"Lang":  locale.ParseLang(lang),
		"Title": labelsFor(lang).Title,
		"Body":  htmltemplate.HTML(body),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
