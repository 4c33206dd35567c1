package locale

import "golang.org/x/text/language"

const (
	// PT is Portuguese, the language the upstream analysis is produced in.
	PT = "pt"
	// EN is English.
	EN = "en"
)

// LangList contains all supported language codes.
var LangList = []string{PT, EN}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = PT

// Tags mirrors LangList; the first entry is the matcher fallback.
var Tags = []language.Tag{language.Portuguese, language.English}

var matcher = language.NewMatcher(Tags)
