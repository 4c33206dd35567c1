package locale

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// ParseLang resolves a lang header or Accept-Language value to a supported
// code. "pt-BR", "en-US,en;q=0.9" and "english" are all understood;
// anything unmatched returns DefaultLang.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	switch lang {
	case "":
		return DefaultLang
	case "english", "inglês", "ingles":
		return EN
	case "portuguese", "português", "portugues":
		return PT
	}

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return LangList[idx]
}

// Tag returns the language tag of a supported code, the default tag otherwise.
func Tag(lang string) language.Tag {
	for i, supported := range LangList {
		if lang == supported {
			return Tags[i]
		}
	}
	return Tags[0]
}

// IsValidLang reports whether the language code is supported.
func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetLang returns the locale from context, or DefaultLang if not set.
func GetLang(ctx context.Context) string {
	lang, ok := GetLocaleFromContext(ctx)
	if !ok {
		return DefaultLang
	}
	return lang
}

// SetLocaleToContext sets the locale in the context. Invalid lang is replaced with DefaultLang.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, Locale{}, lang)
}

// GetLocaleFromContext returns the locale from context. Second return is false if not set or empty.
func GetLocaleFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(Locale{}).(string)
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}
