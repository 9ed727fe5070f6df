// Package i18n resolves the handful of user-facing strings the client core emits.
// Screens own their own copy; this catalog only covers fallbacks, validation messages, alerts and menu titles.
package i18n

import (
	"golang.org/x/text/language"
)

// Translator maps a message key to display text. Unknown keys come back unchanged.
type Translator func(key string) string

// DefaultLocale is used when the requested locale matches nothing in the catalog.
const DefaultLocale = "pt-BR"

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: ptBR,
	language.English:             en,
}

// New returns a translator for the best catalog match of locale (e.g. "pt-BR", "en-US", "pt").
func New(locale string) Translator {
	tag := Match(locale)
	catalog := catalogs[tag]
	fallback := catalogs[language.BrazilianPortuguese]
	return func(key string) string {
		if msg, ok := catalog[key]; ok {
			return msg
		}
		if msg, ok := fallback[key]; ok {
			return msg
		}
		return key
	}
}

// Match negotiates locale against the supported catalogs.
func Match(locale string) language.Tag {
	if locale == "" {
		locale = DefaultLocale
	}
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		return language.BrazilianPortuguese
	}
	_, idx, _ := matcher.Match(desired...)
	return supported[idx]
}

// Identity returns keys unchanged. Handy in tests that assert on keys.
func Identity(key string) string { return key }
