package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supportedLanguages is ordered by preference; the first entry is the fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.Indonesian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// PreferredLanguage picks the best supported language for an Accept-Language header.
func PreferredLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supportedLanguages[0]
	}
	_, index, _ := languageMatcher.Match(tags...)
	return supportedLanguages[index]
}

// LanguageName returns the name of tag in its own language, e.g. "English".
func LanguageName(tag language.Tag) string {
	return display.Self.Name(tag)
}
