package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language represents a supported locale.
type Language string

const (
	LangEN Language = "en"
	LangDE Language = "de"
)

var (
	supported = []language.Tag{language.English, language.German}
	matcher   = language.NewMatcher(supported)

	tables = map[Language]map[string]string{
		LangEN: en,
		LangDE: de,
	}

	current = LangEN
	printer = message.NewPrinter(language.English)
)

// SetLanguage changes the active locale. Values are BCP 47 tags such as
// "de-AT"; anything that does not match a supported locale falls back to
// English.
func SetLanguage(lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	base := supported[idx]
	b, _ := base.Base()
	current = Language(b.String())
	printer = message.NewPrinter(base)
}

// Current returns the active language.
func Current() Language {
	return current
}

// Printer returns a locale-aware printer for the active language.
func Printer() *message.Printer {
	return printer
}

// T returns the translated string for the given key, falling back to
// English and then to the key itself.
func T(key string) string {
	if v, ok := tables[current][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted translated string. Numbers are formatted for the
// active locale.
func Tf(key string, args ...any) string {
	return printer.Sprintf(T(key), args...)
}
