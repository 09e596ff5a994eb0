package text

import (
	"golang.org/x/text/language"
)

// ParseLocale parses a BCP 47 tag such as "en-US" or "es-419".
// It returns false for empty or malformed input.
func ParseLocale(text string) (language.Tag, bool) {
	if text == "" {
		return language.Und, false
	}

	tag, err := language.Parse(text)
	if err != nil {
		return language.Und, false
	}

	return tag, true
}

// CountryCode returns the region subtag explicitly present in locale, such as "US"
// for en-US or "419" for es-419.
// It returns false for language.Und and for tags without an explicit region; a
// region that would only be inferred (US for plain "en") does not count.
func CountryCode(locale language.Tag) (string, bool) {
	if locale == language.Und {
		return "", false
	}

	region, confidence := locale.Region()
	if confidence != language.Exact {
		return "", false
	}

	return region.String(), true
}

// LanguageCode returns the language subtag explicitly present in locale, such as
// "en" for en-US.
// It returns false for language.Und and for tags whose language is undetermined.
func LanguageCode(locale language.Tag) (string, bool) {
	if locale == language.Und {
		return "", false
	}

	base, confidence := locale.Base()
	if confidence != language.Exact {
		return "", false
	}

	return base.String(), true
}
