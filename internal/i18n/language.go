package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// ResolveLanguage picks the language of a request: an explicit supported
// choice first, then the most preferred supported entry of an Accept-Language
// value, then def.
func ResolveLanguage(explicit, acceptLanguage string, supported []string, def string) string {
	isSupported := func(lang string) bool {
		for _, s := range supported {
			if s == lang {
				return true
			}
		}
		return false
	}

	if lang := strings.ToLower(strings.TrimSpace(explicit)); lang != "" && isSupported(lang) {
		return lang
	}

	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
		for _, tag := range tags {
			base, _ := tag.Base()
			if lang := base.String(); isSupported(lang) {
				return lang
			}
		}
	}

	return def
}
