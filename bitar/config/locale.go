package config

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeEnvVars are consulted in POSIX precedence order.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// SystemLocale derives a language tag from the POSIX locale environment
// ("es_ES.UTF-8" -> es-ES). It falls back to en-US for C/POSIX or unset locales.
func SystemLocale() language.Tag {
	for _, key := range localeEnvVars {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}

		if i := strings.IndexAny(raw, ".@"); i >= 0 {
			raw = raw[:i]
		}

		if raw == "C" || raw == "POSIX" || raw == "" {
			break
		}

		tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
		if err == nil {
			return tag
		}
	}

	return language.AmericanEnglish
}

// ResolveLocale picks the tag a formatting call should use: an explicit requested
// locale wins, system forces the system locale, otherwise the configured default
// applies, falling back to the system locale when none is configured.
func (c Config) ResolveLocale(requested string, system bool) language.Tag {
	if requested = strings.TrimSpace(requested); requested != "" {
		return language.Make(requested)
	}

	if system || strings.TrimSpace(c.Locale) == "" {
		return SystemLocale()
	}

	return language.Make(c.Locale)
}
