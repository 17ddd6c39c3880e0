package segment

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale resolves the platform default locale from the usual
// environment variables, falling back to en-US.
func DefaultLocale() string {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "en-US"
}

// parseLocale validates a locale identifier and returns its canonical
// tag. The empty string requests the platform default. POSIX-style
// identifiers such as "pl_PL.UTF-8" are accepted.
func parseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		locale = DefaultLocale()
	}
	id := locale
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i] // strip codeset and modifier suffixes
	}
	if id == "C" || id == "POSIX" {
		id = "en-US"
	}
	id = strings.ReplaceAll(id, "_", "-")
	tag, err := language.Parse(id)
	if err != nil {
		return language.Und, err
	}
	return tag, nil
}
