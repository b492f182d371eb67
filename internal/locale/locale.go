// Package locale holds the English and Spanish label tables. A Locale value is
// passed to whatever renders text; there is no package-level current language.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the supported label tables.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Default is used whenever nothing better is known.
const Default = English

// Supported lists locales in selector order.
var Supported = []Locale{English, Spanish}

// Parse accepts a two-letter code or any BCP 47 tag whose language is
// English or Spanish ("es-MX", "en_GB").
func Parse(code string) (Locale, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", fmt.Errorf("locale: empty language code")
	}
	if loc, ok := match(trimmed); ok {
		return loc, nil
	}
	return "", fmt.Errorf("locale: unsupported language %q (want en or es)", code)
}

// Detect returns the first supported locale found in values, which are
// typically $LC_ALL, $LC_MESSAGES and $LANG. POSIX suffixes such as
// ".UTF-8" are ignored. It falls back to Default.
func Detect(values ...string) Locale {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if loc, ok := match(v); ok {
			return loc
		}
	}
	return Default
}

func match(value string) (Locale, bool) {
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	for _, loc := range Supported {
		if base.String() == string(loc) {
			return loc, true
		}
	}
	return "", false
}

// Code returns the two-letter language code.
func (l Locale) Code() string { return string(l) }

// Name is the language's own name, as shown in the selector.
func (l Locale) Name() string {
	if l == Spanish {
		return "Español"
	}
	return "English"
}

// Toggle switches between the two languages.
func (l Locale) Toggle() Locale {
	if l == Spanish {
		return English
	}
	return Spanish
}

// Text looks up key, falling back to English and then to the key itself.
func (l Locale) Text(key Key) string {
	if table, ok := translations[l]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[English][key]; ok {
		return s
	}
	return string(key)
}

// Textf looks up key and joins it with the rest, e.g. "Convert from" +
// "Decimal Feet".
func (l Locale) Textf(key Key, rest ...Key) string {
	parts := []string{l.Text(key)}
	for _, k := range rest {
		parts = append(parts, l.Text(k))
	}
	return strings.Join(parts, " ")
}
