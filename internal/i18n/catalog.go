// Package i18n is the single localization table for every user-facing string.
// Keys are the English text; English and Spanish are registered.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported locales.
const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
)

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
	builder   = newBuilder()
	known     = knownKeys()
)

func knownKeys() map[string]struct{} {
	m := make(map[string]struct{}, len(messages))
	for _, e := range messages {
		m[e.en] = struct{}{}
	}
	return m
}

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, m := range messages {
		en, es := m.en, m.es
		// Keys are used as format strings; a literal % must be doubled.
		if !m.format {
			en, es = strings.ReplaceAll(en, "%", "%%"), strings.ReplaceAll(es, "%", "%%")
		}
		_ = b.SetString(language.English, m.en, en)
		_ = b.SetString(language.Spanish, m.en, es)
	}
	return b
}

// Catalog translates keys and formats dates for one locale.
type Catalog struct {
	locale  string
	printer *message.Printer
	loc     *time.Location
}

// New returns the catalog for locale ("en" or "es", region subtags allowed).
func New(locale string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	base := supported[idx]
	name := LocaleEnglish
	if base == language.Spanish {
		name = LocaleSpanish
	}
	return &Catalog{
		locale:  name,
		printer: message.NewPrinter(base, message.Catalog(builder)),
		loc:     time.Local,
	}, nil
}

// MustNew is New for locales known to be valid.
func MustNew(locale string) *Catalog {
	c, err := New(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the matched locale name.
func (c *Catalog) Locale() string { return c.locale }

// WithLocation returns a copy that renders dates in loc.
func (c *Catalog) WithLocation(loc *time.Location) *Catalog {
	cp := *c
	cp.loc = loc
	return &cp
}

// T translates key, formatting args into it.
func (c *Catalog) T(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Text translates s when it is a catalog key and returns it unchanged otherwise.
// Use it for strings that may come from the API.
func (c *Catalog) Text(s string) string {
	if _, ok := known[s]; !ok {
		return s
	}
	return c.printer.Sprintf(s)
}

// FormatDate renders t as a long date with time, e.g. "January 2, 2025, 10:00"
// or "2 de enero de 2025, 10:00".
func (c *Catalog) FormatDate(t time.Time) string {
	t = t.In(c.loc)
	if c.locale == LocaleSpanish {
		return fmt.Sprintf("%d de %s de %d, %02d:%02d", t.Day(), monthsES[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%s %d, %d, %02d:%02d", t.Month(), t.Day(), t.Year(), t.Hour(), t.Minute())
}

var monthsES = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}
