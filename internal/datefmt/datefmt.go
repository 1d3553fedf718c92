// Package datefmt renders news timestamps in a viewer's long date and time
// format.
package datefmt

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// InvalidDate is rendered for timestamps that cannot be parsed.
const InvalidDate = "Invalid Date"

// layouts holds the long date+time layout for each supported locale.
var layouts = map[language.Tag]string{
	language.AmericanEnglish:     "1/2/2006, 3:04:05 PM",
	language.BritishEnglish:      "02/01/2006, 15:04:05",
	language.German:              "2.1.2006, 15:04:05",
	language.French:              "02/01/2006 15:04:05",
	language.Spanish:             "2/1/2006, 15:04:05",
	language.Italian:             "2/1/2006, 15:04:05",
	language.Dutch:               "2-1-2006, 15:04:05",
	language.Japanese:            "2006/1/2 15:04:05",
	language.BrazilianPortuguese: "02/01/2006, 15:04:05",
}

// Supported lists the locales with a dedicated layout. The first entry is the
// fallback.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Japanese,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(Supported)

// Formatter formats timestamps for one locale and time zone.
type Formatter struct {
	tag    language.Tag
	layout string
	loc    *time.Location
}

// New returns a formatter for the supported locale closest to tag. A nil loc
// means the process local zone.
func New(tag language.Tag, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	matched := Match(tag)
	return &Formatter{tag: matched, layout: layouts[matched], loc: loc}
}

// Match returns the supported locale closest to tag.
func Match(tags ...language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}

// FromAcceptLanguage resolves an Accept-Language header to a supported locale.
// An empty or invalid header yields fallback.
func FromAcceptLanguage(header string, fallback language.Tag) language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return Match(fallback)
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Match(fallback)
	}
	return Match(tags...)
}

// Tag returns the locale this formatter renders for.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Location returns the time zone this formatter renders in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Format parses s and renders it. Unparseable input yields InvalidDate.
func (f *Formatter) Format(s string) string {
	t, ok := Parse(s, f.loc)
	if !ok {
		return InvalidDate
	}
	return f.FormatTime(t)
}

// FormatTime renders t in the formatter's zone and layout.
func (f *Formatter) FormatTime(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}
