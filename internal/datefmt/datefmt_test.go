package datefmt

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFormatLocales(t *testing.T) {
	ts := "2025-03-09T14:05:07Z"
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.AmericanEnglish, "3/9/2025, 2:05:07 PM"},
		{language.BritishEnglish, "09/03/2025, 14:05:07"},
		{language.German, "9.3.2025, 14:05:07"},
		{language.French, "09/03/2025 14:05:07"},
		{language.Japanese, "2025/3/9 14:05:07"},
		{language.Dutch, "9-3-2025, 14:05:07"},
	}
	for _, tt := range tests {
		f := New(tt.tag, time.UTC)
		if got := f.Format(ts); got != tt.want {
			t.Errorf("Format(%q) for %s = %q, want %q", ts, tt.tag, got, tt.want)
		}
	}
}

func TestFormatTimeZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	f := New(language.AmericanEnglish, tokyo)
	if got := f.Format("2025-03-09T20:00:00Z"); got != "3/10/2025, 5:00:00 AM" {
		t.Errorf("Format in JST = %q", got)
	}
}

func TestFormatInvalid(t *testing.T) {
	f := New(language.AmericanEnglish, time.UTC)
	for _, in := range []string{"", "yesterday", "2025-13-45"} {
		if got := f.Format(in); got != InvalidDate {
			t.Errorf("Format(%q) = %q, want %q", in, got, InvalidDate)
		}
	}
}

func TestParse(t *testing.T) {
	plusOne := time.FixedZone("", 60*60)
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-05", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2025-01-05T10:30:00Z", time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC)},
		{"2025-01-05T10:30:00.250Z", time.Date(2025, 1, 5, 10, 30, 0, 250_000_000, time.UTC)},
		{"2025-01-05T10:30:00+01:00", time.Date(2025, 1, 5, 10, 30, 0, 0, plusOne)},
		{"2025-01-05T10:30", time.Date(2025, 1, 5, 10, 30, 0, 0, plusOne)},
		{"2025-01-05 10:30:15", time.Date(2025, 1, 5, 10, 30, 15, 0, plusOne)},
		{"2025/01/05", time.Date(2025, 1, 5, 0, 0, 0, 0, plusOne)},
		{"Sun, 05 Jan 2025 10:30:00 GMT", time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC)},
		{"January 5, 2025", time.Date(2025, 1, 5, 0, 0, 0, 0, plusOne)},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.input, plusOne)
		if !ok {
			t.Errorf("Parse(%q) failed", tt.input)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  language.Tag
	}{
		{"en-US", language.AmericanEnglish},
		{"en-GB", language.BritishEnglish},
		{"de-DE", language.German},
		{"fr-CA", language.French},
		{"ja", language.Japanese},
		{"zz", language.AmericanEnglish},
	}
	for _, tt := range tests {
		if got := Match(language.Make(tt.input)); got != tt.want {
			t.Errorf("Match(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.German},
		{"de-CH,de;q=0.9,en;q=0.8", language.German},
		{"ja;q=0.5, fr;q=0.9", language.French},
		{"en-GB", language.BritishEnglish},
	}
	for _, tt := range tests {
		if got := FromAcceptLanguage(tt.header, language.German); got != tt.want {
			t.Errorf("FromAcceptLanguage(%q) = %s, want %s", tt.header, got, tt.want)
		}
	}
}

func TestNewMatchesClosestLocale(t *testing.T) {
	f := New(language.Make("de-AT"), nil)
	if f.Tag() != language.German {
		t.Errorf("Tag() = %s, want de", f.Tag())
	}
	if f.Location() != time.Local {
		t.Errorf("nil location should default to time.Local")
	}
}
