// Package content defines the JSON documents sitefill renders: news,
// gallery and credits.
package content

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resource names fetched relative to the data base URL.
const (
	NewsResource    = "news.json"
	GalleryResource = "gallery.json"
	CreditsResource = "credits.json"
)

// NewsItem is one entry of news.json. The collection is ordered latest first.
type NewsItem struct {
	Title   Text `json:"title"`
	Date    Text `json:"date"`
	Content Text `json:"content"`
}

// GalleryItem is one entry of gallery.json.
type GalleryItem struct {
	Image   Text `json:"image"`
	Caption Text `json:"caption"`
}

// AltText is the caption, or "gallery" when there is none.
func (g GalleryItem) AltText() string {
	if g.Caption.IsEmpty() {
		return "gallery"
	}
	return g.Caption.String()
}

// CaptionText is the caption, or the empty string when there is none.
func (g GalleryItem) CaptionText() string {
	return g.Caption.String()
}

// CreditGroup is one entry of credits.json: a role and the people who held it.
type CreditGroup struct {
	Role   Text     `json:"role"`
	People []Person `json:"people"`
}

// Person is a member of a CreditGroup.
type Person struct {
	Name   Text `json:"name"`
	Credit Text `json:"credit"`
}

// CreditText is the credit line, or the empty string when there is none.
func (p Person) CreditText() string {
	return p.Credit.String()
}

// Avatar is the first character of the name, uppercased. An empty name gives
// a single space.
func (p Person) Avatar() string {
	name := p.Name.String()
	if name == "" {
		name = " "
	}
	for _, r := range name {
		return cases.Upper(language.Und).String(string(r))
	}
	return " "
}
