// Package dom holds a parsed HTML page whose id-addressed containers can be
// rewritten.
//
// A Document is safe for concurrent use. Lookups and updates are serialized,
// so each Update applies atomically with respect to the others.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString reads a full HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(bytes.NewBufferString(s))
}

// byID returns the first element, in document order, whose id is id.
func (d *Document) byID(id string) *goquery.Selection {
	return d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
}

// Has reports whether an element with the given id exists.
func (d *Document) Has(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.byID(id).Length() > 0
}

// Update runs fn on the element with the given id. It returns false, without
// calling fn, when there is no such element.
func (d *Document) Update(id string, fn func(c *Container)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	sel := d.byID(id)
	if sel.Length() == 0 {
		return false
	}
	fn(&Container{sel: sel})
	return true
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering html: %w", err)
		}
	}
	return nil
}

// HTML returns the whole document as HTML.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
