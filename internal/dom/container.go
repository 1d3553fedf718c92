package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Container is an element being read or rewritten inside Document.Update.
// It must not be retained after the callback returns.
type Container struct {
	sel *goquery.Selection
}

// Attr is an attribute assigned to a created element.
type Attr struct {
	Key string
	Val string
}

// SetHTML replaces the element's children with the parsed markup.
func (c *Container) SetHTML(markup string) {
	c.sel.SetHtml(markup)
}

// Clear removes all of the element's children.
func (c *Container) Clear() {
	c.sel.Empty()
}

// AppendHTML parses markup and appends the resulting nodes.
func (c *Container) AppendHTML(markup string) {
	c.sel.AppendHtml(markup)
}

// AppendElement creates an element with the given attributes and appends it.
// Attribute values are stored as-is; they are escaped when the document is
// serialized.
func (c *Container) AppendElement(tag string, attrs ...Attr) {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	c.sel.AppendNodes(n)
}

// SetText replaces the element's children with a single text node.
func (c *Container) SetText(text string) {
	c.sel.SetText(text)
}

// HTML returns the element's inner HTML.
func (c *Container) HTML() string {
	s, err := c.sel.Html()
	if err != nil {
		return ""
	}
	return s
}

// Text returns the element's text content.
func (c *Container) Text() string {
	return c.sel.Text()
}

// Find returns the descendants matching a CSS selector, for inspection.
func (c *Container) Find(selector string) *goquery.Selection {
	return c.sel.Find(selector)
}
