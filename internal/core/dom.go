package core

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLDocument is a DOM backed by a parsed HTML document.
type HTMLDocument struct {
	doc *goquery.Document
}

// NewHTMLDocument parses HTML from r.
func NewHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &HTMLDocument{doc: doc}, nil
}

// ParseHTML parses an HTML string.
func ParseHTML(html string) (*HTMLDocument, error) {
	return NewHTMLDocument(strings.NewReader(html))
}

// FromGoquery wraps an already parsed document.
func FromGoquery(doc *goquery.Document) *HTMLDocument {
	return &HTMLDocument{doc: doc}
}

func (d *HTMLDocument) Text(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}
