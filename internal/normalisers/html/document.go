package html

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// Parse reads a full page. contentType is the response Content-Type header
// and selects the charset when the page does not declare one itself.
func Parse(r io.Reader, contentType string) (*goquery.Document, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(utf8)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Decode converts a page body to UTF-8 text using the same charset
// detection as Parse.
func Decode(body []byte, contentType string) (string, error) {
	utf8, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", fmt.Errorf("detect charset: %w", err)
	}
	text, err := io.ReadAll(utf8)
	if err != nil {
		return "", fmt.Errorf("decode charset: %w", err)
	}
	return string(text), nil
}

// ParseBytes is Parse for an in-memory page.
func ParseBytes(body []byte, contentType string) (*goquery.Document, error) {
	return Parse(bytes.NewReader(body), contentType)
}

// ParseFragment parses an HTML fragment that is already UTF-8.
func ParseFragment(fragment string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}

// Text returns the text of a selection with runs of whitespace collapsed
// to single spaces.
func Text(s *goquery.Selection) string {
	return Normalize(s.Text())
}

// PlainText strips every tag from a fragment and collapses whitespace.
// An empty fragment stays empty.
func PlainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := ParseFragment(fragment)
	if err != nil {
		return Normalize(StripTags(fragment))
	}
	return Text(doc.Selection)
}

// Normalize collapses whitespace and applies NFC.
func Normalize(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
