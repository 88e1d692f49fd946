package html

import (
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy keeps structural and formatting markup (tables, lists, headings,
	// links, images) and drops scripts, styles, forms and event handlers.
	policy = bluemonday.UGCPolicy()

	// strict drops every element and keeps only text.
	strict = bluemonday.StrictPolicy()
)

// Clean sanitises an HTML fragment. An empty fragment stays empty.
func Clean(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(fragment))
}

// StripTags removes every tag from a fragment and decodes entities.
// Whitespace inside the text is left as it is.
func StripTags(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	return strings.TrimSpace(stdhtml.UnescapeString(strict.Sanitize(fragment)))
}
