package jsonfield

import "strings"

// FlattenText collapses multi-line content into one string.
//
// Accepted shapes:
//
//	"text"                      trimmed text
//	["l1", "l2"]                lines joined with "\n"
//	[["l1", "l2"], ["l3"]]      lines joined with "\n", paragraphs with "\n\n"
//
// In a mixed array every string element is a paragraph of its own.
// The result is nil when nothing but whitespace remains. ok is false when
// a leaf is not a string.
func FlattenText(v any) (text *string, ok bool) {
	switch x := v.(type) {
	case string:
		return nonEmpty(x), true
	case []any:
		if !containsArray(x) {
			lines, ok := stringLines(x)
			if !ok {
				return nil, false
			}
			return nonEmpty(strings.Join(lines, "\n")), true
		}

		paragraphs := make([]string, 0, len(x))
		for _, elem := range x {
			switch p := elem.(type) {
			case string:
				paragraphs = append(paragraphs, strings.TrimSpace(p))
			case []any:
				lines, ok := stringLines(p)
				if !ok {
					return nil, false
				}
				if len(lines) > 0 {
					paragraphs = append(paragraphs, strings.Join(lines, "\n"))
				}
			default:
				return nil, false
			}
		}
		return nonEmpty(strings.Join(paragraphs, "\n\n")), true
	}
	return nil, false
}

func containsArray(values []any) bool {
	for _, v := range values {
		if _, ok := v.([]any); ok {
			return true
		}
	}
	return false
}

func stringLines(values []any) ([]string, bool) {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		lines = append(lines, strings.TrimSpace(s))
	}
	return lines, true
}
