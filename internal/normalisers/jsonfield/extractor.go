package jsonfield

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
)

// MismatchFunc receives a field whose value did not have the expected shape.
// raw is nil when a required field is absent.
type MismatchFunc func(field string, raw any)

// Extractor reads typed fields from one JSON object.
//
// A required field that is absent or mis-shaped is reported through the
// MismatchFunc and read as nil. An optional field that is absent is read as
// nil without a report. Extractor never returns errors.
type Extractor struct {
	obj        map[string]any
	onMismatch MismatchFunc
}

// NewExtractor binds an extractor to obj. onMismatch may be nil.
func NewExtractor(obj map[string]any, onMismatch MismatchFunc) Extractor {
	return Extractor{obj: obj, onMismatch: onMismatch}
}

// Has reports whether the field is present (even when null).
func (e Extractor) Has(field string) bool {
	_, ok := e.obj[field]
	return ok
}

// Raw returns the undecoded field value.
func (e Extractor) Raw(field string) (any, bool) {
	v, ok := e.obj[field]
	return v, ok
}

func (e Extractor) report(field string, raw any) {
	if e.onMismatch != nil {
		e.onMismatch(field, raw)
	}
}

// lookup returns the value and whether the caller should continue.
// It reports absent required fields itself.
func (e Extractor) lookup(field string, optional bool) (any, bool) {
	if e.obj == nil {
		return nil, false
	}
	v, ok := e.obj[strings.TrimSpace(field)]
	if !ok {
		if !optional {
			e.report(field, nil)
		}
		return nil, false
	}
	return v, true
}

// String reads a trimmed string. An empty string reads as nil.
func (e Extractor) String(field string) *string { return e.string(field, false) }

// StringOpt is String for an optional field.
func (e Extractor) StringOpt(field string) *string { return e.string(field, true) }

func (e Extractor) string(field string, optional bool) *string {
	v, ok := e.lookup(field, optional)
	if !ok {
		return nil
	}
	if s, isString := v.(string); isString {
		return nonEmpty(s)
	}
	e.report(field, v)
	return nil
}

// Int reads an integer from a JSON number or a numeric string.
func (e Extractor) Int(field string) *int { return e.int(field, false) }

// IntOpt is Int for an optional field.
func (e Extractor) IntOpt(field string) *int { return e.int(field, true) }

func (e Extractor) int(field string, optional bool) *int {
	v, ok := e.lookup(field, optional)
	if !ok {
		return nil
	}
	n, blank, ok := toInt64(v, strconv.IntSize)
	if blank {
		return nil
	}
	if !ok {
		e.report(field, v)
		return nil
	}
	i := int(n)
	return &i
}

// Int64 reads a 64-bit integer from a JSON number or a numeric string.
func (e Extractor) Int64(field string) *int64 { return e.int64(field, false) }

// Int64Opt is Int64 for an optional field.
func (e Extractor) Int64Opt(field string) *int64 { return e.int64(field, true) }

func (e Extractor) int64(field string, optional bool) *int64 {
	v, ok := e.lookup(field, optional)
	if !ok {
		return nil
	}
	n, blank, ok := toInt64(v, 64)
	if blank {
		return nil
	}
	if !ok {
		e.report(field, v)
		return nil
	}
	return &n
}

// Bool reads a JSON boolean or a "Y"/"N" flag (case-insensitive).
func (e Extractor) Bool(field string) *bool { return e.bool(field, false) }

// BoolOpt is Bool for an optional field.
func (e Extractor) BoolOpt(field string) *bool { return e.bool(field, true) }

func (e Extractor) bool(field string, optional bool) *bool {
	v, ok := e.lookup(field, optional)
	if !ok {
		return nil
	}
	switch b := v.(type) {
	case bool:
		return &b
	case string:
		switch strings.ToUpper(strings.TrimSpace(b)) {
		case "":
			return nil
		case "Y":
			t := true
			return &t
		case "N":
			f := false
			return &f
		}
	}
	e.report(field, v)
	return nil
}

// Date reads a YYYYMMDD date from an 8-digit number or a string whose
// "."/whitespace separated tokens are exactly year, month and day.
func (e Extractor) Date(field string) *int { return e.date(field, false) }

// DateOpt is Date for an optional field.
func (e Extractor) DateOpt(field string) *int { return e.date(field, true) }

func (e Extractor) date(field string, optional bool) *int {
	v, ok := e.lookup(field, optional)
	if !ok {
		return nil
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil
	}
	if d, ok := ParseDate(v); ok {
		return &d
	}
	e.report(field, v)
	return nil
}

// ParseDate converts a raw date value to YYYYMMDD.
// "1960.08.18", "1960. 8. 18." and 19600818 all give 19600818.
func ParseDate(v any) (int, bool) {
	switch d := v.(type) {
	case string:
		tokens := strings.FieldsFunc(strings.TrimSpace(d), func(r rune) bool {
			return r == '.' || unicode.IsSpace(r)
		})
		switch len(tokens) {
		case 1:
			n, err := strconv.Atoi(tokens[0])
			if err == nil && isEightDigits(n) {
				return n, true
			}
		case 3:
			var parts [3]int
			for i, tok := range tokens {
				n, err := strconv.Atoi(tok)
				if err != nil || n < 0 {
					return 0, false
				}
				parts[i] = n
			}
			return parts[0]*10000 + parts[1]*100 + parts[2], true
		}
		return 0, false
	default:
		n, _, ok := toInt64(v, 64)
		if ok && isEightDigits(int(n)) {
			return int(n), true
		}
		return 0, false
	}
}

func isEightDigits(n int) bool {
	return n > 9999999 && n < 100000000
}

// CommaList reads a comma-joined string as trimmed tokens.
// An empty string reads as an empty list.
func (e Extractor) CommaList(field string) []string { return e.commaList(field, false) }

// CommaListOpt is CommaList for an optional field; absence reads as an empty list.
func (e Extractor) CommaListOpt(field string) []string { return e.commaList(field, true) }

func (e Extractor) commaList(field string, optional bool) []string {
	if e.obj == nil {
		return nil
	}
	v, present := e.obj[field]
	if !present {
		if optional {
			return []string{}
		}
		e.report(field, nil)
		return nil
	}
	s, isString := v.(string)
	if !isString {
		e.report(field, v)
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// IntCommaList reads a comma-joined string of integers.
func (e Extractor) IntCommaList(field string) []int { return e.intCommaList(field, false) }

// IntCommaListOpt is IntCommaList for an optional field.
func (e Extractor) IntCommaListOpt(field string) []int { return e.intCommaList(field, true) }

func (e Extractor) intCommaList(field string, optional bool) []int {
	tokens := e.commaList(field, optional)
	if tokens == nil {
		return nil
	}
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			e.report(field, e.obj[field])
			return nil
		}
		out = append(out, n)
	}
	return out
}

// Text reads multi-line content; see FlattenText for the accepted shapes.
func (e Extractor) Text(field string) *string { return e.text(field, false) }

// TextOpt is Text for an optional field.
func (e Extractor) TextOpt(field string) *string { return e.text(field, true) }

func (e Extractor) text(field string, optional bool) *string {
	v, ok := e.lookup(field, optional)
	if !ok {
		return nil
	}
	s, ok := FlattenText(v)
	if !ok {
		e.report(field, v)
		return nil
	}
	return s
}

// toInt64 converts a JSON number or numeric string.
// blank is true for an empty string, which reads as nil without a report.
func toInt64(v any, bits int) (n int64, blank, ok bool) {
	switch x := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(x.String(), 10, bits)
		return n, false, err == nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true, false
		}
		n, err := strconv.ParseInt(s, 10, bits)
		return n, false, err == nil
	case int:
		return int64(x), false, true
	case int64:
		return x, false, true
	case float64:
		limit := math.Ldexp(1, bits-1)
		if x == math.Trunc(x) && x >= -limit && x < limit {
			return int64(x), false, true
		}
	}
	return 0, false, false
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
