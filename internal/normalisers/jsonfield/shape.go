package jsonfield

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// Normalize turns the API's 0/1/N collection encodings into a list of objects.
//
//   - "" (or whitespace) is an empty list
//   - an object lacking field is an empty list; with field present the
//     field's value is normalised instead
//   - an object with field == "" is a one-element list
//   - an array of objects is returned element for element
//
// Anything else, including an array holding a non-object, is a type
// mismatch. Normalising an already normalised list returns it unchanged.
func Normalize(value any, field string) ([]map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: value does not exist", domain.ErrTypeMismatch)

	case string:
		if strings.TrimSpace(v) == "" {
			return []map[string]any{}, nil
		}

	case map[string]any:
		if field == "" {
			return []map[string]any{v}, nil
		}
		inner, ok := v[field]
		if !ok {
			return []map[string]any{}, nil
		}
		return Normalize(inner, "")

	case []map[string]any:
		return v, nil

	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %s, want object", domain.ErrTypeMismatch, i, KindOf(elem))
			}
			out = append(out, obj)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %s is not a collection", domain.ErrTypeMismatch, KindOf(value))
}

// NormalizeField normalises obj[field]. A missing field is an empty list.
// A shape mismatch is reported through onMismatch and also reads as nil.
func NormalizeField(obj map[string]any, field string, onMismatch MismatchFunc) []map[string]any {
	items, err := Normalize(obj, field)
	if err != nil {
		if onMismatch != nil {
			onMismatch(field, obj[field])
		}
		return nil
	}
	return items
}
