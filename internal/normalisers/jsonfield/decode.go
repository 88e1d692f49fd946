package jsonfield

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// Decode reads one JSON document into generic values.
// Objects become map[string]any, arrays []any and numbers json.Number.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyResponse
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// DecodeString decodes a JSON document held in a string.
// A blank string yields domain.ErrEmptyResponse.
func DecodeString(s string) (any, error) {
	if strings.TrimSpace(s) == "" {
		return nil, domain.ErrEmptyResponse
	}
	return Decode(strings.NewReader(s))
}

// DecodeObject decodes a document whose top level must be an object.
func DecodeObject(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrEmptyResponse
	}
	v, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %s, want object", domain.ErrTypeMismatch, KindOf(v))
	}
	return obj, nil
}

// Serialize renders a raw value for the unexpected-field map.
func Serialize(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[serialize error]"
	}
	return string(data)
}

// KindOf names the JSON kind of a decoded value.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, int64, float64:
		return "number"
	case map[string]any:
		return "object"
	case []any, []map[string]any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Object returns the field as an object, or nil when absent or not an object.
func Object(obj map[string]any, field string) map[string]any {
	if obj == nil {
		return nil
	}
	m, _ := obj[field].(map[string]any)
	return m
}
