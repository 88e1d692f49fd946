package jsonfield

import (
	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// FieldSet is the set of member names a parser understands.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from names.
func NewFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is known.
func (s FieldSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Recorder collects mismatched and unknown fields for one record.
// Keys are the field name, prefixed with the recorder's scope when it has one.
type Recorder struct {
	prefix string
	fields domain.UnexpectedFields
}

// NewRecorder returns an empty recorder. prefix may be "".
func NewRecorder(prefix string) *Recorder {
	return &Recorder{prefix: prefix, fields: make(domain.UnexpectedFields)}
}

func (r *Recorder) key(field string) string {
	if r.prefix == "" {
		return field
	}
	return r.prefix + "." + field
}

// Mismatch records a field whose value could not be read.
func (r *Recorder) Mismatch(field string, raw any) {
	r.fields[r.key(field)] = Serialize(raw)
}

// Func adapts the recorder to a MismatchFunc.
func (r *Recorder) Func() MismatchFunc {
	return r.Mismatch
}

// Scoped returns a recorder writing into the same map under prefix.name.
// It is used for sub-objects that belong to the same record.
func (r *Recorder) Scoped(name string) *Recorder {
	return &Recorder{prefix: r.key(name), fields: r.fields}
}

// Nested returns a fresh recorder for a child record under prefix.name.
func (r *Recorder) Nested(name string) *Recorder {
	return NewRecorder(r.key(name))
}

// TrackUnknown records every member of obj not in known.
func (r *Recorder) TrackUnknown(obj map[string]any, known FieldSet) {
	for name, v := range obj {
		if !known.Contains(name) {
			r.fields[r.key(name)] = Serialize(v)
		}
	}
}

// Len reports the number of recorded fields.
func (r *Recorder) Len() int { return len(r.fields) }

// Fields returns the recorded map, or nil when nothing was recorded.
func (r *Recorder) Fields() domain.UnexpectedFields {
	return r.fields.OrNil()
}
