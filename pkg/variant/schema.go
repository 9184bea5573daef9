package variant

import (
	"reflect"

	"github.com/zeebo/errs"
)

// ErrSchema wraps every declaration-time misuse: duplicate or reserved
// labels, undeclared labels, payload type mismatches.
var ErrSchema = errs.Class("variant schema")

// Label names the slot a union value currently occupies.
type Label string

// SuccessLabel is reserved for the success slot and may not be declared
// as a failure label.
const SuccessLabel Label = "_"

// Field pairs a failure label with its declared payload type.
type Field struct {
	Label Label
	Type  reflect.Type
}

// Declare builds a Field for label with payload type P.
func Declare[P any](label Label) Field {
	return Field{Label: label, Type: reflect.TypeFor[P]()}
}

// Schema is the declaration-time failure-label set of a union: unique
// labels in declaration order, each with a payload type. A nil *Schema
// is the empty schema (no failure labels). Schemas are immutable after
// construction.
type Schema struct {
	labels []Label
	types  map[Label]reflect.Type
}

func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		labels: make([]Label, 0, len(fields)),
		types:  make(map[Label]reflect.Type, len(fields)),
	}

	for _, f := range fields {
		if f.Label == SuccessLabel {
			return nil, ErrSchema.New("label %q is reserved for success", SuccessLabel)
		}
		if f.Type == nil {
			return nil, ErrSchema.New("label %q has no payload type", f.Label)
		}
		if _, dup := s.types[f.Label]; dup {
			return nil, ErrSchema.New("label %q declared twice", f.Label)
		}
		s.labels = append(s.labels, f.Label)
		s.types[f.Label] = f.Type
	}
	return s, nil
}

func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Labels returns the declared failure labels in declaration order.
func (s *Schema) Labels() []Label {
	if s == nil {
		return nil
	}
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.labels)
}

func (s *Schema) Has(label Label) bool {
	if s == nil {
		return false
	}
	_, ok := s.types[label]
	return ok
}

// PayloadType returns the declared payload type of a failure label.
func (s *Schema) PayloadType(label Label) (reflect.Type, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.types[label]
	return t, ok
}

// Without returns a schema narrowed by the given labels. Labels not
// present are ignored; membership is the caller's concern.
func (s *Schema) Without(labels ...Label) *Schema {
	drop := make(map[Label]struct{}, len(labels))
	for _, l := range labels {
		drop[l] = struct{}{}
	}

	out := &Schema{types: make(map[Label]reflect.Type)}
	for _, l := range s.Labels() {
		if _, gone := drop[l]; gone {
			continue
		}
		out.labels = append(out.labels, l)
		out.types[l] = s.types[l]
	}
	return out
}

// Union combines the failure-label sets of two schemas, keeping the
// receiver's declaration order first. A label declared in both with
// different payload types is a declaration error.
func (s *Schema) Union(other *Schema) (*Schema, error) {
	out := &Schema{types: make(map[Label]reflect.Type)}

	for _, l := range s.Labels() {
		out.labels = append(out.labels, l)
		out.types[l] = s.types[l]
	}
	for _, l := range other.Labels() {
		t := other.types[l]
		if have, ok := out.types[l]; ok {
			if have != t {
				return nil, ErrSchema.New("label %q declared as %v and %v", l, have, t)
			}
			continue
		}
		out.labels = append(out.labels, l)
		out.types[l] = t
	}
	return out, nil
}

// check validates that label is declared and payload matches its type.
func (s *Schema) check(label Label, payload any) error {
	t, ok := s.PayloadType(label)
	if !ok {
		return ErrSchema.New("label %q is not declared", label)
	}

	if IsNil(payload) {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return nil
		default:
			return ErrSchema.New("label %q: nil payload for non-nilable type %v", label, t)
		}
	}

	pt := reflect.TypeOf(payload)
	if pt != t && !pt.AssignableTo(t) {
		return ErrSchema.New("label %q: payload type %v does not match declared %v", label, pt, t)
	}
	return nil
}
