package variant

import (
	"time"

	"github.com/google/uuid"
)

// Variant is a tagged union with one statically typed success slot and
// any number of schema-declared failure slots. Exactly one label is
// active; values are immutable after construction.
type Variant[A any] struct {
	id        uuid.UUID
	createdAt time.Time
	schema    *Schema
	label     Label
	value     A
	payload   any
}

func Success[A any](s *Schema, v A) Variant[A] {
	return Variant[A]{
		schema:    s,
		label:     SuccessLabel,
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[A any](s *Schema, label Label, payload any) (Variant[A], error) {
	if err := s.check(label, payload); err != nil {
		return Variant[A]{}, err
	}
	return Variant[A]{
		schema:    s,
		label:     label,
		payload:   payload,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}, nil
}

func MustFail[A any](s *Schema, label Label, payload any) Variant[A] {
	v, err := Fail[A](s, label, payload)
	if err != nil {
		panic(err)
	}
	return v
}

// FailFrom forwards an active failure across a change of success type,
// preserving label, payload, schema, id and creation time. Forwarding a
// success value is a contract violation.
func FailFrom[In, Out any](from Variant[In]) Variant[Out] {
	if from.IsSuccess() {
		panic(ErrSchema.New("cannot forward a success value as failure"))
	}
	return Variant[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		schema:    from.schema,
		label:     from.label,
		payload:   from.payload,
	}
}

// Retag re-types the value against another schema without copying the
// payload. The active failure label, if any, must be declared in the
// target schema with the same payload type.
func (v Variant[A]) Retag(s *Schema) Variant[A] {
	if !v.IsSuccess() {
		have, _ := v.schema.PayloadType(v.label)
		want, ok := s.PayloadType(v.label)
		if !ok {
			panic(ErrSchema.New("retag orphans active label %q", v.label))
		}
		if want != have {
			panic(ErrSchema.New("retag changes label %q payload type from %v to %v", v.label, have, want))
		}
	}
	v.schema = s
	return v
}

// Eliminate is total dispatch over the value: onSuccess for the success
// slot, onFailure with the active failure label and payload otherwise.
func Eliminate[A, B any](v Variant[A], onFailure func(Label, any) B, onSuccess func(A) B) B {
	if v.IsSuccess() {
		return onSuccess(v.value)
	}
	return onFailure(v.label, v.payload)
}

func (v Variant[A]) IsSuccess() bool {
	return v.label == SuccessLabel
}

// IsEmpty reports whether the value was never constructed (zero value).
func (v Variant[A]) IsEmpty() bool {
	return v.label == ""
}

// Label returns the active label.
func (v Variant[A]) Label() Label {
	return v.label
}

// Value returns the success payload; zero when a failure is active.
func (v Variant[A]) Value() A {
	return v.value
}

// Payload returns the failure payload; nil when success is active.
func (v Variant[A]) Payload() any {
	return v.payload
}

func (v Variant[A]) Schema() *Schema {
	return v.schema
}

func (v Variant[A]) CreatedAt() time.Time {
	return v.createdAt
}

func (v Variant[A]) Id() uuid.UUID {
	return v.id
}
