package solo

import (
	"github.com/ib-77/variant/pkg/variant"
)

// ResolveOne converts the failure under label into a success via
// onFailure and narrows the schema by that one label. A value active at
// any other label is forwarded unchanged against the narrowed schema.
// The label must be declared; resolving an undeclared label panics.
func ResolveOne[P, A any](input variant.Variant[A], label variant.Label,
	onFailure func(P) A) variant.Variant[A] {

	s := input.Schema()
	if !s.Has(label) {
		panic(variant.ErrSchema.New("label %q is not declared", label))
	}
	narrowed := s.Without(label)

	return variant.Eliminate(input,
		func(active variant.Label, payload any) variant.Variant[A] {
			if active != label {
				return input.Retag(narrowed)
			}
			return variant.Success(narrowed, onFailure(asPayload[P](payload)))
		},
		func(A) variant.Variant[A] {
			return input.Retag(narrowed)
		})
}

// asPayload converts a stored payload to its declared type. A nil
// payload is legal under interface-typed labels and converts to the
// zero value of P.
func asPayload[P any](payload any) P {
	if payload == nil {
		var zero P
		return zero
	}
	return payload.(P)
}

// Handlers maps failure labels to resolution functions for Resolve.
type Handlers[A any] map[variant.Label]func(any) A

// Typed lifts a statically typed resolution function into a Handlers
// entry. The payload type must match the label's declaration.
func Typed[P, A any](onFailure func(P) A) func(any) A {
	return func(payload any) A {
		return onFailure(asPayload[P](payload))
	}
}

// Resolve converts every failure label present in handlers into a
// success and narrows the schema by exactly those labels. Registering
// the reserved success label or an undeclared label panics before any
// handler runs. Resolving the complete label set and extracting equals
// folding ResolveOne over the labels in any order.
func Resolve[A any](input variant.Variant[A], handlers Handlers[A]) variant.Variant[A] {
	s := input.Schema()

	handled := make([]variant.Label, 0, len(handlers))
	for l := range handlers {
		if l == variant.SuccessLabel {
			panic(variant.ErrSchema.New("label %q is reserved for success", variant.SuccessLabel))
		}
		if !s.Has(l) {
			panic(variant.ErrSchema.New("label %q is not declared", l))
		}
		handled = append(handled, l)
	}
	narrowed := s.Without(handled...)

	return variant.Eliminate(input,
		func(active variant.Label, payload any) variant.Variant[A] {
			h, ok := handlers[active]
			if !ok {
				return input.Retag(narrowed)
			}
			return variant.Success(narrowed, h(payload))
		},
		func(A) variant.Variant[A] {
			return input.Retag(narrowed)
		})
}

// Extract unwraps a fully resolved value. It is only legal once the
// failure-label set is empty, where the single-active-label invariant
// forces the success slot.
func Extract[A any](input variant.Variant[A]) A {
	if input.Schema().Len() != 0 {
		panic(variant.ErrSchema.New("labels %v are still unresolved", input.Schema().Labels()))
	}
	return input.Value()
}
