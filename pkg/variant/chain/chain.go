package chain

import (
	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/solo"
)

// Chain wraps a variant.Variant to enable fluent composition
type Chain[A any] struct {
	result variant.Variant[A]
}

// Start creates a new chain from a variant.Variant
func Start[A any](result variant.Variant[A]) *Chain[A] {
	return &Chain[A]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[A any](s *variant.Schema, value A) *Chain[A] {
	return &Chain[A]{
		result: variant.Success(s, value),
	}
}

// Variant returns the underlying variant.Variant
func (c *Chain[A]) Variant() variant.Variant[A] {
	return c.result
}

// Then chains a function that returns variant.Variant[B]
func Then[A, B any](c *Chain[A], onSuccess func(A) variant.Variant[B]) *Chain[B] {
	return &Chain[B]{
		result: solo.Switch(c.result, onSuccess),
	}
}

// Map chains a pure transformation function
func Map[A, B any](c *Chain[A], onSuccess func(A) B) *Chain[B] {
	return &Chain[B]{
		result: solo.Map(c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[A]) Ensure(onSuccess func(A)) *Chain[A] {
	return &Chain[A]{
		result: solo.Tee(c.result, onSuccess),
	}
}

// Or prefers the alternative chain when this one carries a failure and
// the alternative succeeded
func (c *Chain[A]) Or(alternative *Chain[A]) *Chain[A] {
	return &Chain[A]{
		result: solo.Or(c.result, alternative.result),
	}
}

// Resolve collapses one failure label into success, narrowing the schema
func (c *Chain[A]) Resolve(label variant.Label, onFailure func(any) A) *Chain[A] {
	return &Chain[A]{
		result: solo.ResolveOne(c.result, label, onFailure),
	}
}

// Extract unwraps a fully resolved chain into its plain success payload
func (c *Chain[A]) Extract() A {
	return solo.Extract(c.result)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[A, B any](c *Chain[A], cases solo.Cases[A, B]) B {
	return solo.Finally(c.result, cases)
}
