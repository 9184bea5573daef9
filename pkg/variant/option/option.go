// Package option provides the minimal present/absent collaborator type
// consumed and produced by the interop conversions in package solo.
package option

// Option holds a value or nothing.
type Option[A any] struct {
	value A
	some  bool
}

func Some[A any](v A) Option[A] {
	return Option[A]{value: v, some: true}
}

func None[A any]() Option[A] {
	return Option[A]{}
}

func (o Option[A]) IsSome() bool {
	return o.some
}

// Get returns the value and whether it is present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.some
}

// OrElse returns the value when present, def otherwise.
func (o Option[A]) OrElse(def A) A {
	if o.some {
		return o.value
	}
	return def
}
