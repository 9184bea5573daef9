package gen

import (
	"math/rand/v2"

	"github.com/zeebo/errs"

	"github.com/ib-77/variant/pkg/variant"
)

// ErrGen wraps every generator-table construction error.
var ErrGen = errs.Class("variant gen")

// Gen produces a random failure payload from a caller-supplied source.
type Gen func(r *rand.Rand) any

// Table holds one generator per slot of a schema: a success generator
// plus a payload generator for every declared failure label. A Table is
// complete by construction; sampling cannot violate the single-active-
// label invariant.
type Table[A any] struct {
	schema   *variant.Schema
	success  func(r *rand.Rand) A
	failures map[variant.Label]Gen
}

// NewTable validates completeness once: success must be present, every
// declared label must have a generator and no generator may target an
// undeclared label.
func NewTable[A any](s *variant.Schema, success func(r *rand.Rand) A,
	failures map[variant.Label]Gen) (Table[A], error) {

	if success == nil {
		return Table[A]{}, ErrGen.New("no generator for the success slot")
	}
	for _, l := range s.Labels() {
		if failures[l] == nil {
			return Table[A]{}, ErrGen.New("no generator for label %q", l)
		}
	}
	for l := range failures {
		if !s.Has(l) {
			return Table[A]{}, ErrGen.New("generator targets undeclared label %q", l)
		}
	}

	fs := make(map[variant.Label]Gen, len(failures))
	for l, g := range failures {
		fs[l] = g
	}
	return Table[A]{schema: s, success: success, failures: fs}, nil
}

func MustTable[A any](s *variant.Schema, success func(r *rand.Rand) A,
	failures map[variant.Label]Gen) Table[A] {

	t, err := NewTable(s, success, failures)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table[A]) Schema() *variant.Schema {
	return t.schema
}

// Uniform samples one label uniformly over the full slot set, success
// included, and injects a generated payload under it. The set is never
// empty because the success slot always exists.
func (t Table[A]) Uniform(r *rand.Rand) variant.Variant[A] {
	labels := t.schema.Labels()

	n := r.IntN(len(labels) + 1)
	if n == len(labels) {
		return variant.Success(t.schema, t.success(r))
	}
	l := labels[n]
	return variant.MustFail[A](t.schema, l, t.failures[l](r))
}

// Weighted samples labels with probability proportional to their weight.
type Weighted[A any] struct {
	table   Table[A]
	order   []variant.Label // success last, declaration order otherwise
	weights []float64
	total   float64
}

// NewWeighted validates the weight vector at construction: every slot of
// the table, success included, needs a weight; negative weights and an
// all-zero total are rejected.
func NewWeighted[A any](t Table[A], weights map[variant.Label]float64) (Weighted[A], error) {
	order := append(t.schema.Labels(), variant.SuccessLabel)

	w := Weighted[A]{table: t, order: order, weights: make([]float64, len(order))}
	for i, l := range order {
		weight, ok := weights[l]
		if !ok {
			return Weighted[A]{}, ErrGen.New("no weight for label %q", l)
		}
		if weight < 0 {
			return Weighted[A]{}, ErrGen.New("label %q has negative weight %v", l, weight)
		}
		w.weights[i] = weight
		w.total += weight
	}
	for l := range weights {
		if l != variant.SuccessLabel && !t.schema.Has(l) {
			return Weighted[A]{}, ErrGen.New("weight targets undeclared label %q", l)
		}
	}
	if w.total == 0 {
		return Weighted[A]{}, ErrGen.New("all weights are zero")
	}
	return w, nil
}

func MustWeighted[A any](t Table[A], weights map[variant.Label]float64) Weighted[A] {
	w, err := NewWeighted(t, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Sample draws one value; each label is chosen with probability
// weight/total.
func (w Weighted[A]) Sample(r *rand.Rand) variant.Variant[A] {
	pick := r.Float64() * w.total

	acc := 0.0
	chosen := len(w.order) - 1
	for i, weight := range w.weights {
		acc += weight
		if pick < acc {
			chosen = i
			break
		}
	}

	l := w.order[chosen]
	if l == variant.SuccessLabel {
		return variant.Success(w.table.schema, w.table.success(r))
	}
	return variant.MustFail[A](w.table.schema, l, w.table.failures[l](r))
}
