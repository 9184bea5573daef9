package gen

import (
	"math"
	"math/rand/v2"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/variant/pkg/variant"
)

// Perturber folds a payload into a seed, producing a new seed.
type Perturber func(payload any, seed uint64) uint64

// Registry maps payload types to their default generator and perturber.
// A registry is built once per process or test and then shared; it is
// not safe for concurrent registration.
type Registry struct {
	gens     map[reflect.Type]Gen
	perturbs map[reflect.Type]Perturber
}

// NewRegistry returns a registry preloaded with bool, int, int64,
// uint64, float64, string and struct{} support.
func NewRegistry() *Registry {
	reg := &Registry{
		gens:     make(map[reflect.Type]Gen),
		perturbs: make(map[reflect.Type]Perturber),
	}

	RegisterGen(reg, func(r *rand.Rand) bool { return r.IntN(2) == 1 })
	RegisterGen(reg, func(r *rand.Rand) int { return r.IntN(2001) - 1000 })
	RegisterGen(reg, func(r *rand.Rand) int64 { return r.Int64N(2001) - 1000 })
	RegisterGen(reg, func(r *rand.Rand) uint64 { return r.Uint64() })
	RegisterGen(reg, func(r *rand.Rand) float64 { return r.Float64()*2000 - 1000 })
	RegisterGen(reg, randString)
	RegisterGen(reg, func(r *rand.Rand) struct{} { return struct{}{} })

	RegisterPerturb(reg, func(v bool, seed uint64) uint64 {
		if v {
			return mix(seed, 1)
		}
		return mix(seed, 2)
	})
	RegisterPerturb(reg, func(v int, seed uint64) uint64 { return mix(seed, uint64(v)) })
	RegisterPerturb(reg, func(v int64, seed uint64) uint64 { return mix(seed, uint64(v)) })
	RegisterPerturb(reg, func(v uint64, seed uint64) uint64 { return mix(seed, v) })
	RegisterPerturb(reg, func(v float64, seed uint64) uint64 { return mix(seed, math.Float64bits(v)) })
	RegisterPerturb(reg, func(v string, seed uint64) uint64 { return mix(seed, fnv1a(v)) })
	RegisterPerturb(reg, func(_ struct{}, seed uint64) uint64 { return mix(seed, 0) })

	return reg
}

// RegisterGen installs (or replaces) the default generator for P.
func RegisterGen[P any](reg *Registry, g func(r *rand.Rand) P) {
	reg.gens[reflect.TypeFor[P]()] = func(r *rand.Rand) any { return g(r) }
}

// RegisterPerturb installs (or replaces) the perturber for P.
func RegisterPerturb[P any](reg *Registry, p func(v P, seed uint64) uint64) {
	reg.perturbs[reflect.TypeFor[P]()] = func(payload any, seed uint64) uint64 {
		return p(payload.(P), seed)
	}
}

// Between builds a bounded integer generator over [lo, hi]. The span is
// computed in uint64, so full-width ranges of any integer type are legal.
func Between[P constraints.Integer](lo, hi P) func(r *rand.Rand) P {
	span := uint64(hi) - uint64(lo) + 1
	return func(r *rand.Rand) P {
		if span == 0 { // [lo, hi] covers all 2^64 values
			return P(r.Uint64())
		}
		return lo + P(r.Uint64N(span))
	}
}

// Arbitrary derives a complete generator table for a schema by walking
// the declared label set and looking up every payload type, plus the
// success type A, in the registry. Unregistered types are construction
// errors.
func Arbitrary[A any](reg *Registry, s *variant.Schema) (Table[A], error) {
	successType := reflect.TypeFor[A]()
	successGen, ok := reg.gens[successType]
	if !ok {
		return Table[A]{}, ErrGen.New("no registered generator for success type %v", successType)
	}

	failures := make(map[variant.Label]Gen, s.Len())
	for _, l := range s.Labels() {
		t, _ := s.PayloadType(l)
		g, ok := reg.gens[t]
		if !ok {
			return Table[A]{}, ErrGen.New("no registered generator for label %q type %v", l, t)
		}
		failures[l] = g
	}

	return NewTable(s, func(r *rand.Rand) A { return successGen(r).(A) }, failures)
}

// Perturb folds an already-constructed value into seed. It scans the
// declared label list for the active label (the slot is unknown until
// inspected) and applies the matching payload type's perturber; the
// scan is bounded by the schema's fixed label count.
func Perturb[A any](reg *Registry, v variant.Variant[A], seed uint64) (uint64, error) {
	if v.IsSuccess() {
		t := reflect.TypeFor[A]()
		p, ok := reg.perturbs[t]
		if !ok {
			return 0, ErrGen.New("no registered perturber for success type %v", t)
		}
		return p(v.Value(), mix(seed, fnv1a(string(variant.SuccessLabel)))), nil
	}

	for i, l := range v.Schema().Labels() {
		if l != v.Label() {
			continue
		}
		t, _ := v.Schema().PayloadType(l)
		p, ok := reg.perturbs[t]
		if !ok {
			return 0, ErrGen.New("no registered perturber for label %q type %v", l, t)
		}
		return p(v.Payload(), mix(seed, uint64(i)+1)), nil
	}
	return 0, ErrGen.New("active label %q is not declared", v.Label())
}

// mix is the splitmix64 finalizer over seed xor x.
func mix(seed, x uint64) uint64 {
	z := seed ^ x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func fnv1a(s string) uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// randString returns a random printable ASCII string of length [0, 8].
func randString(r *rand.Rand) string {
	n := r.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.IntN(95) + 32)
	}
	return string(b)
}
