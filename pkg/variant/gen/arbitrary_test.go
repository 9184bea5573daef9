package gen

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ib-77/variant/pkg/variant"
)

func TestArbitrary_DerivesForRegisteredTypes(t *testing.T) {
	t.Parallel()
	s := variant.MustSchema(
		variant.Declare[string]("notFound"),
		variant.Declare[struct{}]("divByZero"),
	)

	table, err := Arbitrary[int](NewRegistry(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewPCG(11, 0))
	seen := map[variant.Label]int{}
	for range 200 {
		v := table.Uniform(rng)
		seen[v.Label()]++
		if v.Label() == "divByZero" && v.Payload() != struct{}{} {
			t.Fatalf("expected unit payload, got %v", v.Payload())
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three labels realized, got %v", seen)
	}
}

func TestArbitrary_UnregisteredPayloadType(t *testing.T) {
	t.Parallel()
	type custom struct{ n int }
	s := variant.MustSchema(variant.Declare[custom]("odd"))

	if _, err := Arbitrary[int](NewRegistry(), s); err == nil {
		t.Fatalf("expected error for unregistered payload type")
	}
}

func TestArbitrary_UnregisteredSuccessType(t *testing.T) {
	t.Parallel()
	type custom struct{ n int }

	if _, err := Arbitrary[custom](NewRegistry(), variant.MustSchema()); err == nil {
		t.Fatalf("expected error for unregistered success type")
	}
}

func TestRegisterGen_CustomType(t *testing.T) {
	t.Parallel()
	type code int
	reg := NewRegistry()
	RegisterGen(reg, func(r *rand.Rand) code { return code(r.IntN(3) + 400) })
	RegisterPerturb(reg, func(v code, seed uint64) uint64 { return mix(seed, uint64(v)) })

	s := variant.MustSchema(variant.Declare[code]("httpErr"))
	table, err := Arbitrary[int](reg, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewPCG(11, 1))
	for range 50 {
		v := table.Uniform(rng)
		if v.Label() != "httpErr" {
			continue
		}
		if c := v.Payload().(code); c < 400 || c > 402 {
			t.Fatalf("custom generator out of range: %v", c)
		}
	}
}

func TestPerturb_DeterministicAndLabelSensitive(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	s := variant.MustSchema(
		variant.Declare[string]("notFound"),
		variant.Declare[int]("timeout"),
	)

	ok := variant.Success(s, 42)
	nf := variant.MustFail[int](s, "notFound", "user")
	to := variant.MustFail[int](s, "timeout", 30)

	const seed = uint64(1234)
	first, err := Perturb(reg, nf, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := Perturb(reg, nf, seed)
	if first != second {
		t.Fatalf("same value and seed must perturb identically: %v vs %v", first, second)
	}

	okSeed, _ := Perturb(reg, ok, seed)
	toSeed, _ := Perturb(reg, to, seed)
	if first == okSeed || first == toSeed || okSeed == toSeed {
		t.Fatalf("different active labels must perturb differently: %v %v %v", first, okSeed, toSeed)
	}
}

func TestPerturb_PayloadSensitive(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	s := variant.MustSchema(variant.Declare[int]("timeout"))

	a, _ := Perturb(reg, variant.MustFail[int](s, "timeout", 1), 99)
	b, _ := Perturb(reg, variant.MustFail[int](s, "timeout", 2), 99)
	if a == b {
		t.Fatalf("different payloads must perturb differently")
	}
}

func TestPerturb_UnregisteredType(t *testing.T) {
	t.Parallel()
	type custom struct{ n int }
	s := variant.MustSchema(variant.Declare[custom]("odd"))
	v := variant.MustFail[int](s, "odd", custom{n: 1})

	if _, err := Perturb(NewRegistry(), v, 1); err == nil {
		t.Fatalf("expected error for unregistered perturber")
	}
}

func TestBetween_StaysInBounds(t *testing.T) {
	t.Parallel()
	g := Between(10, 20)
	rng := rand.New(rand.NewPCG(11, 2))

	for range 200 {
		if n := g(rng); n < 10 || n > 20 {
			t.Fatalf("out of bounds: %d", n)
		}
	}
}

func TestBetween_NegativeBounds(t *testing.T) {
	t.Parallel()
	g := Between(-5, 5)
	rng := rand.New(rand.NewPCG(11, 3))

	for range 200 {
		if n := g(rng); n < -5 || n > 5 {
			t.Fatalf("out of bounds: %d", n)
		}
	}
}

func TestBetween_FullWidthRange(t *testing.T) {
	t.Parallel()
	g := Between[uint64](0, math.MaxUint64)
	rng := rand.New(rand.NewPCG(11, 4))

	for range 50 {
		g(rng) // every uint64 is in range; it just must not panic
	}
}
