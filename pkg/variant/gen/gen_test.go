package gen

import (
	"math/rand/v2"
	"testing"

	"github.com/ib-77/variant/pkg/variant"
)

func testSchema(t *testing.T) *variant.Schema {
	t.Helper()
	return variant.MustSchema(
		variant.Declare[string]("notFound"),
		variant.Declare[int]("timeout"),
	)
}

func testTable(t *testing.T) Table[int] {
	t.Helper()
	return MustTable(testSchema(t),
		func(r *rand.Rand) int { return r.IntN(100) },
		map[variant.Label]Gen{
			"notFound": func(r *rand.Rand) any { return "missing" },
			"timeout":  func(r *rand.Rand) any { return r.IntN(60) },
		})
}

func TestNewTable_MissingLabelGenerator(t *testing.T) {
	t.Parallel()
	_, err := NewTable(testSchema(t),
		func(r *rand.Rand) int { return 0 },
		map[variant.Label]Gen{
			"notFound": func(r *rand.Rand) any { return "" },
		})
	if err == nil {
		t.Fatalf("expected error for the uncovered timeout label")
	}
}

func TestNewTable_UndeclaredLabelGenerator(t *testing.T) {
	t.Parallel()
	_, err := NewTable(variant.MustSchema(),
		func(r *rand.Rand) int { return 0 },
		map[variant.Label]Gen{
			"nope": func(r *rand.Rand) any { return "" },
		})
	if err == nil {
		t.Fatalf("expected error for an undeclared label generator")
	}
}

func TestNewTable_MissingSuccessGenerator(t *testing.T) {
	t.Parallel()
	if _, err := NewTable[int](variant.MustSchema(), nil, nil); err == nil {
		t.Fatalf("expected error for a missing success generator")
	}
}

func TestUniform_CoversEveryLabel(t *testing.T) {
	t.Parallel()
	table := testTable(t)
	rng := rand.New(rand.NewPCG(7, 0))

	seen := map[variant.Label]int{}
	for range 300 {
		v := table.Uniform(rng)
		seen[v.Label()]++

		// single-active-label invariant on every sample
		if v.IsSuccess() {
			if v.Payload() != nil {
				t.Fatalf("success must carry no failure payload")
			}
		} else if !v.Schema().Has(v.Label()) {
			t.Fatalf("active label %q is not declared", v.Label())
		}
	}

	for _, l := range []variant.Label{variant.SuccessLabel, "notFound", "timeout"} {
		if seen[l] == 0 {
			t.Fatalf("label %q never realized in 300 samples: %v", l, seen)
		}
	}
}

func TestUniform_DegenerateSchema(t *testing.T) {
	t.Parallel()
	table := MustTable(variant.MustSchema(),
		func(r *rand.Rand) int { return 5 }, nil)

	rng := rand.New(rand.NewPCG(7, 1))
	for range 10 {
		if v := table.Uniform(rng); !v.IsSuccess() || v.Value() != 5 {
			t.Fatalf("an empty failure set must always generate success")
		}
	}
}

func TestNewWeighted_Validation(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	good := map[variant.Label]float64{variant.SuccessLabel: 1, "notFound": 2, "timeout": 3}
	if _, err := NewWeighted(table, good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, weights := range map[string]map[variant.Label]float64{
		"missing label": {variant.SuccessLabel: 1, "notFound": 2},
		"negative":      {variant.SuccessLabel: 1, "notFound": -2, "timeout": 3},
		"all zero":      {variant.SuccessLabel: 0, "notFound": 0, "timeout": 0},
		"undeclared":    {variant.SuccessLabel: 1, "notFound": 2, "timeout": 3, "nope": 1},
	} {
		if _, err := NewWeighted(table, weights); err == nil {
			t.Fatalf("expected %s weights to be rejected", name)
		}
	}
}

func TestWeighted_ZeroWeightLabelNeverSampled(t *testing.T) {
	t.Parallel()
	w := MustWeighted(testTable(t), map[variant.Label]float64{
		variant.SuccessLabel: 1,
		"notFound":           0,
		"timeout":            1,
	})

	rng := rand.New(rand.NewPCG(7, 2))
	for range 500 {
		if v := w.Sample(rng); v.Label() == "notFound" {
			t.Fatalf("a zero-weight label must never be sampled")
		}
	}
}

func TestWeighted_ProportionalSampling(t *testing.T) {
	t.Parallel()
	w := MustWeighted(testTable(t), map[variant.Label]float64{
		variant.SuccessLabel: 8,
		"notFound":           1,
		"timeout":            1,
	})

	rng := rand.New(rand.NewPCG(7, 3))
	seen := map[variant.Label]int{}
	const n = 5000
	for range n {
		seen[w.Sample(rng).Label()]++
	}

	// success holds 80% of the weight; allow generous slack
	if ratio := float64(seen[variant.SuccessLabel]) / n; ratio < 0.7 || ratio > 0.9 {
		t.Fatalf("expected success ratio near 0.8, got %v (%v)", ratio, seen)
	}
	if seen["notFound"] == 0 || seen["timeout"] == 0 {
		t.Fatalf("weighted labels never realized: %v", seen)
	}
}
