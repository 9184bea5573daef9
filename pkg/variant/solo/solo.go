package solo

import (
	"github.com/ib-77/variant/pkg/variant"
)

func Succeed[A any](s *variant.Schema, input A) variant.Variant[A] {
	return variant.Success(s, input)
}

func Fail[A any](s *variant.Schema, label variant.Label, payload any) variant.Variant[A] {
	return variant.MustFail[A](s, label, payload)
}

// Map transforms the success payload; an active failure passes through
// with label, payload and identity unchanged.
func Map[In, Out any](input variant.Variant[In], onSuccess func(In) Out) variant.Variant[Out] {
	return variant.Eliminate(input,
		func(variant.Label, any) variant.Variant[Out] {
			return variant.FailFrom[In, Out](input)
		},
		func(in In) variant.Variant[Out] {
			return variant.Success(input.Schema(), onSuccess(in))
		})
}

// Switch feeds the success payload into onSuccess and adopts its result;
// an active failure short-circuits. Label accumulation across schemas is
// the caller's affair, see variant.Schema.Union and variant.Retag.
func Switch[In, Out any](input variant.Variant[In],
	onSuccess func(In) variant.Variant[Out]) variant.Variant[Out] {

	return variant.Eliminate(input,
		func(variant.Label, any) variant.Variant[Out] {
			return variant.FailFrom[In, Out](input)
		},
		onSuccess)
}

// Apply applies a union-wrapped function to a union-wrapped argument.
// A failed ff wins regardless of fa's state.
func Apply[In, Out any](ff variant.Variant[func(In) Out],
	fa variant.Variant[In]) variant.Variant[Out] {

	return variant.Eliminate(ff,
		func(variant.Label, any) variant.Variant[Out] {
			return variant.FailFrom[func(In) Out, Out](ff)
		},
		func(f func(In) Out) variant.Variant[Out] {
			return Map(fa, f)
		})
}

// Or returns right only when left failed and right succeeded; every
// other combination returns left.
func Or[A any](left, right variant.Variant[A]) variant.Variant[A] {
	return variant.Eliminate(left,
		func(variant.Label, any) variant.Variant[A] {
			if right.IsSuccess() {
				return right
			}
			return left
		},
		func(A) variant.Variant[A] {
			return left
		})
}

// Extend rewraps the whole union, success or failure, as a success
// carrying onWhole(input). The label set is kept.
func Extend[In, Out any](input variant.Variant[In],
	onWhole func(variant.Variant[In]) Out) variant.Variant[Out] {
	return variant.Success(input.Schema(), onWhole(input))
}

// Tee runs a side effect on success and returns the input unchanged.
func Tee[A any](input variant.Variant[A], onSuccess func(A)) variant.Variant[A] {
	return variant.Eliminate(input,
		func(variant.Label, any) variant.Variant[A] { return input },
		func(in A) variant.Variant[A] {
			onSuccess(in)
			return input
		})
}

// Cases is the handler table for Finally. OnFailure must cover the
// value's declared label set exactly.
type Cases[A, B any] struct {
	OnSuccess func(A) B
	OnFailure map[variant.Label]func(any) B
}

// Finally collapses a union into a plain value through exhaustive
// dispatch. Missing, extra or reserved failure cases are contract
// violations and panic before any handler runs.
func Finally[A, B any](input variant.Variant[A], cases Cases[A, B]) B {
	if cases.OnSuccess == nil {
		panic(variant.ErrSchema.New("no success case"))
	}
	if _, bad := cases.OnFailure[variant.SuccessLabel]; bad {
		panic(variant.ErrSchema.New("label %q is reserved for success", variant.SuccessLabel))
	}

	s := input.Schema()
	for _, l := range s.Labels() {
		if _, ok := cases.OnFailure[l]; !ok {
			panic(variant.ErrSchema.New("no case for label %q", l))
		}
	}
	for l := range cases.OnFailure {
		if !s.Has(l) {
			panic(variant.ErrSchema.New("label %q is not declared", l))
		}
	}

	return variant.Eliminate(input,
		func(l variant.Label, payload any) B {
			return cases.OnFailure[l](payload)
		},
		cases.OnSuccess)
}
