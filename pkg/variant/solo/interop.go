package solo

import (
	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/option"
)

// FromTuple injects a (value, error) pair: a non-nil error becomes a
// failure under label, otherwise the value becomes success. The label's
// declared payload type must accept the error.
func FromTuple[A any](s *variant.Schema, label variant.Label,
	value A, err error) variant.Variant[A] {

	if err != nil {
		return variant.MustFail[A](s, label, err)
	}
	return variant.Success(s, value)
}

// ToOption keeps the success payload and discards any failure.
func ToOption[A any](input variant.Variant[A]) option.Option[A] {
	return variant.Eliminate(input,
		func(variant.Label, any) option.Option[A] {
			return option.None[A]()
		},
		func(in A) option.Option[A] {
			return option.Some(in)
		})
}

// NoteAbsence turns a present optional into success and an absent one
// into a failure under label carrying payload.
func NoteAbsence[A any](s *variant.Schema, label variant.Label, payload any,
	o option.Option[A]) variant.Variant[A] {

	if v, ok := o.Get(); ok {
		return variant.Success(s, v)
	}
	return variant.MustFail[A](s, label, payload)
}

// NoteAbsenceWith is the deferred form of NoteAbsence: the payload is
// only computed when the optional is absent.
func NoteAbsenceWith[A any](s *variant.Schema, label variant.Label, payload func() any,
	o option.Option[A]) variant.Variant[A] {

	if v, ok := o.Get(); ok {
		return variant.Success(s, v)
	}
	return variant.MustFail[A](s, label, payload())
}

// SuccessOr returns the success payload or def on any failure.
func SuccessOr[A any](input variant.Variant[A], def A) A {
	return variant.Eliminate(input,
		func(variant.Label, any) A { return def },
		func(in A) A { return in })
}

// SuccessOrElse is the deferred form of SuccessOr.
func SuccessOrElse[A any](input variant.Variant[A], onFailure func() A) A {
	return variant.Eliminate(input,
		func(variant.Label, any) A { return onFailure() },
		func(in A) A { return in })
}

// FailureOr returns def on success, otherwise onFailure applied to the
// active failure label and payload.
func FailureOr[A, B any](input variant.Variant[A], def B,
	onFailure func(variant.Label, any) B) B {

	return variant.Eliminate(input,
		onFailure,
		func(A) B { return def })
}

// FailureOrElse is the deferred form of FailureOr.
func FailureOrElse[A, B any](input variant.Variant[A], onSuccess func() B,
	onFailure func(variant.Label, any) B) B {

	return variant.Eliminate(input,
		onFailure,
		func(A) B { return onSuccess() })
}
