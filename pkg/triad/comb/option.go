package comb

import (
	"github.com/pkg/errors"

	"github.com/triadlib/triad/pkg/triad"
)

// TransformOption maps f over a present value; an absent option passes
// through untouched, retyped.
func TransformOption[T, T2 any](o triad.Option[T], f func(T) T2) triad.Option[T2] {
	if v, ok := o.Get(); ok {
		return triad.Present(f(v))
	}
	return triad.Absent[T2]()
}

// ChainOption invokes f on a present value and returns its result
// directly; an absent option short-circuits without invoking f.
func ChainOption[T, T2 any](o triad.Option[T], f func(T) triad.Option[T2]) triad.Option[T2] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return triad.Absent[T2]()
}

// Filter keeps a present value only when clause holds for it.
func Filter[T any](o triad.Option[T], clause func(T) bool) triad.Option[T] {
	if v, ok := o.Get(); ok && clause(v) {
		return o
	}
	return triad.Absent[T]()
}

// GetOrElse returns the held value, or one obtained from provider when
// absent. The provider is only invoked on absence.
func GetOrElse[T any](o triad.Option[T], provider func() T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return provider()
}

// ToEither converts an option into a variant: a present value becomes
// primary, absence becomes the given secondary value.
func ToEither[T, S any](o triad.Option[T], secondary S) triad.Either[T, S] {
	if v, ok := o.Get(); ok {
		return triad.Primary[T, S](v)
	}
	return triad.Secondary[T, S](secondary)
}

// ContextOption converts an option into an error-typed variant: absence
// becomes a secondary error built from msg.
func ContextOption[T any](o triad.Option[T], msg string) triad.Either[T, error] {
	if v, ok := o.Get(); ok {
		return triad.Primary[T, error](v)
	}
	return triad.Secondary[T, error](errors.New(msg))
}
