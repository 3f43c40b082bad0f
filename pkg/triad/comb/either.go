package comb

import (
	"github.com/pkg/errors"

	"github.com/triadlib/triad/pkg/triad"
)

// Transform applies f to the primary value and rewraps the result. A
// secondary value passes through unchanged, type-rebound, without
// invoking f.
func Transform[P, S, P2 any](e triad.Either[P, S], f func(P) P2) triad.Either[P2, S] {
	if e.IsPrimary() {
		return triad.Primary[P2, S](f(e.Primary()))
	}
	return triad.SecondaryFrom[P2](e)
}

// Chain invokes f on the primary value and returns its result directly,
// with no double-wrapping. A secondary value short-circuits without
// invoking f. This is how multi-step primary-path computations compose.
func Chain[P, S, P2 any](e triad.Either[P, S], f func(P) triad.Either[P2, S]) triad.Either[P2, S] {
	if e.IsPrimary() {
		return f(e.Primary())
	}
	return triad.SecondaryFrom[P2](e)
}

// TransformSecondary applies f to the secondary value; a primary value
// passes through unchanged, type-rebound.
func TransformSecondary[P, S, S2 any](e triad.Either[P, S], f func(S) S2) triad.Either[P, S2] {
	if e.IsSecondary() {
		return triad.Secondary[P, S2](f(e.Secondary()))
	}
	return triad.PrimaryFrom[S2](e)
}

// ChainSecondary invokes f on the secondary value and returns its
// result directly; a primary value short-circuits without invoking f.
func ChainSecondary[P, S, S2 any](e triad.Either[P, S], f func(S) triad.Either[P, S2]) triad.Either[P, S2] {
	if e.IsSecondary() {
		return f(e.Secondary())
	}
	return triad.PrimaryFrom[S2](e)
}

// Finally collapses the variant into a final value via one of the two
// handlers.
func Finally[P, S, Out any](e triad.Either[P, S],
	onPrimary func(P) Out,
	onSecondary func(S) Out) Out {

	if e.IsPrimary() {
		return onPrimary(e.Primary())
	}
	return onSecondary(e.Secondary())
}

// OrElse returns the primary value, or derives one from the secondary
// value via otherwise.
func OrElse[P, S any](e triad.Either[P, S], otherwise func(S) P) P {
	if e.IsPrimary() {
		return e.Primary()
	}
	return otherwise(e.Secondary())
}

// Ensure triggers side effects for whichever side holds without
// changing the value. Nil handlers are skipped.
func Ensure[P, S any](e triad.Either[P, S],
	onPrimary func(P),
	onSecondary func(S)) triad.Either[P, S] {

	if e.IsPrimary() {
		if onPrimary != nil {
			onPrimary(e.Primary())
		}
		return e
	}

	if onSecondary != nil {
		onSecondary(e.Secondary())
	}
	return e
}

// Narrow is the explicit Either-to-Option conversion: a primary value
// becomes Present, a secondary value is discarded as Absent.
func Narrow[P, S any](e triad.Either[P, S]) triad.Option[P] {
	if e.IsPrimary() {
		return triad.Present(e.Primary())
	}
	return triad.Absent[P]()
}

// Context annotates an error-typed secondary with msg; a primary value
// passes through untouched.
func Context[P any](e triad.Either[P, error], msg string) triad.Either[P, error] {
	if e.IsPrimary() {
		return e
	}
	return triad.Secondary[P, error](errors.Wrap(e.Secondary(), msg))
}
