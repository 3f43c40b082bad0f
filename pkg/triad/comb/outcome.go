package comb

import (
	"github.com/triadlib/triad/pkg/triad"
)

// TransformOutcome derives an Outcome that applies f to the result of
// o's computation. Evaluation stays deferred; a failure in o resurfaces
// inside the derived computation and is recaptured at the outer
// Evaluate boundary with its original panic value.
func TransformOutcome[F, G any](o triad.Outcome[F], f func(F) G) triad.Outcome[G] {
	return triad.OutcomeOf(func() G {
		res := o.Evaluate()
		if res.IsSecondary() {
			panic(res.Secondary().Value())
		}
		return f(res.Primary())
	})
}

// ChainOutcome derives an Outcome that feeds o's result into f and
// evaluates the Outcome f returns, all within one deferred computation.
func ChainOutcome[F, G any](o triad.Outcome[F], f func(F) triad.Outcome[G]) triad.Outcome[G] {
	return triad.OutcomeOf(func() G {
		res := o.Evaluate()
		if res.IsSecondary() {
			panic(res.Secondary().Value())
		}
		inner := f(res.Primary()).Evaluate()
		if inner.IsSecondary() {
			panic(inner.Secondary().Value())
		}
		return inner.Primary()
	})
}

// NarrowOutcome evaluates o and discards failure detail: a normal
// result becomes Present, a captured failure becomes Absent.
func NarrowOutcome[F any](o triad.Outcome[F]) triad.Option[F] {
	res := o.Evaluate()
	if res.IsPrimary() {
		return triad.Present(res.Primary())
	}
	return triad.Absent[F]()
}

// Recover evaluates o and returns its result, or derives a fallback
// from the captured failure via recovery.
func Recover[F any](o triad.Outcome[F], recovery func(triad.CapturedFailure) F) F {
	res := o.Evaluate()
	if res.IsPrimary() {
		return res.Primary()
	}
	return recovery(res.Secondary())
}
