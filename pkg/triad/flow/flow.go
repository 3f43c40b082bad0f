package flow

import (
	"github.com/triadlib/triad/pkg/triad"
	"github.com/triadlib/triad/pkg/triad/comb"
)

// Chain wraps an Either to enable fluent same-type chaining.
type Chain[P, S any] struct {
	res triad.Either[P, S]
}

// Start creates a new chain from an Either.
func Start[P, S any](e triad.Either[P, S]) Chain[P, S] {
	return Chain[P, S]{res: e}
}

// FromPrimary creates a new chain from a primary value.
func FromPrimary[P, S any](v P) Chain[P, S] {
	return Start(triad.Primary[P, S](v))
}

// Either returns the underlying variant.
func (c Chain[P, S]) Either() triad.Either[P, S] {
	return c.res
}

// Then composes a function that already returns an Either.
func (c Chain[P, S]) Then(onPrimary func(P) triad.Either[P, S]) Chain[P, S] {
	if c.res.IsSecondary() {
		return c
	}
	return Chain[P, S]{res: onPrimary(c.res.Primary())}
}

// Map transforms the primary value to a new value of the same type.
func (c Chain[P, S]) Map(onPrimary func(P) P) Chain[P, S] {
	if c.res.IsSecondary() {
		return c
	}
	return Chain[P, S]{res: triad.Primary[P, S](onPrimary(c.res.Primary()))}
}

// Ensure triggers side effects for whichever side holds without
// changing the value. Nil handlers are skipped.
func (c Chain[P, S]) Ensure(onPrimary func(P), onSecondary func(S)) Chain[P, S] {
	comb.Ensure(c.res, onPrimary, onSecondary)
	return c
}

// Or returns the first primary-holding chain of the two, else c.
func (c Chain[P, S]) Or(alternative Chain[P, S]) Chain[P, S] {
	if c.res.IsPrimary() {
		return c
	}
	if alternative.res.IsPrimary() {
		return alternative
	}
	return c
}

// And returns the first secondary-holding chain of the two, else the
// last one.
func (c Chain[P, S]) And(required Chain[P, S]) Chain[P, S] {
	if c.res.IsSecondary() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value, delegating to
// comb.Finally.
func (c Chain[P, S]) Finally(onPrimary func(P) P, onSecondary func(S) P) P {
	return comb.Finally(c.res, onPrimary, onSecondary)
}

// Try composes a conventional (value, error) step onto an error-typed
// chain, converting a non-nil error into the secondary side.
func Try[P any](c Chain[P, error], step func(P) (P, error)) Chain[P, error] {
	if c.res.IsSecondary() {
		return c
	}
	v, err := step(c.res.Primary())
	if err != nil {
		return Chain[P, error]{res: triad.Secondary[P, error](err)}
	}
	return Chain[P, error]{res: triad.Primary[P, error](v)}
}
