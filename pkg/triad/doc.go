// Package triad provides three small immutable value wrappers for
// expressing "one of two things", "maybe nothing" and "succeeded or
// failed" as concrete, composable values.
//
// Core types:
// - Either[P, S]: a disjoint sum of two typed alternatives, primary-biased
// - Option[T]: a value or its explicit absence
// - Outcome[F]: a deferred computation whose panic, if any, is converted
//   into a CapturedFailure value at evaluation time
//
// All three are plain value types with no shared mutable state; every
// operation is synchronous and callbacks are invoked at most once per
// call. Combinators that rebind a type parameter live in the comb
// subpackage, fluent same-type chaining in flow.
package triad
