// Package comb provides the type-rebinding combinators over the triad
// value types. Go methods cannot introduce new type parameters, so
// operations that change a held type (Transform, Chain and friends) are
// package-level generic functions.
//
// Naming: the Either family is unsuffixed (Transform, Chain, Finally,
// ...); Option and Outcome variants of the same operation carry the
// type name as a suffix (TransformOption, ChainOutcome, ...).
//
// Every combinator guards on the active variant, short-circuits
// otherwise, and invokes its callback at most once, synchronously, on
// the caller's own execution context.
package comb
