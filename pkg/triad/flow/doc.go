// Package flow provides a minimal fluent Chain[P, S] for synchronous
// same-type composition of Either values.
//
// It keeps the API surface very small:
// - Start/FromPrimary: create a Chain
// - Then/Map: compose variant-returning or pure functions
// - Ensure: trigger side effects without changing the value
// - Or/And: select between finished chains
// - Finally: reduce to a concrete value via handlers
// - Try: lift a (value, error) step onto an error-typed chain
//
// Steps that rebind a type parameter belong to package comb; flow is
// for readable same-type pipelines.
package flow
