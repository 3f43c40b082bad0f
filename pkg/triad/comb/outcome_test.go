package comb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triadlib/triad/pkg/triad"
)

func TestTransformOutcome_StaysDeferred(t *testing.T) {
	t.Parallel()

	invocations := 0
	derived := TransformOutcome(triad.OutcomeOf(func() int {
		invocations++
		return 10
	}), func(v int) int { return v * 2 })

	assert.Equal(t, 0, invocations, "derivation must not evaluate")

	res := derived.Evaluate()
	assert.Equal(t, 1, invocations)
	assert.True(t, res.Equal(triad.Primary[int, triad.CapturedFailure](20)))
}

func TestTransformOutcome_FailurePreservesIdentity(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("broken")
	derived := TransformOutcome(triad.OutcomeOf(func() int { panic(sentinel) }),
		func(v int) int {
			t.Fatal("transform invoked on failed computation")
			return v
		})

	res := derived.Evaluate()
	assert.True(t, res.IsSecondary())
	assert.Equal(t, sentinel, res.Secondary().Value())
}

func TestChainOutcome(t *testing.T) {
	t.Parallel()

	parse := triad.OutcomeOf(func() int { return 6 })
	derived := ChainOutcome(parse, func(v int) triad.Outcome[string] {
		return triad.OutcomeOf(func() string {
			if v > 5 {
				return "big"
			}
			panic("small")
		})
	})

	res := derived.Evaluate()
	assert.True(t, res.Equal(triad.Primary[string, triad.CapturedFailure]("big")))
}

func TestChainOutcome_InnerFailure(t *testing.T) {
	t.Parallel()

	derived := ChainOutcome(triad.OutcomeOf(func() int { return 1 }),
		func(int) triad.Outcome[string] {
			return triad.OutcomeOf(func() string { panic("inner") })
		})

	res := derived.Evaluate()
	assert.True(t, res.IsSecondary())
	assert.Equal(t, "inner", res.Secondary().Message())
}

func TestNarrowOutcome(t *testing.T) {
	t.Parallel()

	assert.True(t, NarrowOutcome(triad.OutcomeOf(func() int { return 3 })).Equal(triad.Present(3)))
	assert.True(t, NarrowOutcome(triad.OutcomeOf(func() int { panic("no") })).IsAbsent())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Recover(triad.OutcomeOf(func() int { return 7 }),
		func(triad.CapturedFailure) int {
			t.Fatal("recovery invoked on success")
			return 0
		}))

	got := Recover(triad.OutcomeOf(func() int { panic("four") }),
		func(f triad.CapturedFailure) int { return len(f.Message()) })
	assert.Equal(t, 4, got)
}
