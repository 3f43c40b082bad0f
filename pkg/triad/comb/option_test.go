package comb

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triadlib/triad/pkg/triad"
)

func TestTransformOption(t *testing.T) {
	t.Parallel()

	out := TransformOption(triad.Present(21), func(v int) string { return strconv.Itoa(v) })
	assert.True(t, out.Equal(triad.Present("21")))

	out2 := TransformOption(triad.Absent[int](), func(int) string {
		t.Fatal("transform invoked on absent option")
		return ""
	})
	assert.True(t, out2.IsAbsent())
}

func TestChainOption(t *testing.T) {
	t.Parallel()

	halve := func(v int) triad.Option[int] {
		if v%2 != 0 {
			return triad.Absent[int]()
		}
		return triad.Present(v / 2)
	}

	assert.True(t, ChainOption(triad.Present(8), halve).Equal(triad.Present(4)))
	assert.True(t, ChainOption(triad.Present(7), halve).IsAbsent())

	ChainOption(triad.Absent[int](), func(int) triad.Option[int] {
		t.Fatal("chain invoked on absent option")
		return triad.Absent[int]()
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	assert.True(t, Filter(triad.Present(4), even).Equal(triad.Present(4)))
	assert.True(t, Filter(triad.Present(3), even).IsAbsent())
	assert.True(t, Filter(triad.Absent[int](), even).IsAbsent())
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, GetOrElse(triad.Present(9), func() int {
		t.Fatal("provider invoked while present")
		return 0
	}))

	assert.Equal(t, -1, GetOrElse(triad.Absent[int](), func() int { return -1 }))
}

func TestToEither(t *testing.T) {
	t.Parallel()

	assert.True(t, ToEither(triad.Present(3), "absent").Equal(triad.Primary[int, string](3)))
	assert.True(t, ToEither(triad.Absent[int](), "absent").Equal(triad.Secondary[int, string]("absent")))
}

func TestContextOption(t *testing.T) {
	t.Parallel()

	out := ContextOption(triad.Absent[int](), "profile missing")
	assert.True(t, out.IsSecondary())
	assert.Equal(t, "profile missing", out.Secondary().Error())

	ok := ContextOption(triad.Present(2), "unused")
	assert.True(t, ok.Equal(triad.Primary[int, error](2)))
}
