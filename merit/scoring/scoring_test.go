package scoring_test

import (
	"math"
	"testing"

	"github.com/meritledger/merit-contract/merit/scoring"
	"github.com/stretchr/testify/require"
)

func TestValidBounds(t *testing.T) {
	require.True(t, scoring.ValidBounds(0, 0, 100))
	require.True(t, scoring.ValidBounds(100, 0, 100))
	require.True(t, scoring.ValidBounds(50, 0, 100))
	require.False(t, scoring.ValidBounds(101, 0, 100))
	require.False(t, scoring.ValidBounds(9, 10, 100))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 10, scoring.Clamp(9, 10, 100))
	require.Equal(t, 100, scoring.Clamp(101, 10, 100))
	require.Equal(t, 55, scoring.Clamp(55, 10, 100))
}

func TestBlend(t *testing.T) {
	// first evaluation of a fresh account fully adopts the raw score
	require.Equal(t, 60, scoring.Blend(100, 60, 0, 100))

	// identical score from a perfectly accurate evaluator is a fixed point
	require.Equal(t, 80, scoring.Blend(80, 80, 0, 100))

	// second evaluation carries half the weight
	require.Equal(t, 75, scoring.Blend(100, 50, 1, 100))

	// low accuracy shrinks the increment
	require.Equal(t, 62, scoring.Blend(100, 50, 1, 50))

	// truncation happens after each multiplication
	require.Equal(t, 3, scoring.Blend(5, 7, 3, 33))
}

func TestBlendStability(t *testing.T) {
	// repeated identical evaluations from a perfectly accurate evaluator
	// keep the score within one truncation step of itself
	for n := 0; n < 1000; n++ {
		got := scoring.Blend(80, 80, n, 100)
		require.GreaterOrEqual(t, got, 79, "n=%d", n)
		require.LessOrEqual(t, got, 80, "n=%d", n)
	}
}

func TestBlendOverflow(t *testing.T) {
	require.PanicsWithValue(t,
		"validation failed: score arithmetic overflow",
		func() { scoring.Blend(math.MaxInt, 1, 3, 100) })
}

func TestDecay(t *testing.T) {
	const (
		interval = 10
		rate     = 5
		floor    = 0
	)

	// no full interval elapsed, no decay
	require.Equal(t, 100, scoring.Decay(100, 5, 5, interval, rate, floor))
	require.Equal(t, 100, scoring.Decay(100, 5, 14, interval, rate, floor))

	// decay ticks once per full interval
	require.Equal(t, 95, scoring.Decay(100, 5, 15, interval, rate, floor))
	require.Equal(t, 95, scoring.Decay(100, 5, 24, interval, rate, floor))
	require.Equal(t, 90, scoring.Decay(100, 5, 25, interval, rate, floor))

	// current epoch behind the last activity counts as no elapsed time
	require.Equal(t, 100, scoring.Decay(100, 7, 3, interval, rate, floor))
}

func TestDecayIdempotent(t *testing.T) {
	first := scoring.Decay(100, 0, 42, 10, 5, 0)
	second := scoring.Decay(100, 0, 42, 10, 5, 0)
	require.Equal(t, first, second)
}

func TestDecayMonotone(t *testing.T) {
	prev := 100
	for epoch := 0; epoch < 500; epoch++ {
		got := scoring.Decay(100, 0, epoch, 7, 3, 20)
		require.LessOrEqual(t, got, prev, "epoch=%d", epoch)
		require.GreaterOrEqual(t, got, 20, "epoch=%d", epoch)
		prev = got
	}
	require.Equal(t, 20, prev)
}
