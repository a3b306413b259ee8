package nums_test

import (
	"testing"

	"github.com/machbase/neo-crs/mods/nums"
	"github.com/stretchr/testify/require"
)

func TestTolComparerSameBucket(t *testing.T) {
	cmp := nums.NewTolComparer(0.1)
	require.Equal(t, 0.1, cmp.Tolerance())

	x, y := 0.2, 0.25
	require.True(t, cmp.Equal(x, y))
	require.Equal(t, cmp.Hash(x), cmp.Hash(y))

	require.Equal(t, int64(-1), cmp.Hash(-0.5))
	require.Equal(t, int64(12), cmp.Hash(12.3))
}

// Tolerance-equal values on both sides of a bucket boundary do not share a hash.
// Hashed lookups through TolComparer can therefore miss equal keys.
func TestTolComparerBoundaryStraddle(t *testing.T) {
	cmp := nums.NewTolComparer(0.1)
	x, y := 0.99, 1.01
	require.True(t, cmp.Equal(x, y))
	require.NotEqual(t, cmp.Hash(x), cmp.Hash(y))
}

func TestTolComparerZeroTolerance(t *testing.T) {
	cmp := nums.NewTolComparer(0)
	require.True(t, cmp.Equal(1.5, 1.5))
	require.False(t, cmp.Equal(1.5, 1.5000001))
	require.Equal(t, cmp.Hash(1.5), cmp.Hash(1.5))
	require.Equal(t, cmp.Hash(0), cmp.Hash(-0.0))
}

func TestTolSet(t *testing.T) {
	set := nums.NewTolSet(0.1)
	require.True(t, set.Add(0.2))
	require.False(t, set.Add(0.25))
	require.True(t, set.Add(0.99))
	require.Equal(t, 2, set.Len())

	require.True(t, set.Contains(0.21))
	// 1.01 equals 0.99 within tolerance but lives in the next bucket
	require.False(t, set.Contains(1.01))
	require.True(t, set.Add(1.01))
	require.Equal(t, 3, set.Len())
	require.ElementsMatch(t, []float64{0.2, 0.99, 1.01}, set.Values())
}
