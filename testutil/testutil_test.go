package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sumgo/distance"
)

func TestRNG(t *testing.T) {
	t.Run("deterministic for a given seed", func(t *testing.T) {
		a := NewRNG(42).UnitVectors(3, 8)
		b := NewRNG(42).UnitVectors(3, 8)
		assert.Equal(t, a, b)
	})

	t.Run("reset replays the sequence", func(t *testing.T) {
		rng := NewRNG(7)
		first := rng.Scores(5)
		rng.Reset()
		assert.Equal(t, first, rng.Scores(5))
	})

	t.Run("unit vectors have norm one", func(t *testing.T) {
		for _, vec := range NewRNG(1).UnitVectors(10, 16) {
			assert.InDelta(t, 1.0, float64(distance.Norm(vec)), 1e-5)
		}
	})
}

func TestNearDuplicate(t *testing.T) {
	rng := NewRNG(99)

	base := rng.UnitVector(32)
	for _, want := range []float64{0.5, 0.65, 0.9} {
		dup := rng.NearDuplicate(base, want)
		require.Len(t, dup, len(base))
		assert.InDelta(t, want, float64(distance.Cosine(base, dup)), 1e-4)
	}
}
