package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsReproducible(t *testing.T) {
	assert := assert.New(t)

	a := NewSeeded(42, 42)
	b := NewSeeded(42, 42)
	for i := 0; i < 100; i++ {
		assert.Equal(a.IntN(12), b.IntN(12))
	}
}

func TestRandBounds(t *testing.T) {
	assert := assert.New(t)

	r := NewSeeded(7, 7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(f, 0.0)
		assert.Less(f, 1.0)
		n := r.IntN(5)
		assert.GreaterOrEqual(n, 0)
		assert.Less(n, 5)
	}
}

func TestRandWeightedCoversAllBuckets(t *testing.T) {
	r := NewSeeded(1, 2)
	weights := []float64{0.30, 0.28, 0.42}
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[r.Weighted(weights)]++
	}
	for i, c := range counts {
		assert.Greater(t, c, 0, "bucket %d never drawn", i)
	}
	// The heaviest bucket should dominate over 3000 draws.
	assert.Greater(t, counts[2], counts[1])
}

func TestScriptedReplaysDraws(t *testing.T) {
	assert := assert.New(t)

	s := NewScripted(0.0, 0.5, 0.99)
	assert.Equal(0.0, s.Float64())
	assert.Equal(0.5, s.Float64())
	assert.Equal(0.99, s.Float64())
	// Exhausted scripts repeat the last draw.
	assert.Equal(0.99, s.Float64())
}

func TestScriptedIntN(t *testing.T) {
	assert := assert.New(t)

	s := NewScripted(0.0, 0.5, 0.999)
	assert.Equal(0, s.IntN(4))
	assert.Equal(2, s.IntN(4))
	assert.Equal(3, s.IntN(4))
}

func TestScriptedWeighted(t *testing.T) {
	assert := assert.New(t)

	weights := []float64{0.30, 0.28, 0.42}
	assert.Equal(0, NewScripted(0.1).Weighted(weights))
	assert.Equal(1, NewScripted(0.4).Weighted(weights))
	assert.Equal(2, NewScripted(0.9).Weighted(weights))
}
