// Package random is the engine's only source of nondeterminism. Every
// generator takes a Source explicitly so tests can script the exact
// sequence of draws and assert the chords that come out.
package random

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// Source yields the draws generation consumes. Implementations need not
// be safe for concurrent use; generators are single-threaded per call.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
	// Weighted returns an index drawn from the discrete distribution
	// the weights describe. Weights need not sum to 1.
	Weighted(weights []float64) int
}

// Rand is the production Source, backed by a PCG generator.
type Rand struct {
	rng *rand.Rand
	src rand.Source
}

// New returns an auto-seeded Rand.
func New() *Rand {
	return NewSeeded(rand.Uint64(), rand.Uint64())
}

// NewSeeded returns a Rand with a fixed seed, for reproducible runs.
func NewSeeded(seed1, seed2 uint64) *Rand {
	pcg := rand.NewPCG(seed1, seed2)
	return &Rand{rng: rand.New(pcg), src: pcg}
}

func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

func (r *Rand) IntN(n int) int {
	return r.rng.IntN(n)
}

func (r *Rand) Weighted(weights []float64) int {
	w := sampleuv.NewWeighted(weights, r.src)
	idx, ok := w.Take()
	if !ok {
		return 0
	}
	return idx
}

// Scripted replays a fixed sequence of unit-interval draws. Once the
// script is exhausted it repeats its last value, so a short script can
// pin an arbitrarily long generation.
type Scripted struct {
	draws []float64
	next  int
}

// NewScripted builds a Scripted source. At least one draw is required;
// an empty script behaves as a constant zero.
func NewScripted(draws ...float64) *Scripted {
	return &Scripted{draws: draws}
}

func (s *Scripted) Float64() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next]
	if s.next < len(s.draws)-1 {
		s.next++
	}
	return v
}

func (s *Scripted) IntN(n int) int {
	idx := int(s.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

func (s *Scripted) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := s.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}
