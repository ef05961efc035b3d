// Package voicing turns a root and interval set into concrete MIDI
// pitches: close stacks, closed inversions and spread open voicings,
// plus the octave fold that keeps results inside a playable window.
package voicing

import (
	"slices"
	"sort"

	"github.com/tonedrill/tonedrill/random"
	"github.com/tonedrill/tonedrill/theory/note"
)

// Open-voicing strategies. The weights reproduce the distribution the
// strategy choice is meant to have as one explicit discrete draw.
type Strategy int

const (
	StrategySpread  Strategy = iota // low root, mid chord tones, optional high root
	StrategyDoubled                 // close stack plus root or fifth an octave up
	StrategyMixed                   // low root, mid chord tones, one high double
)

// StrategyWeights is the discrete distribution over {spread, doubled,
// mixed} used by Open.
var StrategyWeights = []float64{0.30, 0.28, 0.42}

// Close builds the root-position close voicing: octaveBase + root class
// + each interval, in definition order.
func Close(root int, intervals []int, octaveBase int) []int {
	pitches := make([]int, len(intervals))
	for i, iv := range intervals {
		pitches[i] = octaveBase + note.Class(root) + iv
	}
	return pitches
}

// Invert produces the closed k-th inversion of a close voicing: the
// first k pitches move to the end an octave up, then the sequence is
// re-walked left to right, raising any pitch not strictly above its
// predecessor by octaves until it is.
func Invert(pitches []int, inversion int) []int {
	out := slices.Clone(pitches)
	if inversion <= 0 || len(out) < 2 {
		return out
	}
	inversion %= len(out)

	rotated := make([]int, 0, len(out))
	rotated = append(rotated, out[inversion:]...)
	for _, p := range out[:inversion] {
		rotated = append(rotated, p+12)
	}
	forceAscending(rotated)
	return rotated
}

// Open builds an open voicing using one weighted strategy draw. After
// the chosen strategy runs, exact duplicate pitches are removed and any
// chord-tone pitch class that fell out is reinserted at the middle
// octave, so the full chord-tone set is always represented.
func Open(root int, intervals []int, octaveBase int, src random.Source) []int {
	return OpenWithWeights(root, intervals, octaveBase, src, StrategyWeights)
}

// OpenWithWeights is Open with a caller-supplied strategy distribution.
func OpenWithWeights(root int, intervals []int, octaveBase int, src random.Source, weights []float64) []int {
	rootClass := note.Class(root)
	var pitches []int

	switch Strategy(src.Weighted(weights)) {
	case StrategySpread:
		pitches = append(pitches, octaveBase-12+rootClass)
		for _, iv := range intervals[1:] {
			pitches = append(pitches, octaveBase+rootClass+iv)
		}
		if src.Float64() < 0.5 {
			pitches = append(pitches, octaveBase+12+rootClass)
		}
	case StrategyDoubled:
		pitches = Close(root, intervals, octaveBase)
		// Double the root or the fifth (third chord tone) an octave up.
		doubled := intervals[0]
		if len(intervals) > 2 && src.IntN(2) == 1 {
			doubled = intervals[2]
		}
		pitches = append(pitches, octaveBase+12+rootClass+doubled)
	case StrategyMixed:
		pitches = append(pitches, octaveBase-12+rootClass)
		for _, iv := range intervals[1:] {
			pitches = append(pitches, octaveBase+rootClass+iv)
		}
		high := intervals[src.IntN(len(intervals))]
		pitches = append(pitches, octaveBase+12+rootClass+high)
	}

	pitches = dedupe(pitches)
	pitches = reinsertMissingTones(pitches, rootClass, intervals, octaveBase)
	sort.Ints(pitches)
	return pitches
}

// forceAscending raises pitches by octaves until the sequence is
// strictly ascending.
func forceAscending(pitches []int) {
	for i := 1; i < len(pitches); i++ {
		for pitches[i] <= pitches[i-1] {
			pitches[i] += 12
		}
	}
}

func dedupe(pitches []int) []int {
	seen := make(map[int]bool, len(pitches))
	out := pitches[:0]
	for _, p := range pitches {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// reinsertMissingTones guarantees every chord-tone pitch class appears
// at least once, adding absentees at the middle octave.
func reinsertMissingTones(pitches []int, rootClass int, intervals []int, octaveBase int) []int {
	present := make(map[int]bool, len(pitches))
	for _, p := range pitches {
		present[note.Class(p)] = true
	}
	for _, iv := range intervals {
		pc := note.Class(rootClass + iv)
		if !present[pc] {
			present[pc] = true
			pitches = append(pitches, octaveBase+rootClass+iv)
		}
	}
	return pitches
}
