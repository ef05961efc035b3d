package voicing

import "slices"

// Default MIDI window for normalized voicings: C1 through C6.
const (
	DefaultMinPitch = 24
	DefaultMaxPitch = 84
)

// maxFoldIterations bounds the octave fold. Interval sets wider than
// the window would otherwise oscillate between the two shifts forever;
// hitting the bound returns the best-effort pitches as-is.
const maxFoldIterations = 50

// NormalizeRange shifts the whole pitch set by octaves until every
// pitch lies inside [minPitch, maxPitch]. Overshoot above the window is
// corrected before undershoot below it. Pitch-class content is
// preserved exactly; only the register changes.
func NormalizeRange(pitches []int, minPitch, maxPitch int) []int {
	out := slices.Clone(pitches)
	if len(out) == 0 {
		return out
	}

	for iter := 0; iter < maxFoldIterations; iter++ {
		switch {
		case slices.Max(out) > maxPitch:
			shiftAll(out, -12)
		case slices.Min(out) < minPitch:
			shiftAll(out, 12)
		default:
			return out
		}
	}
	return out
}

func shiftAll(pitches []int, semitones int) {
	for i := range pitches {
		pitches[i] += semitones
	}
}
