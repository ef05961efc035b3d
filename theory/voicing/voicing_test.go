package voicing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonedrill/tonedrill/random"
	"github.com/tonedrill/tonedrill/theory/note"
)

var majorTriad = []int{0, 4, 7}

func TestCloseRootPosition(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{60, 64, 67}, Close(0, majorTriad, 60))
	assert.Equal([]int{67, 71, 74}, Close(7, majorTriad, 60))
	// Root accepts raw pitches too; only the class matters.
	assert.Equal([]int{60, 64, 67}, Close(60, majorTriad, 60))
}

func TestInvertFirstAndSecond(t *testing.T) {
	assert := assert.New(t)

	base := Close(0, majorTriad, 60)
	assert.Equal([]int{64, 67, 72}, Invert(base, 1))
	assert.Equal([]int{67, 72, 76}, Invert(base, 2))
	assert.Equal(base, Invert(base, 0))
}

func TestInvertKeepsPitchClasses(t *testing.T) {
	seventh := []int{0, 4, 7, 10}
	base := Close(2, seventh, 48)
	for inv := 1; inv < len(seventh); inv++ {
		got := Invert(base, inv)
		require.Len(t, got, len(base), "inversion %d", inv)
		for i := 1; i < len(got); i++ {
			require.Greater(t, got[i], got[i-1], "inversion %d not ascending", inv)
		}
		baseClasses := make(map[int]bool)
		for _, p := range base {
			baseClasses[note.Class(p)] = true
		}
		for _, p := range got {
			require.True(t, baseClasses[note.Class(p)], "inversion %d gained class %d", inv, note.Class(p))
		}
	}
}

func TestInvertDoesNotMutateInput(t *testing.T) {
	base := []int{60, 64, 67}
	Invert(base, 1)
	assert.Equal(t, []int{60, 64, 67}, base)
}

func TestNormalizeRangeConverges(t *testing.T) {
	assert := assert.New(t)

	// 10 is below the window; two up-shifts land inside.
	assert.Equal([]int{34, 44, 54}, NormalizeRange([]int{10, 20, 30}, 24, 84))
	// Above the window shifts down first.
	assert.Equal([]int{76, 80, 83}, NormalizeRange([]int{88, 92, 95}, 24, 84))
	// Already inside: untouched.
	assert.Equal([]int{60, 64, 67}, NormalizeRange([]int{60, 64, 67}, 24, 84))
}

func TestNormalizeRangePreservesClasses(t *testing.T) {
	in := []int{10, 20, 30}
	out := NormalizeRange(in, 24, 84)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, note.Class(in[i]), note.Class(out[i]))
	}
	// Input untouched.
	assert.Equal(t, []int{10, 20, 30}, in)
}

func TestNormalizeRangeBoundedOnImpossibleWindow(t *testing.T) {
	// A four-octave spread cannot fit a one-octave window; the fold
	// must terminate and hand back a best-effort result.
	out := NormalizeRange([]int{12, 60}, 24, 36)
	assert.Len(t, out, 2)
}

func TestOpenSpreadStrategy(t *testing.T) {
	assert := assert.New(t)

	// First draw selects spread (weight bucket 0), second declines the
	// high root double.
	src := random.NewScripted(0.1, 0.9)
	got := Open(0, majorTriad, 60, src)
	assert.Equal([]int{48, 64, 67}, got)

	// Same strategy, this time doubling the root an octave up.
	src = random.NewScripted(0.1, 0.1)
	got = Open(0, majorTriad, 60, src)
	assert.Equal([]int{48, 64, 67, 72}, got)
}

func TestOpenDoubledStrategy(t *testing.T) {
	assert := assert.New(t)

	// Bucket 1 (doubled), doubling the root.
	src := random.NewScripted(0.35, 0.1)
	got := Open(0, majorTriad, 60, src)
	assert.Equal([]int{60, 64, 67, 72}, got)

	// Doubling the fifth.
	src = random.NewScripted(0.35, 0.9)
	got = Open(0, majorTriad, 60, src)
	assert.Equal([]int{60, 64, 67, 79}, got)
}

func TestOpenMixedStrategy(t *testing.T) {
	assert := assert.New(t)

	// Bucket 2 (mixed), high double of the root.
	src := random.NewScripted(0.9, 0.1)
	got := Open(0, majorTriad, 60, src)
	assert.Equal([]int{48, 64, 67, 72}, got)
}

func TestOpenAlwaysCoversChordTones(t *testing.T) {
	seventh := []int{0, 4, 7, 10}
	src := random.NewSeeded(11, 13)
	for i := 0; i < 500; i++ {
		got := Open(9, seventh, 60, src)
		present := make(map[int]bool)
		for _, p := range got {
			present[note.Class(p)] = true
		}
		for _, iv := range seventh {
			require.True(t, present[note.Class(9+iv)], "missing tone %d in %v", iv, got)
		}
		seen := make(map[int]bool)
		for _, p := range got {
			require.False(t, seen[p], "duplicate pitch %d in %v", p, got)
			seen[p] = true
		}
		for j := 1; j < len(got); j++ {
			require.Greater(t, got[j], got[j-1], "not ascending: %v", got)
		}
	}
}
