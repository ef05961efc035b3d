package answer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonedrill/tonedrill/theory/chord"
	"github.com/tonedrill/tonedrill/theory/note"
)

var lenient = Settings{SupportsInversions: true, RequireInversionLabeling: false}
var strict = Settings{SupportsInversions: true, RequireInversionLabeling: true}

func TestCanonicalize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("cmaj", Canonicalize(" C maj "))
	assert.Equal("c#m", Canonicalize("C♯m"))
	assert.Equal("ebdim", Canonicalize("E♭°"))
	assert.Equal("bdim", Canonicalize("Bº"))
	assert.Equal("c-7", Canonicalize("C–7"))
	assert.Equal("f#m7b5", Canonicalize("F#ø7"))
}

func TestValidateChordAnswerSynonyms(t *testing.T) {
	assert := assert.New(t)

	// Case, whitespace and synonym insensitivity.
	assert.True(ValidateChordAnswer("c maj", "C", lenient))
	assert.True(ValidateChordAnswer("C major", "C", lenient))
	assert.True(ValidateChordAnswer("C", "C", lenient))

	assert.True(ValidateChordAnswer("Am", "Aminor", lenient))
	assert.True(ValidateChordAnswer("a min", "Am", lenient))
	assert.True(ValidateChordAnswer("A-", "Am", lenient))

	assert.True(ValidateChordAnswer("B°", "Bdim", lenient))
	assert.True(ValidateChordAnswer("b diminished", "Bdim", lenient))
	assert.True(ValidateChordAnswer("C+", "Caug", lenient))
	assert.True(ValidateChordAnswer("G dom7", "G7", lenient))
	assert.True(ValidateChordAnswer("Dmin7b5", "Dm7b5", lenient))
	assert.True(ValidateChordAnswer("Dø7", "Dm7b5", lenient))

	assert.False(ValidateChordAnswer("Cm", "C", lenient))
	assert.False(ValidateChordAnswer("D", "C", lenient))
	assert.False(ValidateChordAnswer("C7", "Cmaj7", lenient))
}

func TestValidateChordAnswerReflexive(t *testing.T) {
	// Reflexivity across the whole catalog and inversion states.
	for _, quality := range chord.Keys() {
		ct, err := chord.Get(quality)
		require.NoError(t, err)
		for root := 0; root < 12; root++ {
			for inv := 0; inv < len(ct.Intervals) && inv < 4; inv++ {
				expected := note.Name(root) + ct.Symbol
				if inv > 0 {
					expected = fmt.Sprintf("%s/%d", expected, inv)
				}
				for _, s := range []Settings{lenient, strict} {
					require.True(t, ValidateChordAnswer(expected, expected, s),
						"not reflexive: %q settings %+v", expected, s)
				}
			}
		}
	}
}

func TestValidateChordAnswerEnharmonic(t *testing.T) {
	assert := assert.New(t)

	// If C# matches, Db must match.
	assert.True(ValidateChordAnswer("C#", "C#maj", lenient))
	assert.True(ValidateChordAnswer("Db", "C#maj", lenient))
	assert.True(ValidateChordAnswer("d#m", "Ebm", lenient))
	assert.True(ValidateChordAnswer("A#7", "Bb7", lenient))

	// Enharmonic swap must not bridge different pitch classes.
	assert.False(ValidateChordAnswer("D", "C#maj", lenient))
}

func TestValidateChordAnswerInversionForms(t *testing.T) {
	assert := assert.New(t)

	for _, user := range []string{
		"C/1", "C maj/1", "C/first", "C first inversion", "C 1st inversion",
	} {
		assert.True(ValidateChordAnswer(user, "C/1", strict), user)
	}

	// Slash-bass notation: first inversion of C major has E in the bass.
	assert.True(ValidateChordAnswer("C/E", "C/1", strict))
	// Second inversion: G in the bass.
	assert.True(ValidateChordAnswer("C/G", "C/2", strict))
	assert.False(ValidateChordAnswer("C/E", "C/2", strict))

	// Labeling required: the bare name is not enough.
	assert.False(ValidateChordAnswer("C", "C/1", strict))
	// Labeling not required: bare name accepted, label still accepted.
	assert.True(ValidateChordAnswer("C", "C/1", lenient))
	assert.True(ValidateChordAnswer("C/1", "C/1", lenient))

	// Wrong inversion number fails either way.
	assert.False(ValidateChordAnswer("C/2", "C/1", strict))
	assert.False(ValidateChordAnswer("C/2", "C/1", lenient))
}

func TestValidateChordAnswerInversionsUnsupported(t *testing.T) {
	assert := assert.New(t)

	none := Settings{SupportsInversions: false}
	// When the level ignores inversions the expected suffix collapses.
	assert.True(ValidateChordAnswer("C", "C/1", none))
	assert.False(ValidateChordAnswer("D", "C/1", none))
}

func TestValidateChordAnswerSlashBassEnharmonic(t *testing.T) {
	assert := assert.New(t)

	// First inversion of A major: bass C#; Db spelling accepted too.
	assert.True(ValidateChordAnswer("A/C#", "A/1", strict))
	assert.True(ValidateChordAnswer("A/Db", "A/1", strict))
}

func TestValidateChordAnswerUnparseableExpected(t *testing.T) {
	assert := assert.New(t)

	// An expected string that does not decompose still matches itself.
	assert.True(ValidateChordAnswer("??", "??", lenient))
	assert.False(ValidateChordAnswer("C", "??", lenient))
}
