package note

import (
	"errors"
	"fmt"
	"strings"
)

// MiddleC is MIDI note 60 (C4). Octave bases in level configs are
// expressed relative to this convention.
const MiddleC = 60

// ErrUnknownNote indicates a note name that does not parse to a pitch
// class. It is a configuration error, not a runtime condition.
var ErrUnknownNote = errors.New("unknown note name")

// sharpNames and flatNames index the two standard spellings of each
// pitch class (0=C, 1=C#, ..., 11=B).
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// letterClasses maps natural note letters to pitch classes.
var letterClasses = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// enharmonicPairs lists the sharp/flat spellings that denote the same
// pitch class. The answer validator swaps through this table.
var enharmonicPairs = [5][2]string{
	{"C#", "Db"},
	{"D#", "Eb"},
	{"F#", "Gb"},
	{"G#", "Ab"},
	{"A#", "Bb"},
}

// Name returns the sharp spelling of a pitch class (e.g. 1 -> "C#").
func Name(pitchClass int) string {
	return sharpNames[normalize(pitchClass)]
}

// FlatName returns the flat spelling of a pitch class (e.g. 1 -> "Db").
func FlatName(pitchClass int) string {
	return flatNames[normalize(pitchClass)]
}

// Class reduces a MIDI pitch to its pitch class (pitch mod 12).
func Class(pitch int) int {
	return normalize(pitch)
}

// NameWithOctave renders a MIDI pitch with its scientific octave
// number, e.g. 60 -> "C4".
func NameWithOctave(pitch int) string {
	return fmt.Sprintf("%s%d", sharpNames[normalize(pitch)], pitch/12-1)
}

// ParseClass parses a note name into a pitch class. Accepts upper or
// lower case letters, ASCII and unicode accidentals ("C#", "db", "E♭"),
// and ignores surrounding whitespace.
func ParseClass(name string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "♯", "#")
	s = strings.ReplaceAll(s, "♭", "b")
	if s == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownNote)
	}
	pc, ok := letterClasses[s[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	for _, accidental := range s[1:] {
		switch accidental {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
		}
	}
	return normalize(pc), nil
}

// EnharmonicSwap returns the alternate spelling of an accidental note
// name ("C#" -> "Db", "Db" -> "C#"). Natural names have no swap.
func EnharmonicSwap(name string) (string, bool) {
	for _, pair := range enharmonicPairs {
		if strings.EqualFold(name, pair[0]) {
			return pair[1], true
		}
		if strings.EqualFold(name, pair[1]) {
			return pair[0], true
		}
	}
	return "", false
}

// EnharmonicPairs returns a copy of the sharp/flat spelling table.
func EnharmonicPairs() [][2]string {
	pairs := make([][2]string, len(enharmonicPairs))
	copy(pairs, enharmonicPairs[:])
	return pairs
}

func normalize(pc int) int {
	pc %= 12
	if pc < 0 {
		pc += 12
	}
	return pc
}
