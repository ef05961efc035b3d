// Package key provides the key-signature table: the seven diatonic
// pitch classes of every major and natural-minor key.
package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tonedrill/tonedrill/theory/note"
)

// ErrUnknownKey indicates a key label that does not name a supported
// key signature.
var ErrUnknownKey = errors.New("unknown key")

// Mode distinguishes major from minor keys.
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

func (m Mode) String() string {
	if m == ModeMinor {
		return "minor"
	}
	return "major"
}

// majorSteps and minorSteps are the diatonic scale shapes in semitones
// above the tonic. Minor is the natural minor scale; the resolver
// raises the leading tone where a numeral calls for it.
var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
var minorSteps = [7]int{0, 2, 3, 5, 7, 8, 10}

// Signature is one key: a tonic pitch class, a mode and the seven
// diatonic scale notes as pitch classes.
type Signature struct {
	Tonic      int    `json:"tonic"` // pitch class 0-11
	Mode       Mode   `json:"mode"`
	ScaleNotes [7]int `json:"scale_notes"`
}

// Get builds the signature for a tonic name and mode. The tonic accepts
// any spelling ParseClass does.
func Get(tonic string, mode Mode) (Signature, error) {
	pc, err := note.ParseClass(tonic)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %q", ErrUnknownKey, tonic)
	}
	return build(pc, mode), nil
}

// Parse reads a key label: "C", "F#", "Eb minor", "f# min", "Am".
// A bare capitalizable note name is major; minor needs an explicit
// marker ("m", "min", "minor") after the tonic.
func Parse(label string) (Signature, error) {
	s := strings.TrimSpace(label)
	if s == "" {
		return Signature{}, fmt.Errorf("%w: empty label", ErrUnknownKey)
	}

	mode := ModeMajor
	lower := strings.ToLower(s)
	for _, suffix := range []string{" minor", " min", "minor", "min"} {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			s = s[:len(s)-len(suffix)]
			mode = ModeMinor
			break
		}
	}
	if mode == ModeMajor {
		for _, suffix := range []string{" major", " maj", "major", "maj"} {
			if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
				s = s[:len(s)-len(suffix)]
				break
			}
		}
	}
	// Trailing "m" shorthand: "Am", "F#m".
	if mode == ModeMajor && len(s) > 1 && s[len(s)-1] == 'm' {
		s = s[:len(s)-1]
		mode = ModeMinor
	}

	return Get(strings.TrimSpace(s), mode)
}

// Degree returns the pitch class of a zero-based scale degree.
func (s Signature) Degree(d int) int {
	d %= 7
	if d < 0 {
		d += 7
	}
	return s.ScaleNotes[d]
}

// Name renders the key as tonic plus mode, e.g. "C major".
func (s Signature) Name() string {
	return fmt.Sprintf("%s %s", note.Name(s.Tonic), s.Mode)
}

// Relative returns the relative key: the minor a minor third below a
// major tonic, or the major a minor third above a minor tonic.
func (s Signature) Relative() Signature {
	if s.Mode == ModeMajor {
		return build(s.Tonic+9, ModeMinor)
	}
	return build(s.Tonic+3, ModeMajor)
}

// Parallel returns the same-tonic key of the opposite mode.
func (s Signature) Parallel() Signature {
	if s.Mode == ModeMajor {
		return build(s.Tonic, ModeMinor)
	}
	return build(s.Tonic, ModeMajor)
}

func build(tonic int, mode Mode) Signature {
	tonic = ((tonic % 12) + 12) % 12
	steps := majorSteps
	if mode == ModeMinor {
		steps = minorSteps
	}
	sig := Signature{Tonic: tonic, Mode: mode}
	for i, step := range steps {
		sig.ScaleNotes[i] = (tonic + step) % 12
	}
	return sig
}
