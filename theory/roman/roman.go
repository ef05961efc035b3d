// Package roman resolves Roman-numeral tokens ("V7", "ii°", "bVII",
// "V/V", "V/3") to a concrete root pitch class, chord quality and
// inversion within a key. Numeral tables are mode-specific because the
// same degree carries different qualities in major and minor.
package roman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tonedrill/tonedrill/theory/key"
)

// ErrUnknownNumeral indicates a token absent from the numeral tables.
// A progression pattern referencing such a token is a content bug.
var ErrUnknownNumeral = errors.New("unknown roman numeral")

// Resolution is the outcome of resolving one token: everything the
// chord generator needs to voice the chord.
type Resolution struct {
	Root      int    `json:"root"` // pitch class 0-11
	Quality   string `json:"quality"`
	Inversion int    `json:"inversion"`
}

// entry is one row of a numeral table.
type entry struct {
	degree     int    // zero-based scale degree
	quality    string // chord-type key
	accidental int    // semitone offset applied to the scale note
	secondary  bool   // secondary dominant: resolve target, then up a fifth
}

// majorTable covers tokens usable in major keys. The ° and º glyphs are
// folded to "°" before lookup.
var majorTable = map[string]entry{
	"I":    {degree: 0, quality: "major"},
	"ii":   {degree: 1, quality: "minor"},
	"iii":  {degree: 2, quality: "minor"},
	"IV":   {degree: 3, quality: "major"},
	"V":    {degree: 4, quality: "major"},
	"vi":   {degree: 5, quality: "minor"},
	"vii°": {degree: 6, quality: "diminished"},

	"Imaj7":  {degree: 0, quality: "major7"},
	"ii7":    {degree: 1, quality: "minor7"},
	"iii7":   {degree: 2, quality: "minor7"},
	"IVmaj7": {degree: 3, quality: "major7"},
	"V7":     {degree: 4, quality: "dominant7"},
	"vi7":    {degree: 5, quality: "minor7"},
	"viiø7":  {degree: 6, quality: "half-diminished7"},

	// Borrowed chords, flat-side.
	"bII":  {degree: 1, quality: "major", accidental: -1},
	"bIII": {degree: 2, quality: "major", accidental: -1},
	"bVI":  {degree: 5, quality: "major", accidental: -1},
	"bVII": {degree: 6, quality: "major", accidental: -1},

	// Secondary dominants: the dominant of the named target degree.
	"V/ii": {degree: 1, quality: "major", secondary: true},
	"V/iii": {degree: 2, quality: "major", secondary: true},
	"V/IV": {degree: 3, quality: "major", secondary: true},
	"V/V":  {degree: 4, quality: "major", secondary: true},
	"V/vi": {degree: 5, quality: "major", secondary: true},
	"V7/ii": {degree: 1, quality: "dominant7", secondary: true},
	"V7/IV": {degree: 3, quality: "dominant7", secondary: true},
	"V7/V":  {degree: 4, quality: "dominant7", secondary: true},
	"V7/vi": {degree: 5, quality: "dominant7", secondary: true},
}

// minorTable covers tokens usable in minor keys (natural minor scale;
// the raised leading tone is expressed as an accidental on degree 6).
var minorTable = map[string]entry{
	"i":    {degree: 0, quality: "minor"},
	"ii°":  {degree: 1, quality: "diminished"},
	"III":  {degree: 2, quality: "major"},
	"iv":   {degree: 3, quality: "minor"},
	"v":    {degree: 4, quality: "minor"},
	"V":    {degree: 4, quality: "major"}, // harmonic-minor dominant
	"VI":   {degree: 5, quality: "major"},
	"VII":  {degree: 6, quality: "major"},
	"vii°": {degree: 6, quality: "diminished", accidental: 1}, // leading tone

	"i7":   {degree: 0, quality: "minor7"},
	"iiø7": {degree: 1, quality: "half-diminished7"},
	"III7": {degree: 2, quality: "major7"},
	"iv7":  {degree: 3, quality: "minor7"},
	"V7":   {degree: 4, quality: "dominant7"},
	"VI7":  {degree: 5, quality: "major7"},
	"vii°7": {degree: 6, quality: "diminished7", accidental: 1},

	"V/iv": {degree: 3, quality: "major", secondary: true},
	"V/V":  {degree: 4, quality: "major", secondary: true},
	"V7/iv": {degree: 3, quality: "dominant7", secondary: true},
	"V7/V":  {degree: 4, quality: "dominant7", secondary: true},
}

// Resolve maps one token to a root, quality and inversion in the given
// key. A "/3" or "/5" suffix requests first or second inversion by bass
// interval; any other slash form is part of the token itself (secondary
// dominants).
func Resolve(token string, sig key.Signature) (Resolution, error) {
	symbol, inversion := splitInversion(normalizeToken(token))

	table := majorTable
	if sig.Mode == key.ModeMinor {
		table = minorTable
	}
	e, ok := table[symbol]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q in %s", ErrUnknownNumeral, token, sig.Name())
	}

	root := (sig.Degree(e.degree) + e.accidental + 12) % 12
	if e.secondary {
		// The dominant sits a perfect fifth above its target.
		root = (root + 7) % 12
	}

	return Resolution{Root: root, Quality: e.quality, Inversion: inversion}, nil
}

// Known reports whether a token resolves in the given mode. Level
// configs validate their patterns through this before generation.
func Known(token string, mode key.Mode) bool {
	symbol, _ := splitInversion(normalizeToken(token))
	if mode == key.ModeMinor {
		_, ok := minorTable[symbol]
		return ok
	}
	_, ok := majorTable[symbol]
	return ok
}

// normalizeToken trims whitespace and folds accidental glyph variants.
func normalizeToken(token string) string {
	s := strings.TrimSpace(token)
	s = strings.ReplaceAll(s, "º", "°")
	s = strings.ReplaceAll(s, "dim", "°")
	s = strings.ReplaceAll(s, "♭", "b")
	return s
}

// splitInversion strips a trailing bass-interval suffix: "/3" is first
// inversion, "/5" second. Any other suffix stays part of the symbol.
func splitInversion(token string) (string, int) {
	idx := strings.LastIndex(token, "/")
	if idx < 0 {
		return token, 0
	}
	switch token[idx+1:] {
	case "3":
		return token[:idx], 1
	case "5":
		return token[:idx], 2
	case "7":
		return token[:idx], 3
	}
	return token, 0
}
