// Package chord holds the chord-quality catalog and the concrete chord
// value produced by generation. The catalog is immutable process-wide
// data; accessors hand out copies so callers cannot corrupt it.
package chord

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/tonedrill/tonedrill/theory/note"
)

// ErrUnknownType indicates a chord-quality key absent from the catalog.
// A level configuration naming such a key is a content bug; callers
// should treat it as fatal for that configuration.
var ErrUnknownType = errors.New("unknown chord type")

// Type describes a chord quality: the interval set stacked above the
// root, the symbol used in answer strings, and a display name.
type Type struct {
	Key         string `json:"key"`
	Intervals   []int  `json:"intervals"` // semitones from root, ascending, first is 0
	Symbol      string `json:"symbol"`    // answer suffix, "" for major
	DisplayName string `json:"display_name"`
}

// IsAugmented reports whether the quality belongs to the augmented
// family. Augmented triads are symmetric under inversion, so inversion
// requests re-root the chord instead of producing a slash voicing.
func (t Type) IsAugmented() bool {
	return t.Key == "augmented" || t.Key == "augmented7"
}

// Chord is one generated chord problem: a root pitch class, a quality,
// an inversion level and the voiced MIDI pitches. Instances are value
// objects, constructed fresh per problem and immutable afterwards.
type Chord struct {
	Root           int    `json:"root"` // pitch class 0-11
	Type           Type   `json:"type"`
	Inversion      int    `json:"inversion"`
	Pitches        []int  `json:"pitches"` // ascending MIDI notes
	ExpectedAnswer string `json:"expected_answer"`
}

// RootName returns the sharp spelling of the chord root.
func (c Chord) RootName() string {
	return note.Name(c.Root)
}

// Bass returns the lowest sounding pitch.
func (c Chord) Bass() int {
	if len(c.Pitches) == 0 {
		return 0
	}
	return c.Pitches[0]
}

// PitchClasses returns the distinct pitch classes present, ascending.
func (c Chord) PitchClasses() []int {
	seen := make(map[int]bool)
	var classes []int
	for _, p := range c.Pitches {
		pc := note.Class(p)
		if !seen[pc] {
			seen[pc] = true
			classes = append(classes, pc)
		}
	}
	sort.Ints(classes)
	return classes
}

// catalog is the static quality table. Interval sets follow the chord
// templates used for detection-side template matching; lengths run 3
// (triads) through 7 (thirteenths).
var catalog = map[string]Type{
	"major":      {Key: "major", Intervals: []int{0, 4, 7}, Symbol: "", DisplayName: "major"},
	"minor":      {Key: "minor", Intervals: []int{0, 3, 7}, Symbol: "m", DisplayName: "minor"},
	"diminished": {Key: "diminished", Intervals: []int{0, 3, 6}, Symbol: "dim", DisplayName: "diminished"},
	"augmented":  {Key: "augmented", Intervals: []int{0, 4, 8}, Symbol: "aug", DisplayName: "augmented"},
	"sus2":       {Key: "sus2", Intervals: []int{0, 2, 7}, Symbol: "sus2", DisplayName: "suspended 2nd"},
	"sus4":       {Key: "sus4", Intervals: []int{0, 5, 7}, Symbol: "sus4", DisplayName: "suspended 4th"},
	"quartal":    {Key: "quartal", Intervals: []int{0, 5, 10}, Symbol: "q", DisplayName: "quartal"},

	"major7":           {Key: "major7", Intervals: []int{0, 4, 7, 11}, Symbol: "maj7", DisplayName: "major 7th"},
	"minor7":           {Key: "minor7", Intervals: []int{0, 3, 7, 10}, Symbol: "m7", DisplayName: "minor 7th"},
	"dominant7":        {Key: "dominant7", Intervals: []int{0, 4, 7, 10}, Symbol: "7", DisplayName: "dominant 7th"},
	"diminished7":      {Key: "diminished7", Intervals: []int{0, 3, 6, 9}, Symbol: "dim7", DisplayName: "diminished 7th"},
	"half-diminished7": {Key: "half-diminished7", Intervals: []int{0, 3, 6, 10}, Symbol: "m7b5", DisplayName: "half-diminished 7th"},
	"minor-major7":     {Key: "minor-major7", Intervals: []int{0, 3, 7, 11}, Symbol: "mMaj7", DisplayName: "minor-major 7th"},
	"augmented7":       {Key: "augmented7", Intervals: []int{0, 4, 8, 10}, Symbol: "aug7", DisplayName: "augmented 7th"},
	"sixth":            {Key: "sixth", Intervals: []int{0, 4, 7, 9}, Symbol: "6", DisplayName: "major 6th"},
	"minor-sixth":      {Key: "minor-sixth", Intervals: []int{0, 3, 7, 9}, Symbol: "m6", DisplayName: "minor 6th"},
	"add9":             {Key: "add9", Intervals: []int{0, 2, 4, 7}, Symbol: "add9", DisplayName: "added 9th"},

	"major9":    {Key: "major9", Intervals: []int{0, 4, 7, 11, 14}, Symbol: "maj9", DisplayName: "major 9th"},
	"minor9":    {Key: "minor9", Intervals: []int{0, 3, 7, 10, 14}, Symbol: "m9", DisplayName: "minor 9th"},
	"dominant9": {Key: "dominant9", Intervals: []int{0, 4, 7, 10, 14}, Symbol: "9", DisplayName: "dominant 9th"},

	"major11":    {Key: "major11", Intervals: []int{0, 4, 7, 11, 14, 17}, Symbol: "maj11", DisplayName: "major 11th"},
	"minor11":    {Key: "minor11", Intervals: []int{0, 3, 7, 10, 14, 17}, Symbol: "m11", DisplayName: "minor 11th"},
	"dominant11": {Key: "dominant11", Intervals: []int{0, 4, 7, 10, 14, 17}, Symbol: "11", DisplayName: "dominant 11th"},

	"major13":    {Key: "major13", Intervals: []int{0, 4, 7, 11, 14, 17, 21}, Symbol: "maj13", DisplayName: "major 13th"},
	"minor13":    {Key: "minor13", Intervals: []int{0, 3, 7, 10, 14, 17, 21}, Symbol: "m13", DisplayName: "minor 13th"},
	"dominant13": {Key: "dominant13", Intervals: []int{0, 4, 7, 10, 14, 17, 21}, Symbol: "13", DisplayName: "dominant 13th"},
}

// Get looks up a chord type by its quality key. The returned value owns
// its interval slice.
func Get(key string) (Type, error) {
	t, ok := catalog[key]
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, key)
	}
	t.Intervals = slices.Clone(t.Intervals)
	return t, nil
}

// Keys returns all quality keys in the catalog, sorted.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
