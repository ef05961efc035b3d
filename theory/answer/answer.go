// Package answer validates free-text chord answers and transcribed
// pitch sets. Text matching canonicalizes both sides, synthesizes the
// full set of acceptable spellings from the expected chord's structure,
// and accepts enharmonic respellings.
package answer

import (
	"fmt"
	"strings"

	"github.com/tonedrill/tonedrill/theory/chord"
	"github.com/tonedrill/tonedrill/theory/note"
)

// Settings mirror a level's validation block.
type Settings struct {
	SupportsInversions       bool `json:"supports_inversions"`
	RequireInversionLabeling bool `json:"require_inversion_labeling"`
}

// canonicalizer applies the ordered substitution list answers pass
// through after lowercasing: whitespace out, dash variants unified,
// unicode accidentals to ASCII, diminished and half-diminished glyphs
// to their letter forms.
var canonicalizer = strings.NewReplacer(
	" ", "",
	"\t", "",
	"–", "-",
	"—", "-",
	"−", "-",
	"♭", "b",
	"♯", "#",
	"ø7", "m7b5",
	"ø", "m7b5",
	"°", "dim",
	"º", "dim",
)

// Canonicalize reduces an answer string to the canonical comparison
// form. Both the user's answer and every synthesized variant go through
// this exact function.
func Canonicalize(s string) string {
	return canonicalizer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// qualitySynonyms maps each catalog quality to the canonical-form
// suffixes it accepts. The bare "M" major marker is not listed: case
// folding makes it indistinguishable from minor, and the collision
// resolves in favor of minor.
var qualitySynonyms = map[string][]string{
	"major":            {"", "maj", "major"},
	"minor":            {"m", "min", "minor", "-"},
	"diminished":       {"dim", "diminished"},
	"augmented":        {"aug", "augmented", "+"},
	"sus2":             {"sus2"},
	"sus4":             {"sus4", "sus"},
	"quartal":          {"q", "quartal"},
	"major7":           {"maj7", "major7", "ma7"},
	"minor7":           {"m7", "min7", "minor7", "-7"},
	"dominant7":        {"7", "dom7", "dominant7"},
	"diminished7":      {"dim7", "diminished7"},
	"half-diminished7": {"m7b5", "min7b5", "halfdim7", "halfdiminished7"},
	"minor-major7":     {"mmaj7", "minmaj7", "minormajor7"},
	"augmented7":       {"aug7", "augmented7", "+7"},
	"sixth":            {"6", "maj6", "major6"},
	"minor-sixth":      {"m6", "min6", "minor6"},
	"add9":             {"add9"},
	"major9":           {"maj9", "major9"},
	"minor9":           {"m9", "min9", "minor9", "-9"},
	"dominant9":        {"9", "dom9"},
	"major11":          {"maj11", "major11"},
	"minor11":          {"m11", "min11", "minor11"},
	"dominant11":       {"11", "dom11"},
	"major13":          {"maj13", "major13"},
	"minor13":          {"m13", "min13", "minor13"},
	"dominant13":       {"13", "dom13"},
}

// synonymToQuality is the reverse lookup, built once at init.
var synonymToQuality = func() map[string]string {
	rev := make(map[string]string)
	for quality, forms := range qualitySynonyms {
		for _, f := range forms {
			rev[f] = quality
		}
	}
	return rev
}()

// parsed is the structured reading of an expected-answer string.
type parsed struct {
	rootName  string // canonical spelling, e.g. "c#", "eb"
	quality   string // catalog key
	inversion int
}

// parseExpected splits a canonical expected answer into root, quality
// and inversion suffix. Returns false if the string does not decompose,
// in which case validation falls back to direct comparison.
func parseExpected(canonical string) (parsed, bool) {
	var p parsed

	body := canonical
	if idx := strings.LastIndex(body, "/"); idx >= 0 {
		suffix := body[idx+1:]
		switch suffix {
		case "1", "2", "3", "4", "5", "6":
			p.inversion = int(suffix[0] - '0')
			body = body[:idx]
		default:
			return parsed{}, false
		}
	}

	if body == "" || body[0] < 'a' || body[0] > 'g' {
		return parsed{}, false
	}
	rootLen := 1
	if len(body) > 1 && (body[1] == '#' || body[1] == 'b') {
		rootLen = 2
	}
	p.rootName = body[:rootLen]

	quality, ok := synonymToQuality[body[rootLen:]]
	if !ok {
		return parsed{}, false
	}
	p.quality = quality
	return p, true
}

// ordinalForms enumerates the textual inversion markers for level k.
func ordinalForms(k int) []string {
	ordinals := map[int][2]string{
		1: {"first", "1st"},
		2: {"second", "2nd"},
		3: {"third", "3rd"},
		4: {"fourth", "4th"},
	}
	forms := []string{fmt.Sprintf("/%d", k)}
	if o, ok := ordinals[k]; ok {
		forms = append(forms,
			"/"+o[0],
			o[0]+"inversion",
			o[1]+"inversion",
		)
	}
	return forms
}

// rootSpellings returns the canonical spellings of a root name: the
// given one plus its enharmonic twin when the name carries an
// accidental.
func rootSpellings(rootName string) []string {
	spellings := []string{rootName}
	if twin, ok := note.EnharmonicSwap(rootName); ok {
		spellings = append(spellings, Canonicalize(twin))
	}
	return spellings
}

// acceptableAnswers synthesizes every canonical string accepted for the
// expected chord under the given settings.
func acceptableAnswers(p parsed, s Settings) map[string]bool {
	set := make(map[string]bool)

	var bassNames []string
	if p.inversion > 0 {
		if ct, err := chord.Get(p.quality); err == nil && p.inversion < len(ct.Intervals) {
			if rootPC, err := note.ParseClass(p.rootName); err == nil {
				bassPC := note.Class(rootPC + ct.Intervals[p.inversion])
				bassNames = append(bassNames,
					Canonicalize(note.Name(bassPC)),
					Canonicalize(note.FlatName(bassPC)),
				)
			}
		}
	}

	for _, root := range rootSpellings(p.rootName) {
		for _, q := range qualitySynonyms[p.quality] {
			base := root + q

			if p.inversion == 0 || !s.SupportsInversions {
				set[base] = true
				continue
			}
			if !s.RequireInversionLabeling {
				// Root-position-equivalent acceptance.
				set[base] = true
			}
			for _, form := range ordinalForms(p.inversion) {
				set[base+form] = true
			}
			for _, bass := range bassNames {
				set[base+"/"+bass] = true
			}
		}
	}
	return set
}

// ValidateChordAnswer reports whether the user's free-text answer names
// the expected chord. Both strings are canonicalized; the expected
// answer is expanded into its full acceptance set; the user's answer
// also matches if swapping one enharmonic pair spelling anywhere in it
// produces a member.
func ValidateChordAnswer(userText, expectedText string, s Settings) bool {
	user := Canonicalize(userText)
	expected := Canonicalize(expectedText)
	if user == expected {
		return true
	}

	p, ok := parseExpected(expected)
	if !ok {
		// Unstructured expected answer: direct comparison with
		// enharmonic tolerance is all that is possible.
		return matchesWithEnharmonics(user, map[string]bool{expected: true})
	}

	set := acceptableAnswers(p, s)
	if set[user] {
		return true
	}
	return matchesWithEnharmonics(user, set)
}

// matchesWithEnharmonics tries a single sharp/flat respelling of the
// user's answer against the acceptance set.
func matchesWithEnharmonics(user string, set map[string]bool) bool {
	for _, pair := range note.EnharmonicPairs() {
		sharp := Canonicalize(pair[0])
		flat := Canonicalize(pair[1])
		if strings.Contains(user, sharp) && set[strings.Replace(user, sharp, flat, 1)] {
			return true
		}
		if strings.Contains(user, flat) && set[strings.Replace(user, flat, sharp, 1)] {
			return true
		}
	}
	return false
}
