package answer

import (
	"math"
	"sort"

	"github.com/tonedrill/tonedrill/theory/note"
)

// Options control transcription comparison.
type Options struct {
	// OctaveTolerant compares pitch classes (pitch mod 12) instead of
	// absolute pitches on both sides.
	OctaveTolerant bool `json:"octave_tolerant"`
}

// Result reports a transcription comparison. IsCorrect is strict: it
// holds exactly when the user's multiset equals the expected one (zero
// missing, zero extra). Score is the partial-credit channel.
type Result struct {
	IsCorrect    bool  `json:"is_correct"`
	Score        int   `json:"score"` // 0-100
	CorrectCount int   `json:"correct_count"`
	WrongCount   int   `json:"wrong_count"`
	Missing      []int `json:"missing"` // expected occurrences not played
	Extra        []int `json:"extra"`   // played occurrences not expected
}

// wrongPenalty is the per-note deduction applied on top of raw
// accuracy: each missing or extra note costs 10 points.
const wrongPenalty = 10

// ValidateTranscription compares the user's placed pitches against an
// expected pitch multiset. Repeated pitches are significant: two
// occurrences of the same note must be played twice to match.
func ValidateTranscription(userPitches, expectedPitches []int, opts Options) Result {
	return tally(count(userPitches, opts), count(expectedPitches, opts), len(expectedPitches))
}

// ValidateProgression compares per-chord transcriptions slot by slot:
// order-independent within a chord, position-sensitive across chords.
// Slots beyond the shorter side count entirely as missing or extra.
func ValidateProgression(userChords, expectedChords [][]int, opts Options) Result {
	user := make(map[int]int)
	expected := make(map[int]int)
	totalExpected := 0

	slots := len(expectedChords)
	if len(userChords) > slots {
		slots = len(userChords)
	}
	// Per-slot matching: encode each occurrence with its slot index so
	// the same pitch in a different chord cannot satisfy it.
	for slot := 0; slot < slots; slot++ {
		if slot < len(expectedChords) {
			for pitch, n := range count(expectedChords[slot], opts) {
				expected[slot*1000+pitch] += n
			}
			totalExpected += len(expectedChords[slot])
		}
		if slot < len(userChords) {
			for pitch, n := range count(userChords[slot], opts) {
				user[slot*1000+pitch] += n
			}
		}
	}

	res := tally(user, expected, totalExpected)
	// Strip the slot encoding from the reported pitch lists.
	for i, p := range res.Missing {
		res.Missing[i] = p % 1000
	}
	for i, p := range res.Extra {
		res.Extra[i] = p % 1000
	}
	sort.Ints(res.Missing)
	sort.Ints(res.Extra)
	return res
}

func count(pitches []int, opts Options) map[int]int {
	counts := make(map[int]int, len(pitches))
	for _, p := range pitches {
		if opts.OctaveTolerant {
			p = note.Class(p)
		}
		counts[p]++
	}
	return counts
}

func tally(user, expected map[int]int, totalExpected int) Result {
	var res Result

	for pitch, want := range expected {
		got := user[pitch]
		if got > want {
			got = want
		}
		res.CorrectCount += got
		for i := 0; i < want-got; i++ {
			res.Missing = append(res.Missing, pitch)
		}
	}
	for pitch, got := range user {
		want := expected[pitch]
		for i := 0; i < got-want; i++ {
			res.Extra = append(res.Extra, pitch)
		}
	}
	sort.Ints(res.Missing)
	sort.Ints(res.Extra)

	res.WrongCount = len(res.Extra)
	res.IsCorrect = len(res.Missing) == 0 && len(res.Extra) == 0

	if totalExpected == 0 {
		if res.IsCorrect {
			res.Score = 100
		}
		return res
	}

	accuracy := float64(res.CorrectCount) / float64(totalExpected)
	score := accuracy*100 - float64(wrongPenalty*(res.WrongCount+len(res.Missing)))
	res.Score = int(math.Round(math.Max(0, score)))
	return res
}
