// Package engine is the facade over the theory packages: it turns a
// level configuration into concrete drills (chords or progressions)
// and checks answers against them. The engine holds no state between
// calls beyond its configuration; every drill is an independent value.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tonedrill/tonedrill/engine/config"
	"github.com/tonedrill/tonedrill/logging"
	"github.com/tonedrill/tonedrill/random"
	"github.com/tonedrill/tonedrill/theory/answer"
	"github.com/tonedrill/tonedrill/theory/chord"
	"github.com/tonedrill/tonedrill/theory/key"
	"github.com/tonedrill/tonedrill/theory/note"
	"github.com/tonedrill/tonedrill/theory/roman"
	"github.com/tonedrill/tonedrill/theory/voicing"
)

// maxRepeatAttempts bounds the duplicate-avoidance retry loop. After
// this many identical picks the repeat is accepted; a stale drill beats
// an unbounded loop.
const maxRepeatAttempts = 20

// Drill is one generated chord problem. The ID lets UI and audio
// collaborators correlate the user's answer with the problem.
type Drill struct {
	ID    string      `json:"id"`
	Chord chord.Chord `json:"chord"`
}

// Progression is one generated progression problem.
type Progression struct {
	ID      string        `json:"id"`
	Key     key.Signature `json:"key"`
	Pattern []string      `json:"pattern"`
	Chords  []chord.Chord `json:"chords"`
	// AllPitches is the flattened concatenation of every chord's
	// pitches. It is a multiset: repeats across chords are significant.
	AllPitches []int `json:"all_pitches"`
}

// Generator builds drills from a validated level configuration.
type Generator struct {
	cfg *config.LevelConfig
	src random.Source
	log logging.Logger

	roots      []int
	inversions []int
}

// New creates a generator with an ambient random source.
func New(cfg *config.LevelConfig) (*Generator, error) {
	return NewWithSource(cfg, random.New())
}

// NewWithSource creates a generator with an explicit random source,
// the hook deterministic tests use.
func NewWithSource(cfg *config.LevelConfig, src random.Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	roots, err := cfg.RootClasses()
	if err != nil {
		return nil, err
	}
	inversions, err := cfg.InversionLevels()
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:        cfg,
		src:        src,
		log:        logging.WithFields(logging.Fields{"component": "engine"}),
		roots:      roots,
		inversions: inversions,
	}, nil
}

// NextChord generates a fresh chord drill. When prev is non-nil the
// generator retries picks that would repeat prev's (root, quality,
// inversion) tuple, giving up after maxRepeatAttempts.
func (g *Generator) NextChord(prev *Drill) (*Drill, error) {
	if len(g.roots) == 0 || len(g.cfg.ChordTypes) == 0 {
		return nil, fmt.Errorf("level config has no chord pool")
	}

	var c chord.Chord
	var err error

	for attempt := 0; attempt < maxRepeatAttempts; attempt++ {
		c, err = g.pickChord()
		if err != nil {
			return nil, err
		}
		if prev == nil || !sameProblem(c, prev.Chord) {
			break
		}
		g.log.Debug("repeat pick, retrying", logging.Fields{
			"attempt": attempt, "answer": c.ExpectedAnswer,
		})
	}

	return &Drill{ID: uuid.NewString(), Chord: c}, nil
}

// CheckAnswer validates a free-text answer against a drill under the
// level's validation settings.
func (g *Generator) CheckAnswer(d *Drill, userText string) bool {
	return answer.ValidateChordAnswer(userText, d.Chord.ExpectedAnswer, answer.Settings{
		SupportsInversions:       g.cfg.Validation.SupportsInversions,
		RequireInversionLabeling: g.cfg.Validation.RequireInversionLabeling,
	})
}

// NextProgression generates a progression drill from the level's key
// and pattern. Every token resolves independently; the chords share one
// octave base so the progression sits in a coherent register.
func (g *Generator) NextProgression() (*Progression, error) {
	if !g.cfg.IsProgression() {
		return nil, fmt.Errorf("level config has no progression pattern")
	}
	sig, err := key.Parse(g.cfg.Key)
	if err != nil {
		return nil, err
	}
	octaveBase := g.cfg.OctaveRange[g.src.IntN(len(g.cfg.OctaveRange))]

	p := &Progression{
		ID:      uuid.NewString(),
		Key:     sig,
		Pattern: append([]string(nil), g.cfg.Pattern...),
	}
	for _, token := range g.cfg.Pattern {
		res, err := roman.Resolve(token, sig)
		if err != nil {
			return nil, err
		}
		c, err := g.buildChord(res.Root, res.Quality, res.Inversion, octaveBase)
		if err != nil {
			return nil, err
		}
		p.Chords = append(p.Chords, c)
		p.AllPitches = append(p.AllPitches, c.Pitches...)
	}

	g.log.Debug("generated progression", logging.Fields{
		"key": sig.Name(), "chords": len(p.Chords), "pitches": len(p.AllPitches),
	})
	return p, nil
}

// PitchesPerChord returns each chord's pitch list, the unit the
// position-sensitive transcription comparison works on.
func (p *Progression) PitchesPerChord() [][]int {
	per := make([][]int, len(p.Chords))
	for i, c := range p.Chords {
		per[i] = append([]int(nil), c.Pitches...)
	}
	return per
}

// Validate compares a per-chord transcription against the progression.
func (p *Progression) Validate(userChords [][]int, opts answer.Options) answer.Result {
	return answer.ValidateProgression(userChords, p.PitchesPerChord(), opts)
}

// ValidateFlat compares an unordered transcription against the full
// pitch multiset, ignoring which chord each note was placed under.
func (p *Progression) ValidateFlat(userPitches []int, opts answer.Options) answer.Result {
	return answer.ValidateTranscription(userPitches, p.AllPitches, opts)
}

// pickChord draws one (root, quality, inversion, octave) tuple and
// voices it.
func (g *Generator) pickChord() (chord.Chord, error) {
	root := g.roots[g.src.IntN(len(g.roots))]
	quality := g.cfg.ChordTypes[g.src.IntN(len(g.cfg.ChordTypes))]
	inversion := g.inversions[g.src.IntN(len(g.inversions))]
	octaveBase := g.cfg.OctaveRange[g.src.IntN(len(g.cfg.OctaveRange))]
	return g.buildChord(root, quality, inversion, octaveBase)
}

// buildChord voices one chord and synthesizes its expected answer.
func (g *Generator) buildChord(root int, quality string, inversion int, octaveBase int) (chord.Chord, error) {
	ct, err := chord.Get(quality)
	if err != nil {
		return chord.Chord{}, err
	}

	// Augmented chords are symmetric under inversion: the "inverted"
	// chord is the augmented chord rooted a major third up, not a
	// slash voicing.
	if ct.IsAugmented() && inversion > 0 {
		root = note.Class(root + 4*inversion)
		inversion = 0
	}

	var pitches []int
	if g.cfg.IsOpenVoicing {
		pitches = voicing.OpenWithWeights(root, ct.Intervals, octaveBase, g.src, g.cfg.Voicing.Weights())
	} else {
		pitches = voicing.Invert(voicing.Close(root, ct.Intervals, octaveBase), inversion)
	}
	minPitch, maxPitch := g.cfg.Window()
	pitches = voicing.NormalizeRange(pitches, minPitch, maxPitch)

	expected := note.Name(root) + ct.Symbol
	if inversion > 0 && g.cfg.Validation.SupportsInversions && g.cfg.Validation.RequireInversionLabeling {
		expected = fmt.Sprintf("%s/%d", expected, inversion)
	}

	c := chord.Chord{
		Root:           root,
		Type:           ct,
		Inversion:      inversion,
		Pitches:        pitches,
		ExpectedAnswer: expected,
	}
	g.log.Debug("generated chord", logging.Fields{
		"answer": expected, "pitches": pitches,
	})
	return c, nil
}

func sameProblem(a, b chord.Chord) bool {
	return a.Root == b.Root && a.Type.Key == b.Type.Key && a.Inversion == b.Inversion
}
