// Package config defines the level configuration the engine consumes.
// Levels are data: allowed roots, qualities, inversions and octaves,
// plus validation and voicing settings. Decoding validates everything
// up front so a misconfigured level fails before any drill is built.
package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tonedrill/tonedrill/theory/chord"
	"github.com/tonedrill/tonedrill/theory/key"
	"github.com/tonedrill/tonedrill/theory/note"
	"github.com/tonedrill/tonedrill/theory/roman"
	"github.com/tonedrill/tonedrill/theory/voicing"
)

// ValidationSettings mirror the level's answer-checking switches.
type ValidationSettings struct {
	SupportsInversions       bool `json:"supports_inversions"`
	RequireInversionLabeling bool `json:"require_inversion_labeling"`
}

// VoicingSettings tune the open-voicing strategy distribution. Zero
// values fall back to the package defaults.
type VoicingSettings struct {
	SpreadWeight  float64 `json:"spread_weight,omitempty"`
	DoubledWeight float64 `json:"doubled_weight,omitempty"`
	MixedWeight   float64 `json:"mixed_weight,omitempty"`
}

// Weights returns the three-way strategy distribution.
func (v *VoicingSettings) Weights() []float64 {
	if v == nil || v.SpreadWeight+v.DoubledWeight+v.MixedWeight <= 0 {
		return voicing.StrategyWeights
	}
	return []float64{v.SpreadWeight, v.DoubledWeight, v.MixedWeight}
}

// LevelConfig selects what a level may generate.
type LevelConfig struct {
	ChordTypes  []string `json:"chord_types"`
	Roots       []string `json:"roots"`
	Inversions  []string `json:"inversions"`   // "root", "first", "second", "third" or digits
	OctaveRange []int    `json:"octave_range"` // candidate octave-base MIDI pitches

	IsOpenVoicing bool             `json:"is_open_voicing,omitempty"`
	Voicing       *VoicingSettings `json:"voicing_settings,omitempty"`

	MinPitch int `json:"min_pitch,omitempty"`
	MaxPitch int `json:"max_pitch,omitempty"`

	// Progression levels set both of these.
	Key     string   `json:"key,omitempty"`
	Pattern []string `json:"pattern,omitempty"`

	Validation ValidationSettings `json:"validation"`
}

// DefaultLevelConfig returns a beginner triad level: all roots, root
// position, middle octaves.
func DefaultLevelConfig() *LevelConfig {
	return &LevelConfig{
		ChordTypes:  []string{"major", "minor"},
		Roots:       []string{"C", "D", "E", "F", "G", "A", "B"},
		Inversions:  []string{"root"},
		OctaveRange: []int{48, 60},
		MinPitch:    voicing.DefaultMinPitch,
		MaxPitch:    voicing.DefaultMaxPitch,
	}
}

// Decode reads and validates a JSON level configuration.
func Decode(r io.Reader) (*LevelConfig, error) {
	var cfg LevelConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode level config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// inversionNames maps the textual inversion levels configs use.
var inversionNames = map[string]int{
	"root": 0, "0": 0,
	"first": 1, "1": 1,
	"second": 2, "2": 2,
	"third": 3, "3": 3,
}

// InversionLevels resolves the config's inversion names to levels.
func (c *LevelConfig) InversionLevels() ([]int, error) {
	levels := make([]int, 0, len(c.Inversions))
	for _, name := range c.Inversions {
		lvl, ok := inversionNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown inversion level %q", name)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// RootClasses resolves the config's root names to pitch classes.
func (c *LevelConfig) RootClasses() ([]int, error) {
	roots := make([]int, 0, len(c.Roots))
	for _, name := range c.Roots {
		pc, err := note.ParseClass(name)
		if err != nil {
			return nil, err
		}
		roots = append(roots, pc)
	}
	return roots, nil
}

// Window returns the allowed MIDI window, applying defaults when the
// config leaves it zero.
func (c *LevelConfig) Window() (minPitch, maxPitch int) {
	minPitch, maxPitch = c.MinPitch, c.MaxPitch
	if minPitch == 0 && maxPitch == 0 {
		minPitch, maxPitch = voicing.DefaultMinPitch, voicing.DefaultMaxPitch
	}
	return minPitch, maxPitch
}

// IsProgression reports whether the level drills progressions.
func (c *LevelConfig) IsProgression() bool {
	return len(c.Pattern) > 0
}

// Validate checks every name the config references against the
// catalogs. Any failure is a content bug in the level, surfaced before
// generation starts.
func (c *LevelConfig) Validate() error {
	if len(c.ChordTypes) == 0 && !c.IsProgression() {
		return fmt.Errorf("level config: no chord types")
	}
	for _, quality := range c.ChordTypes {
		if _, err := chord.Get(quality); err != nil {
			return fmt.Errorf("level config: %w", err)
		}
	}
	if len(c.Roots) == 0 && !c.IsProgression() {
		return fmt.Errorf("level config: no roots")
	}
	if _, err := c.RootClasses(); err != nil {
		return fmt.Errorf("level config: %w", err)
	}
	if len(c.Inversions) == 0 {
		c.Inversions = []string{"root"}
	}
	if _, err := c.InversionLevels(); err != nil {
		return fmt.Errorf("level config: %w", err)
	}
	if len(c.OctaveRange) == 0 {
		c.OctaveRange = []int{note.MiddleC}
	}
	minPitch, maxPitch := c.Window()
	if minPitch >= maxPitch {
		return fmt.Errorf("level config: empty pitch window [%d, %d]", minPitch, maxPitch)
	}

	if c.IsProgression() {
		sig, err := key.Parse(c.Key)
		if err != nil {
			return fmt.Errorf("level config: %w", err)
		}
		for _, token := range c.Pattern {
			if !roman.Known(token, sig.Mode) {
				return fmt.Errorf("level config: %w: %q", roman.ErrUnknownNumeral, token)
			}
		}
	}
	return nil
}
