package generation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStyle = errors.New("invalid style configuration")

type SentenceComplexity string

const (
	ComplexityLow    SentenceComplexity = "low"
	ComplexityMedium SentenceComplexity = "medium"
	ComplexityHigh   SentenceComplexity = "high"
)

type LexicalDensity string

const (
	DensityNounVerb LexicalDensity = "high-noun-verb"
	DensityBalanced LexicalDensity = "balanced"
	DensityAdjAdv   LexicalDensity = "high-adj-adv"
)

type PunctuationRhythm string

const (
	RhythmLowComma    PunctuationRhythm = "low-comma"
	RhythmMediumComma PunctuationRhythm = "medium-comma"
	RhythmHighComma   PunctuationRhythm = "high-comma"
)

type FigurativeFrequency string

const (
	FigurativeLow    FigurativeFrequency = "low"
	FigurativeMedium FigurativeFrequency = "medium"
	FigurativeHigh   FigurativeFrequency = "high"
)

// StyleConfig tunes GenerateText.
type StyleConfig struct {
	SentenceComplexity  SentenceComplexity  `yaml:"sentence_complexity" json:"sentenceComplexity"`
	LexicalDensity      LexicalDensity      `yaml:"lexical_density" json:"lexicalDensity"`
	PunctuationRhythm   PunctuationRhythm   `yaml:"punctuation_rhythm" json:"punctuationRhythm"`
	FigurativeFrequency FigurativeFrequency `yaml:"figurative_frequency" json:"figurativeFrequency"`
	Tone                string              `yaml:"tone" json:"tone"`
}

var (
	complexities = []SentenceComplexity{ComplexityLow, ComplexityMedium, ComplexityHigh}
	densities    = []LexicalDensity{DensityNounVerb, DensityBalanced, DensityAdjAdv}
	rhythms      = []PunctuationRhythm{RhythmLowComma, RhythmMediumComma, RhythmHighComma}
	frequencies  = []FigurativeFrequency{FigurativeLow, FigurativeMedium, FigurativeHigh}
)

var complexityLabels = map[SentenceComplexity]string{
	ComplexityLow:    "Low (Short, Direct)",
	ComplexityMedium: "Medium (Varied)",
	ComplexityHigh:   "High (Long, Complex)",
}

var densityLabels = map[LexicalDensity]string{
	DensityNounVerb: "Nouns/Verbs (Concise)",
	DensityBalanced: "Balanced",
	DensityAdjAdv:   "Adjectives/Adverbs (Descriptive)",
}

var rhythmLabels = map[PunctuationRhythm]string{
	RhythmLowComma:    "Low (Minimal)",
	RhythmMediumComma: "Medium (Standard)",
	RhythmHighComma:   "High (Complex)",
}

var frequencyLabels = map[FigurativeFrequency]string{
	FigurativeLow:    "Low (Subtle)",
	FigurativeMedium: "Medium",
	FigurativeHigh:   "High (Elaborate)",
}

func (c SentenceComplexity) Label() string  { return complexityLabels[c] }
func (d LexicalDensity) Label() string      { return densityLabels[d] }
func (r PunctuationRhythm) Label() string   { return rhythmLabels[r] }
func (f FigurativeFrequency) Label() string { return frequencyLabels[f] }

func (c SentenceComplexity) Next() SentenceComplexity   { return next(complexities, c) }
func (d LexicalDensity) Next() LexicalDensity           { return next(densities, d) }
func (r PunctuationRhythm) Next() PunctuationRhythm     { return next(rhythms, r) }
func (f FigurativeFrequency) Next() FigurativeFrequency { return next(frequencies, f) }

func next[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// Validate checks every enumerated field.
func (s StyleConfig) Validate() error {
	switch {
	case !contains(complexities, s.SentenceComplexity):
		return fmt.Errorf("%w: sentence complexity %q", ErrInvalidStyle, s.SentenceComplexity)
	case !contains(densities, s.LexicalDensity):
		return fmt.Errorf("%w: lexical density %q", ErrInvalidStyle, s.LexicalDensity)
	case !contains(rhythms, s.PunctuationRhythm):
		return fmt.Errorf("%w: punctuation rhythm %q", ErrInvalidStyle, s.PunctuationRhythm)
	case !contains(frequencies, s.FigurativeFrequency):
		return fmt.Errorf("%w: figurative frequency %q", ErrInvalidStyle, s.FigurativeFrequency)
	}
	return nil
}

// Describe renders the configuration as instruction text.
func (s StyleConfig) Describe() string {
	tone := strings.TrimSpace(s.Tone)
	if tone == "" {
		tone = "Neutral"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- Sentence complexity: %s. %s\n", s.SentenceComplexity, complexityGuide[s.SentenceComplexity])
	fmt.Fprintf(&b, "- Lexical density: %s. %s\n", s.LexicalDensity, densityGuide[s.LexicalDensity])
	fmt.Fprintf(&b, "- Punctuation rhythm: %s. %s\n", s.PunctuationRhythm, rhythmGuide[s.PunctuationRhythm])
	fmt.Fprintf(&b, "- Figurative language: %s. %s\n", s.FigurativeFrequency, frequencyGuide[s.FigurativeFrequency])
	fmt.Fprintf(&b, "- Tone: %s.", tone)
	return b.String()
}

var complexityGuide = map[SentenceComplexity]string{
	ComplexityLow:    "Use short, direct, mostly simple sentences.",
	ComplexityMedium: "Vary sentence length and structure.",
	ComplexityHigh:   "Favor long sentences with subordinate clauses.",
}

var densityGuide = map[LexicalDensity]string{
	DensityNounVerb: "Lean on concrete nouns and strong verbs; keep modifiers rare.",
	DensityBalanced: "Balance nouns and verbs with adjectives and adverbs.",
	DensityAdjAdv:   "Use rich, descriptive adjectives and adverbs.",
}

var rhythmGuide = map[PunctuationRhythm]string{
	RhythmLowComma:    "Use commas sparingly.",
	RhythmMediumComma: "Use standard punctuation.",
	RhythmHighComma:   "Use frequent commas, semicolons and dashes to build cadence.",
}

var frequencyGuide = map[FigurativeFrequency]string{
	FigurativeLow:    "Keep figurative language subtle and rare.",
	FigurativeMedium: "Use figurative language occasionally.",
	FigurativeHigh:   "Use elaborate, frequent metaphor and imagery.",
}

// Preset is a named style applied wholesale.
type Preset struct {
	Name   string      `yaml:"name"`
	Config StyleConfig `yaml:"config"`
}

// Presets are the built-in styles.
var Presets = []Preset{
	{
		Name: "Hemingway",
		Config: StyleConfig{
			SentenceComplexity:  ComplexityLow,
			LexicalDensity:      DensityNounVerb,
			PunctuationRhythm:   RhythmLowComma,
			FigurativeFrequency: FigurativeLow,
			Tone:                "Direct, concise, objective, detached",
		},
	},
	{
		Name: "Murakami",
		Config: StyleConfig{
			SentenceComplexity:  ComplexityHigh,
			LexicalDensity:      DensityBalanced,
			PunctuationRhythm:   RhythmMediumComma,
			FigurativeFrequency: FigurativeHigh,
			Tone:                "Surreal, melancholic, contemplative, conversational",
		},
	},
	{
		Name: "Marquez",
		Config: StyleConfig{
			SentenceComplexity:  ComplexityHigh,
			LexicalDensity:      DensityAdjAdv,
			PunctuationRhythm:   RhythmHighComma,
			FigurativeFrequency: FigurativeHigh,
			Tone:                "Magical realism, epic, multi-generational, sensory",
		},
	},
}

// DefaultStyle is the configuration before any preset is chosen.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		SentenceComplexity:  ComplexityMedium,
		LexicalDensity:      DensityBalanced,
		PunctuationRhythm:   RhythmMediumComma,
		FigurativeFrequency: FigurativeMedium,
		Tone:                "Neutral",
	}
}
