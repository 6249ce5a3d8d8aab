/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Grammar interface and RunGrammar implementation. Generates and mutates
sample strings that conform to an inferred run sequence, for demos and round-trip checks.
*/

package grammar

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"

	"github.com/kleascm/runpattern/pkg/pattern"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Grammar defines the interface for sample generation and mutation.
type Grammar interface {
	// Generate returns a new sample matching the grammar.
	Generate() ([]byte, error)
	// Mutate takes a matching sample and returns another matching sample.
	Mutate(input []byte) ([]byte, error)
	// Name returns the name of the grammar.
	Name() string
}

// RunGrammar produces samples for a run sequence.
// Optional runs always form a suffix of an inferred sequence, so a generated
// sample keeps a prefix of the optional runs and drops the rest.
type RunGrammar struct {
	seq     pattern.Sequence
	pattern string
	re      *regexp.Regexp // nil when the pattern exceeds the regexp repeat limit
	rng     *rand.Rand
}

// NewRunGrammar creates a RunGrammar seeded for reproducible output.
func NewRunGrammar(seq pattern.Sequence, seed int64) (*RunGrammar, error) {
	if seq.Len() == 0 {
		return nil, fmt.Errorf("cannot generate samples for an empty sequence")
	}
	g := &RunGrammar{
		seq:     seq,
		pattern: pattern.Render(seq),
		rng:     rand.New(rand.NewSource(seed)),
	}
	re, err := pattern.Compile(g.pattern)
	switch {
	case errors.Is(err, pattern.ErrRepeatTooLarge):
		// Matches falls back to checking runs directly
	case err != nil:
		return nil, err
	default:
		g.re = re
	}
	return g, nil
}

// Generate returns a random sample matching the sequence.
func (g *RunGrammar) Generate() ([]byte, error) {
	cut := g.seq.Len()
	for i := 0; i < g.seq.Len(); i++ {
		if g.seq.At(i).Optional() {
			// keep between 0 and all of the optional suffix
			cut = i + g.rng.Intn(g.seq.Len()-i+1)
			break
		}
	}

	var out []byte
	for i := 0; i < cut; i++ {
		run := g.seq.At(i)
		lo := run.Min
		if lo == 0 {
			lo = 1
		}
		n := lo + g.rng.Intn(run.MaxLength()-lo+1)
		for j := 0; j < n; j++ {
			out = append(out, g.pick(run.Kind))
		}
	}
	return out, nil
}

// GenerateN returns n samples as strings.
func (g *RunGrammar) GenerateN(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count must not be negative: %d", n)
	}
	samples := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := g.Generate()
		if err != nil {
			return nil, err
		}
		samples = append(samples, string(s))
	}
	return samples, nil
}

// Mutate replaces one character with another of the same class.
// Input that does not match the sequence is replaced with a fresh sample.
func (g *RunGrammar) Mutate(input []byte) ([]byte, error) {
	if len(input) == 0 || !g.Matches(input) {
		return g.Generate()
	}

	out := make([]byte, len(input))
	copy(out, input)
	i := g.rng.Intn(len(out))
	if pattern.KindDigit.Matches(rune(out[i])) {
		out[i] = g.pick(pattern.KindDigit)
	} else {
		out[i] = g.pick(pattern.KindLetter)
	}
	return out, nil
}

// Matches reports whether input fully conforms to the sequence.
func (g *RunGrammar) Matches(input []byte) bool {
	if g.re != nil {
		return g.re.Match(input)
	}
	return g.conforms(string(input))
}

// conforms checks input run by run, for sequences the regexp engine rejects.
func (g *RunGrammar) conforms(input string) bool {
	seq, err := pattern.Segment(input)
	if err != nil || seq.Len() > g.seq.Len() {
		return false
	}
	for i := 0; i < g.seq.Len(); i++ {
		want := g.seq.At(i)
		if i >= seq.Len() {
			if !want.Optional() {
				return false
			}
			continue
		}
		got := seq.At(i)
		if got.Kind != want.Kind || got.Min < want.Min || got.Min > want.MaxLength() {
			return false
		}
	}
	return true
}

// Name returns the name of the grammar.
func (g *RunGrammar) Name() string {
	return "RunGrammar"
}

// Pattern returns the rendered pattern the grammar generates for.
func (g *RunGrammar) Pattern() string {
	return g.pattern
}

func (g *RunGrammar) pick(kind pattern.Kind) byte {
	if kind == pattern.KindDigit {
		return digits[g.rng.Intn(len(digits))]
	}
	return letters[g.rng.Intn(len(letters))]
}
