/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar_test.go
Description: Tests for RunGrammar sample generation and mutation.
*/

package grammar_test

import (
	"strings"
	"testing"

	"github.com/kleascm/runpattern/pkg/grammar"
	"github.com/kleascm/runpattern/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inferred(t *testing.T, samples ...string) pattern.Sequence {
	t.Helper()
	seq, err := pattern.Infer(samples)
	require.NoError(t, err)
	return seq
}

func TestRunGrammarCreation(t *testing.T) {
	g, err := grammar.NewRunGrammar(inferred(t, "AB123"), 1)
	require.NoError(t, err)
	assert.Equal(t, "RunGrammar", g.Name())
	assert.Equal(t, `[A-Z]{2}\d{3}`, g.Pattern())

	var _ grammar.Grammar = g

	_, err = grammar.NewRunGrammar(pattern.Sequence{}, 1)
	assert.Error(t, err)
}

func TestRunGrammarGenerateMatches(t *testing.T) {
	seq := inferred(t, "AA123", "BA1234HHHHHHHHHT", "AB12345FF674A")
	g, err := grammar.NewRunGrammar(seq, 3)
	require.NoError(t, err)

	samples, err := g.GenerateN(200)
	require.NoError(t, err)
	require.Len(t, samples, 200)

	misses, err := pattern.Verify(g.Pattern(), samples)
	require.NoError(t, err)
	assert.Empty(t, misses)

	for _, s := range samples {
		_, err := pattern.Segment(s)
		assert.NoError(t, err, "generated sample %q is not valid input", s)
	}
}

func TestRunGrammarCoversOptionalSuffix(t *testing.T) {
	g, err := grammar.NewRunGrammar(inferred(t, "A", "B4F4R"), 11)
	require.NoError(t, err)

	samples, err := g.GenerateN(300)
	require.NoError(t, err)

	lengths := map[int]bool{}
	for _, s := range samples {
		lengths[len(s)] = true
	}
	assert.True(t, lengths[1], "no sample dropped the whole optional suffix")
	assert.True(t, lengths[5], "no sample kept the whole optional suffix")
}

func TestRunGrammarDeterministic(t *testing.T) {
	seq := inferred(t, "AB12", "ABC1234")

	g1, err := grammar.NewRunGrammar(seq, 99)
	require.NoError(t, err)
	g2, err := grammar.NewRunGrammar(seq, 99)
	require.NoError(t, err)

	a, err := g1.GenerateN(20)
	require.NoError(t, err)
	b, err := g2.GenerateN(20)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunGrammarMutate(t *testing.T) {
	g, err := grammar.NewRunGrammar(inferred(t, "AB123ZZ", "BB742TG"), 5)
	require.NoError(t, err)

	out, err := g.Mutate([]byte("AB123ZZ"))
	require.NoError(t, err)
	assert.Len(t, out, 7)

	misses, err := pattern.Verify(g.Pattern(), []string{string(out)})
	require.NoError(t, err)
	assert.Empty(t, misses)

	// input outside the grammar is replaced by a generated sample
	out, err = g.Mutate([]byte("not a plate"))
	require.NoError(t, err)
	misses, err = pattern.Verify(g.Pattern(), []string{string(out)})
	require.NoError(t, err)
	assert.Empty(t, misses)
}

func TestRunGrammarGenerateNNegative(t *testing.T) {
	g, err := grammar.NewRunGrammar(inferred(t, "AB12"), 1)
	require.NoError(t, err)

	samples, err := g.GenerateN(-1)
	assert.Error(t, err)
	assert.Nil(t, samples)

	samples, err = g.GenerateN(0)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestRunGrammarMatches(t *testing.T) {
	g, err := grammar.NewRunGrammar(inferred(t, "A", "B4F4R"), 1)
	require.NoError(t, err)

	assert.True(t, g.Matches([]byte("A")))
	assert.True(t, g.Matches([]byte("Q1Z2X")))
	assert.False(t, g.Matches([]byte("A12")))
	assert.False(t, g.Matches([]byte("1A")))
}

func TestRunGrammarBeyondRepeatLimit(t *testing.T) {
	long := "A" + strings.Repeat("1", 1001)
	g, err := grammar.NewRunGrammar(inferred(t, long, "B"), 3)
	require.NoError(t, err)
	assert.Equal(t, `[A-Z]\d{0,1001}`, g.Pattern())

	assert.True(t, g.Matches([]byte(long)))
	assert.True(t, g.Matches([]byte("Z")))
	assert.False(t, g.Matches([]byte("A"+strings.Repeat("1", 1002))))
	assert.False(t, g.Matches([]byte("AB")))

	out, err := g.Mutate([]byte(long))
	require.NoError(t, err)
	assert.Len(t, out, len(long))
	assert.True(t, g.Matches(out))

	out, err = g.Mutate([]byte("not a plate"))
	require.NoError(t, err)
	assert.True(t, g.Matches(out))
}
