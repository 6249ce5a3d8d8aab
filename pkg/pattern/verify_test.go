/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: verify_test.go
Description: Tests for pattern compilation and round-trip verification.
*/

package pattern_test

import (
	"strings"
	"testing"

	"github.com/kleascm/runpattern/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAnchorsPattern(t *testing.T) {
	re, err := pattern.Compile(`[A-Z]{2}\d{3}`)
	require.NoError(t, err)

	assert.True(t, re.MatchString("AB123"))
	assert.False(t, re.MatchString("XAB123"))
	assert.False(t, re.MatchString("AB1234"))
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := pattern.Compile(`[A-Z`)
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	misses, err := pattern.Verify(`[A-Z]{2}\d{3,5}`, []string{"AA123", "BA1234", "A12", "AB123456"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A12", "AB123456"}, misses)
}

func TestCompileRepeatTooLarge(t *testing.T) {
	_, err := pattern.Compile(`[A-Z]\d{1001}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, pattern.ErrRepeatTooLarge)

	_, err = pattern.Verify(`[A-Z]\d{1001}`, []string{"A" + strings.Repeat("1", 1001)})
	assert.ErrorIs(t, err, pattern.ErrRepeatTooLarge)

	_, err = pattern.Compile(`[A-Z]\d{1000}`)
	assert.NoError(t, err)
}
