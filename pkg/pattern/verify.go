/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: verify.go
Description: Round-trip checks for inferred patterns. Compiles a rendered pattern as a
fully anchored regular expression and reports the samples it fails to match.
*/

package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
)

// ErrRepeatTooLarge means a run is longer than Go's regexp accepts as a
// repeat count (1000). The pattern itself is still well formed.
var ErrRepeatTooLarge = errors.New("pattern repeat count exceeds regexp limit")

// Compile anchors a rendered pattern and compiles it
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		var syntaxErr *syntax.Error
		if errors.As(err, &syntaxErr) && syntaxErr.Code == syntax.ErrInvalidRepeatSize {
			return nil, fmt.Errorf("failed to compile pattern %q: %w: %w", pattern, ErrRepeatTooLarge, err)
		}
		return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Verify returns the samples that the pattern does not match in full
func Verify(pattern string, samples []string) ([]string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	var misses []string
	for _, s := range samples {
		if !re.MatchString(s) {
			misses = append(misses, s)
		}
	}
	return misses, nil
}
