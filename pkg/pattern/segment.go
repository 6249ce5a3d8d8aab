/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: segment.go
Description: Segmenter splitting one sample into alternating runs of uppercase letters
and digits. Validates the sample and reports the first offending character.
*/

package pattern

import "unicode/utf8"

// Segment converts a sample into its run sequence. Every run is exact-length.
//
// The first character must be an uppercase ASCII letter. Lowercase letters are
// rejected anywhere with ErrInvalidCase, other characters with ErrInvalidCharacter
// (or ErrInvalidFormat when they appear first).
func Segment(sample string) (Sequence, error) {
	return segment(sample, -1)
}

func segment(sample string, index int) (Sequence, error) {
	if sample == "" {
		return Sequence{}, &SampleError{Sample: sample, Index: index, Err: ErrEmptyInput}
	}

	first, _ := utf8.DecodeRuneInString(sample)
	if !isASCIILetter(first) {
		return Sequence{}, &SampleError{Sample: sample, Index: index, Char: first, Err: ErrInvalidFormat}
	}

	var runs []Run
	for pos, r := range sample {
		kind, err := classify(r)
		if err != nil {
			return Sequence{}, &SampleError{Sample: sample, Index: index, Pos: pos, Char: r, Err: err}
		}
		if last := len(runs) - 1; last >= 0 && runs[last].Kind == kind {
			runs[last].Min++
			continue
		}
		runs = append(runs, NewRun(kind, 1))
	}
	return Sequence{runs: runs}, nil
}

// classify maps a character to its run kind
func classify(r rune) (Kind, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return KindNone, ErrInvalidCase
	case KindLetter.Matches(r):
		return KindLetter, nil
	case KindDigit.Matches(r):
		return KindDigit, nil
	default:
		return KindNone, ErrInvalidCharacter
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
