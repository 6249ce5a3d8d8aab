/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for pattern inference. Sentinel errors identify the
failure kind, SampleError and ConflictError carry the offending sample or position.
*/

package pattern

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInputSet    = errors.New("input set can't be empty")
	ErrEmptyInput       = errors.New("input set can't contain empty strings")
	ErrInvalidFormat    = errors.New("first char must be a letter")
	ErrInvalidCase      = errors.New("input set contains lowercase char")
	ErrInvalidCharacter = errors.New("input set contains invalid char")
	ErrFormatConflict   = errors.New("input set contains invalid format entry")
)

// SampleError reports why a single sample could not be segmented
type SampleError struct {
	Sample string // offending sample
	Index  int    // position of the sample in the input, -1 when unknown
	Pos    int    // byte offset of the offending character
	Char   rune   // offending character, zero for empty samples
	Err    error  // one of the sentinel errors
}

func (e *SampleError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidCase), errors.Is(e.Err, ErrInvalidCharacter):
		return fmt.Sprintf("input set contains invalid char: %c (sample %q, offset %d)", e.Char, e.Sample, e.Pos)
	case errors.Is(e.Err, ErrEmptyInput):
		return e.Err.Error()
	default:
		return fmt.Sprintf("%v (sample %q)", e.Err, e.Sample)
	}
}

func (e *SampleError) Unwrap() error { return e.Err }

// ConflictError reports two samples disagreeing on the kind of a run
type ConflictError struct {
	Position int
	Left     Kind
	Right    Kind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: run %d is both %s and %s", ErrFormatConflict, e.Position, e.Left, e.Right)
}

func (e *ConflictError) Unwrap() error { return ErrFormatConflict }
