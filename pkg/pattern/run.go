/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run.go
Description: A Run is one generalized position of a pattern: a character class with
a minimum and optional maximum observed length. Provides run combination and rendering.
*/

package pattern

import (
	"fmt"
	"strconv"
)

// Run is a span of a single character class with its observed length range.
// Max is set only when it is strictly greater than Min.
type Run struct {
	Kind Kind `json:"kind" yaml:"kind"`
	Min  int  `json:"min" yaml:"min"`
	Max  *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// noneRun pads the shorter sequence during alignment
var noneRun = Run{Kind: KindNone}

// NewRun returns an exact-length run
func NewRun(kind Kind, length int) Run {
	return Run{Kind: kind, Min: length}
}

// NewRangeRun returns a run spanning min..max characters
func NewRangeRun(kind Kind, lo, hi int) Run {
	r := Run{Kind: kind, Min: lo}
	if hi > lo {
		r.Max = &hi
	}
	return r
}

// MaxLength returns the upper bound, which equals Min for exact runs
func (r Run) MaxLength() int {
	if r.Max != nil {
		return *r.Max
	}
	return r.Min
}

// Optional reports whether the run may be absent entirely
func (r Run) Optional() bool {
	return r.Min == 0
}

// Exact reports whether the run has a fixed length
func (r Run) Exact() bool {
	return r.Max == nil
}

// Equal compares two runs by value
func (r Run) Equal(o Run) bool {
	return r.Kind == o.Kind && r.Min == o.Min && r.MaxLength() == o.MaxLength()
}

// Combine merges two aligned runs into a new one. Neither input is modified.
func (r Run) Combine(o Run) (Run, error) {
	kind, err := CombineKinds(o.Kind, r.Kind)
	if err != nil {
		return Run{}, err
	}
	lo := r.Min
	if o.Min < lo {
		lo = o.Min
	}
	hi := r.MaxLength()
	if o.MaxLength() > hi {
		hi = o.MaxLength()
	}
	return NewRangeRun(kind, lo, hi), nil
}

// classToken returns the regex class for the run's kind
func (r Run) classToken() string {
	switch r.Kind {
	case KindLetter:
		return "[A-Z]"
	case KindDigit:
		return `\d`
	default:
		panic(fmt.Sprintf("pattern: cannot render run of kind %s", r.Kind))
	}
}

// quantifier returns "", "{m}" or "{m,n}"
func (r Run) quantifier() string {
	if r.Max == nil {
		if r.Min == 1 {
			return ""
		}
		return "{" + strconv.Itoa(r.Min) + "}"
	}
	return "{" + strconv.Itoa(r.Min) + "," + strconv.Itoa(*r.Max) + "}"
}

// String renders the run as a class token plus quantifier
func (r Run) String() string {
	return r.classToken() + r.quantifier()
}
