/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sequence.go
Description: Sequence is the ordered, immutable list of runs describing one sample or
the generalized pattern of many. Implements positional alignment, merging and rendering.
*/

package pattern

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sequence is an ordered list of runs. The zero value is empty.
type Sequence struct {
	runs []Run
}

// NewSequence builds a sequence from runs. The slice is copied.
func NewSequence(runs ...Run) Sequence {
	cp := make([]Run, len(runs))
	copy(cp, runs)
	return Sequence{runs: cp}
}

// Len returns the number of runs
func (s Sequence) Len() int {
	return len(s.runs)
}

// At returns the run at position i
func (s Sequence) At(i int) Run {
	return s.runs[i]
}

// Runs returns a copy of the runs
func (s Sequence) Runs() []Run {
	cp := make([]Run, len(s.runs))
	copy(cp, s.runs)
	return cp
}

// runOrNone returns the run at i, or the alignment sentinel past the end
func (s Sequence) runOrNone(i int) Run {
	if i >= len(s.runs) {
		return noneRun
	}
	return s.runs[i]
}

// Equal compares two sequences run by run
func (s Sequence) Equal(o Sequence) bool {
	if len(s.runs) != len(o.runs) {
		return false
	}
	for i := range s.runs {
		if !s.runs[i].Equal(o.runs[i]) {
			return false
		}
	}
	return true
}

// String renders the sequence as a pattern
func (s Sequence) String() string {
	return Render(s)
}

// MarshalJSON encodes the sequence as a list of runs
func (s Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Runs())
}

// UnmarshalJSON decodes a list of runs
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return err
	}
	for i := range runs {
		if runs[i].Kind == KindNone {
			return fmt.Errorf("run %d has no kind", i)
		}
		if runs[i].Min < 0 {
			return fmt.Errorf("run %d has negative length %d", i, runs[i].Min)
		}
		if runs[i].Max != nil && *runs[i].Max <= runs[i].Min {
			runs[i].Max = nil
		}
		if i > 0 && runs[i].Kind == runs[i-1].Kind {
			return fmt.Errorf("runs %d and %d share kind %s", i-1, i, runs[i].Kind)
		}
	}
	s.runs = runs
	return nil
}

// MarshalYAML encodes the sequence as a list of runs
func (s Sequence) MarshalYAML() (interface{}, error) {
	return s.Runs(), nil
}

// Merge aligns two sequences by position and combines their runs.
// The shorter sequence is padded with empty runs of kind None, which makes
// the trailing runs of the longer one optional.
func Merge(a, b Sequence) (Sequence, error) {
	n := len(a.runs)
	if len(b.runs) > n {
		n = len(b.runs)
	}

	merged := make([]Run, n)
	for i := 0; i < n; i++ {
		left, right := a.runOrNone(i), b.runOrNone(i)
		run, err := left.Combine(right)
		if err != nil {
			return Sequence{}, &ConflictError{Position: i, Left: left.Kind, Right: right.Kind}
		}
		merged[i] = run
	}
	return Sequence{runs: merged}, nil
}

// Render serializes a sequence into the pattern string.
// Panics if the sequence contains an alignment sentinel.
func Render(s Sequence) string {
	var b strings.Builder
	for _, r := range s.runs {
		b.WriteString(r.String())
	}
	return b.String()
}
