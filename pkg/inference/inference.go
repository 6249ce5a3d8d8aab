/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Entry point for structure inference from sample corpora. Provides the
InferenceEngine interface, the Grammar result type and engine selection by format.
*/

package inference

import (
	"fmt"

	"github.com/kleascm/runpattern/pkg/grammar"
	"github.com/kleascm/runpattern/pkg/pattern"
)

// FormatRuns is the format of engines that infer letter/digit run patterns
const FormatRuns = "runs"

// InferenceEngine defines the interface for structure inference engines
type InferenceEngine interface {
	InferStructure(samples [][]byte) (*Grammar, error)
	Format() string
}

// Grammar is the result of an inference
type Grammar struct {
	ID       string                 `json:"id" yaml:"id"`
	Format   string                 `json:"format" yaml:"format"`
	Pattern  string                 `json:"pattern" yaml:"pattern"`
	Runs     pattern.Sequence       `json:"runs" yaml:"runs"`
	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Generator returns a sample generator for the inferred runs
func (g *Grammar) Generator(seed int64) (*grammar.RunGrammar, error) {
	return grammar.NewRunGrammar(g.Runs, seed)
}

// NewEngine returns an engine for the given format
func NewEngine(format string, opts ...Option) (InferenceEngine, error) {
	switch format {
	case FormatRuns, "":
		return NewRunEngine(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
