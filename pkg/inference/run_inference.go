/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run_inference.go
Description: Run pattern inference engine. Turns a corpus of identifier samples into a
Grammar holding the generalized run sequence and its rendered pattern, logging rejected
samples and conflicts, and optionally verifying the pattern against every sample.
*/

package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/runpattern/pkg/corpus"
	"github.com/kleascm/runpattern/pkg/logging"
	"github.com/kleascm/runpattern/pkg/pattern"
)

// ErrVerificationFailed means an inferred pattern does not match one of its samples
var ErrVerificationFailed = errors.New("inferred pattern does not match every sample")

// Option configures a RunEngine
type Option func(*RunEngine)

// WithLogger sets the logger used for inference events
func WithLogger(l *logging.Logger) Option {
	return func(e *RunEngine) {
		e.logger = l
	}
}

// WithWorkers enables parallel segmentation and merging
func WithWorkers(n int) Option {
	return func(e *RunEngine) {
		e.workers = n
	}
}

// WithVerify checks the inferred pattern against every sample
func WithVerify(verify bool) Option {
	return func(e *RunEngine) {
		e.verify = verify
	}
}

// RunEngine infers letter/digit run patterns
type RunEngine struct {
	logger  *logging.Logger
	workers int
	verify  bool
}

// NewRunEngine creates a new run inference engine
func NewRunEngine(opts ...Option) *RunEngine {
	e := &RunEngine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format returns the format handled by this engine
func (e *RunEngine) Format() string {
	return FormatRuns
}

// InferStructure infers a grammar from raw samples, one sample per entry
func (e *RunEngine) InferStructure(samples [][]byte) (*Grammar, error) {
	c := corpus.FromBytes(samples)
	return e.Infer(context.Background(), c.Samples())
}

// Infer infers a grammar from samples, folded in the given order
func (e *RunEngine) Infer(ctx context.Context, samples []string) (*Grammar, error) {
	start := time.Now()
	id := uuid.New().String()

	builder := pattern.NewBuilder(pattern.WithParallel(e.workers))
	seq, err := builder.Build(ctx, samples)
	if err != nil {
		e.logFailure(err)
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	g := &Grammar{
		ID:      id,
		Format:  FormatRuns,
		Pattern: pattern.Render(seq),
		Runs:    seq,
		Metadata: map[string]interface{}{
			"samples":       len(samples),
			"runs":          seq.Len(),
			"optional_runs": countOptional(seq),
		},
	}

	if e.verify {
		if err := e.verifyGrammar(g, samples); err != nil {
			return nil, err
		}
	}

	if e.logger != nil {
		e.logger.LogInference(id, len(samples), g.Pattern, time.Since(start))
	}
	return g, nil
}

func (e *RunEngine) verifyGrammar(g *Grammar, samples []string) error {
	misses, err := pattern.Verify(g.Pattern, samples)
	if errors.Is(err, pattern.ErrRepeatTooLarge) {
		// the pattern is valid, only the local regexp engine cannot check it
		g.Metadata["verified"] = false
		if e.logger != nil {
			e.logger.LogVerificationSkipped(g.Pattern, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	if e.logger != nil {
		e.logger.LogVerification(g.Pattern, len(samples), len(misses))
	}
	if len(misses) > 0 {
		return fmt.Errorf("%w: %d samples, first %q", ErrVerificationFailed, len(misses), misses[0])
	}
	g.Metadata["verified"] = true
	return nil
}

func (e *RunEngine) logFailure(err error) {
	if e.logger == nil {
		return
	}
	var sampleErr *pattern.SampleError
	var conflictErr *pattern.ConflictError
	switch {
	case errors.As(err, &sampleErr):
		e.logger.LogRejectedSample(sampleErr.Sample, err)
	case errors.As(err, &conflictErr):
		e.logger.LogConflict(err)
	default:
		e.logger.Error("Inference failed", map[string]interface{}{"error": err})
	}
}

func countOptional(seq pattern.Sequence) int {
	n := 0
	for _, r := range seq.Runs() {
		if r.Optional() {
			n++
		}
	}
	return n
}
