/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: build.go
Description: Whole-set orchestration. Segments every sample, left-folds the sequences
through Merge and renders the result. Builder adds an optional errgroup-backed
parallel path; merging is associative and commutative, so a tree fold yields the
same pattern as the sequential one.
*/

package pattern

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// BuildPattern infers a pattern matching every sample.
// Samples are folded in slice order; the first invalid sample wins.
func BuildPattern(samples []string) (string, error) {
	seq, err := Infer(samples)
	if err != nil {
		return "", err
	}
	return Render(seq), nil
}

// BuildPatternFromSet infers a pattern from a set of samples, folding them
// in lexicographic order so results and errors are reproducible.
func BuildPatternFromSet(samples map[string]struct{}) (string, error) {
	ordered := make([]string, 0, len(samples))
	for s := range samples {
		ordered = append(ordered, s)
	}
	sort.Strings(ordered)
	return BuildPattern(ordered)
}

// Infer returns the generalized run sequence for the samples
func Infer(samples []string) (Sequence, error) {
	if len(samples) == 0 {
		return Sequence{}, ErrEmptyInputSet
	}

	seqs := make([]Sequence, len(samples))
	for i, s := range samples {
		seq, err := segment(s, i)
		if err != nil {
			return Sequence{}, err
		}
		seqs[i] = seq
	}
	return fold(seqs)
}

// fold merges sequences left to right
func fold(seqs []Sequence) (Sequence, error) {
	acc := seqs[0]
	for _, seq := range seqs[1:] {
		var err error
		if acc, err = Merge(acc, seq); err != nil {
			return Sequence{}, err
		}
	}
	return acc, nil
}

// Builder runs inference with configurable parallelism
type Builder struct {
	workers int
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithParallel segments and merges using up to n goroutines. n <= 1 keeps
// the sequential path.
func WithParallel(n int) BuilderOption {
	return func(b *Builder) {
		b.workers = n
	}
}

// NewBuilder creates a new builder
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{workers: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build infers the run sequence for the samples
func (b *Builder) Build(ctx context.Context, samples []string) (Sequence, error) {
	if err := ctx.Err(); err != nil {
		return Sequence{}, err
	}
	if b.workers <= 1 || len(samples) < 2 {
		return Infer(samples)
	}

	seqs, err := b.segmentAll(ctx, samples)
	if err != nil {
		return Sequence{}, err
	}

	return b.treeFold(ctx, seqs)
}

// BuildPattern infers and renders the pattern for the samples
func (b *Builder) BuildPattern(ctx context.Context, samples []string) (string, error) {
	seq, err := b.Build(ctx, samples)
	if err != nil {
		return "", err
	}
	return Render(seq), nil
}

// segmentAll segments every sample concurrently. Sample errors do not cancel
// the group so the lowest failing index can always be reported.
func (b *Builder) segmentAll(ctx context.Context, samples []string) ([]Sequence, error) {
	seqs := make([]Sequence, len(samples))
	errs := make([]error, len(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seqs[i], errs[i] = segment(s, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return seqs, nil
}

// treeFold merges adjacent pairs level by level until one sequence remains
func (b *Builder) treeFold(ctx context.Context, seqs []Sequence) (Sequence, error) {
	level := seqs
	for len(level) > 1 {
		next := make([]Sequence, (len(level)+1)/2)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.workers)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next[i/2] = level[i]
				continue
			}
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				merged, err := Merge(level[i], level[i+1])
				if err != nil {
					return err
				}
				next[i/2] = merged
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Sequence{}, err
		}
		level = next
	}
	return level[0], nil
}
