/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus.go
Description: Sample corpus loading. Reads one sample per non-blank line from readers,
files and corpus directories, keeping first-seen order and dropping duplicates.
*/

package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Corpus is an ordered set of samples
type Corpus struct {
	samples []string
	seen    map[string]struct{}
}

// New creates an empty corpus
func New() *Corpus {
	return &Corpus{seen: make(map[string]struct{})}
}

// Add appends a sample unless it is already present. Returns true if added.
func (c *Corpus) Add(sample string) bool {
	if _, ok := c.seen[sample]; ok {
		return false
	}
	c.seen[sample] = struct{}{}
	c.samples = append(c.samples, sample)
	return true
}

// AddAll adds every sample in order
func (c *Corpus) AddAll(samples ...string) {
	for _, s := range samples {
		c.Add(s)
	}
}

// Samples returns a copy of the samples in insertion order
func (c *Corpus) Samples() []string {
	out := make([]string, len(c.samples))
	copy(out, c.samples)
	return out
}

// Size returns the number of distinct samples
func (c *Corpus) Size() int {
	return len(c.samples)
}

// ReadFrom adds one sample per line. Surrounding whitespace is trimmed and
// blank lines are skipped.
func (c *Corpus) ReadFrom(r io.Reader) (int64, error) {
	var added int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if c.Add(line) {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read samples: %w", err)
	}
	return added, nil
}

// LoadFile adds the samples of a single file
func (c *Corpus) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sample file: %w", err)
	}
	defer f.Close()

	if _, err := c.ReadFrom(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadDir adds the samples of every regular file in dir, in name order.
// Subdirectories are not traversed.
func (c *Corpus) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read corpus directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.LoadFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// FromBytes builds a corpus from raw samples, one sample per entry.
func FromBytes(samples [][]byte) *Corpus {
	c := New()
	for _, s := range samples {
		c.Add(strings.TrimSpace(string(s)))
	}
	return c
}
