/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus_test.go
Description: Tests for sample corpus loading from readers, files and directories.
*/

package corpus_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/runpattern/pkg/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusAddKeepsFirstSeenOrder(t *testing.T) {
	c := corpus.New()
	assert.True(t, c.Add("CF678HG"))
	assert.True(t, c.Add("AB123ZZ"))
	assert.False(t, c.Add("CF678HG"))

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, []string{"CF678HG", "AB123ZZ"}, c.Samples())
}

func TestCorpusReadFrom(t *testing.T) {
	c := corpus.New()
	n, err := c.ReadFrom(strings.NewReader("AB123ZZ\n\n  BB742TG  \r\nAB123ZZ\nCF678HG"))
	require.NoError(t, err)

	assert.Equal(t, int64(3), n)
	assert.Equal(t, []string{"AB123ZZ", "BB742TG", "CF678HG"}, c.Samples())
}

func TestCorpusLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("BB742TG\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("AB123ZZ\nCF678HG\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.txt"), []byte("ZZ999ZZ\n"), 0644))

	c := corpus.New()
	require.NoError(t, c.LoadDir(dir))
	assert.Equal(t, []string{"AB123ZZ", "CF678HG", "BB742TG"}, c.Samples())
}

func TestCorpusLoadMissing(t *testing.T) {
	c := corpus.New()
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.txt")))
	assert.Error(t, c.LoadDir(filepath.Join(t.TempDir(), "missing")))
}

func TestFromBytes(t *testing.T) {
	c := corpus.FromBytes([][]byte{[]byte("AB123\n"), []byte("AB123"), []byte("")})
	assert.Equal(t, []string{"AB123", ""}, c.Samples())
}
