package corpus_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/seqdist/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize_Basic verifies plain single-space splitting.
func TestTokenize_Basic(t *testing.T) {
	seq := corpus.Tokenize("a b c")
	assert.Equal(t, corpus.TokenSequence{"a", "b", "c"}, seq)
	assert.Equal(t, 3, seq.Len())
}

// TestTokenize_WhitespaceRuns verifies that runs of whitespace collapse
// and surrounding whitespace is ignored.
func TestTokenize_WhitespaceRuns(t *testing.T) {
	seq := corpus.Tokenize("  alpha\t beta   gamma ")
	assert.Equal(t, corpus.TokenSequence{"alpha", "beta", "gamma"}, seq)
}

// TestTokenize_BlankLine verifies a blank line yields a valid empty sequence.
func TestTokenize_BlankLine(t *testing.T) {
	assert.Equal(t, 0, corpus.Tokenize("").Len())
	assert.Equal(t, 0, corpus.Tokenize("   ").Len())
}

// TestParse_LinesBecomeSequences checks line-to-sequence mapping and
// 1-based addressing via Seq.
func TestParse_LinesBecomeSequences(t *testing.T) {
	in := "a b c\na b d\nx y z\n"
	c, err := corpus.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, corpus.TokenSequence{"a", "b", "c"}, c.Seq(1))
	assert.Equal(t, corpus.TokenSequence{"a", "b", "d"}, c.Seq(2))
	assert.Equal(t, corpus.TokenSequence{"x", "y", "z"}, c.Seq(3))
}

// TestParse_NoTrailingNewline verifies the last line is kept even
// without a trailing newline.
func TestParse_NoTrailingNewline(t *testing.T) {
	c, err := corpus.Parse(strings.NewReader("one two\nthree"))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, corpus.TokenSequence{"three"}, c.Seq(2))
}

// TestParse_BlankInteriorLine verifies interior blank lines survive as
// empty sequences and keep line numbering aligned.
func TestParse_BlankInteriorLine(t *testing.T) {
	c, err := corpus.Parse(strings.NewReader("a b\n\nc d\n"))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, 0, c.Seq(2).Len())
	assert.Equal(t, corpus.TokenSequence{"c", "d"}, c.Seq(3))
}

// TestLoad_RoundTrip writes a corpus file and loads it back.
func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("a b c\na b d\n"), 0o644))

	c, err := corpus.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, corpus.TokenSequence{"a", "b", "d"}, c.Seq(2))
}

// TestLoad_Missing verifies a missing file maps to ErrInputNotFound.
func TestLoad_Missing(t *testing.T) {
	_, err := corpus.Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, corpus.ErrInputNotFound)
}
