package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TokenSequence is one input line as an ordered list of tokens.
// Tokens compare by exact string equality; an empty sequence (length 0)
// is valid and arises from a blank input line.
type TokenSequence []string

// Len returns the number of tokens in the sequence.
func (s TokenSequence) Len() int { return len(s) }

// Corpus is an ordered collection of token sequences. Position k in the
// collection corresponds to line k of the input (1-based); use Seq for
// line-number addressing.
type Corpus []TokenSequence

// Len returns the number of sequences in the corpus.
func (c Corpus) Len() int { return len(c) }

// Seq returns the sequence at 1-based index i (the input line number).
// Callers must keep i within 1..Len(); out-of-range access is a
// programmer error and panics like any slice misuse.
func (c Corpus) Seq(i int) TokenSequence { return c[i-1] }

// Tokenize splits one input line into its token sequence.
// Splitting is on runs of whitespace (strings.Fields semantics), so a
// blank or whitespace-only line yields an empty sequence.
func Tokenize(line string) TokenSequence {
	return strings.Fields(line)
}

// Parse reads the whole input line by line and returns the corpus.
// The full input is consumed before Parse returns; there is no
// streaming or partial-corpus mode.
//
// Complexity: O(total bytes) time, O(total tokens) memory.
func Parse(r io.Reader) (Corpus, error) {
	var c Corpus
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		c = append(c, Tokenize(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read input: %w", err)
	}

	return c, nil
}

// Load reads the corpus from the file at path. A missing or unreadable
// file surfaces as ErrInputNotFound (errors.Is-matchable); the handle
// is released on every path.
func Load(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	defer f.Close()

	return Parse(f)
}
