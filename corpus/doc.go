// Package corpus models the input to all-pairs distance computation:
// an ordered collection of token sequences, one per input line.
//
// 🚀 What is a corpus here?
//
//	Plain text, one string per line, tokens separated by whitespace.
//	Line k of the input becomes sequence k of the corpus (1-based, so
//	indices in the distance matrix read as line numbers). A blank line
//	is a valid, empty sequence.
//
// ✨ Key properties:
//   - whole-input loading — the full corpus is read before any
//     distance is computed; there is no streaming mode
//   - immutability by convention — a Corpus is built once and only
//     read afterwards
//   - tokenization is whitespace splitting and nothing more: no
//     escaping, no quoting, no normalization
//
// ⚙️ Usage:
//
//	c, err := corpus.Load("traces.txt")
//	if err != nil { ... } // errors.Is(err, corpus.ErrInputNotFound)
//	seq := c.Seq(1)       // tokens of the first input line
//
// Complexity: Load is O(total input bytes) time and memory.
package corpus
