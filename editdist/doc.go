// Package editdist computes normalized Levenshtein distances between
// token sequences, with optional memory optimizations.
//
// 🚀 What is token-level edit distance?
//
//	The minimum number of token insertions, deletions and substitutions
//	turning one sequence into the other, divided by the length of the
//	longer sequence. Tokens compare by exact string equality — never
//	character by character within a token. It is widely used in:
//	  • execution-trace and log-template clustering
//	  • near-duplicate detection over tokenized text
//	  • sequence similarity for downstream machine learning
//
// ✨ Key features:
//   - full-matrix mode: exact O(m·n) time & memory
//   - two-row mode: O(n) memory (choose via MemoryMode), same result
//   - normalization makes distances length-independent, always in [0,1]
//   - a pair with an empty side is maximally dissimilar (exactly 1)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqdist/editdist"
//
//	opts := editdist.DefaultOptions()
//	d := editdist.Distance(
//	  []string{"a", "b", "c"},
//	  []string{"a", "b", "d"},
//	  &opts,
//	) // 1 substitution / max(3,3) = 0.333…
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (FullMatrix) or O(n) (TwoRows)
//
// Distance is a pure function: no mutation of inputs, deterministic,
// and symmetric (Distance(a,b) == Distance(b,a)) by construction.
package editdist
