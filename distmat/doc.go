// Package distmat stores pairwise distances over a corpus as a sparse,
// half-matrix structure, builds it by all-pairs computation, and
// serializes it to a plain-text artifact for incremental reuse.
//
// 🚀 What is the distance matrix?
//
//	For a corpus of N sequences there are N·(N-1)/2 unordered pairs.
//	Each pair (i, j) with 1 ≤ i < j ≤ N maps to one normalized edit
//	distance; self-pairs and mirrored duplicates are never stored.
//	Lookups accept indices in either order and canonicalize internally.
//
// ✨ Key features:
//   - write-once sparse storage: each slot holds exactly one distance
//   - deterministic text codec: one `(i,j) distance` record per line,
//     ascending (i, j), shortest float formatting — exact round-trip
//   - tolerant reads: unrecognized lines are skipped, but a recognized
//     record with a malformed number is a hard error
//   - optional parallel build across workers; the result is identical
//     regardless of scheduling
//
// ⚙️ Usage:
//
//	m := distmat.Build(c, distmat.WithWorkers(4))
//	d, err := m.Lookup(3, 1) // same as Lookup(1, 3)
//	err = distmat.WriteFile(m, "traces.dist")
//
// Errors are package-level sentinels (ErrPairNotFound, ErrInvalidIndex,
// ErrMalformedRecord, ErrArtifactNotFound) matched via errors.Is; a
// missing pair is always an error, never a zero or NaN sentinel value.
//
// Performance: Build is O(N²·L²) time for sequences of typical length L
// — the dominant cost of the whole pipeline; the codec is linear in the
// number of stored pairs.
package distmat
