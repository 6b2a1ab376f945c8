// Package service orchestrates the distance pipeline: load a corpus,
// compute or reuse its all-pairs distance matrix, persist the artifact,
// and serve indexed lookups.
//
// 🚀 What does the service do?
//
//	A Service owns two paths — the input corpus and the distance
//	artifact — plus an optional in-memory matrix populated at most once
//	(lazy initialization, no global state):
//	  • ComputeAndPersist — build + write, or skip entirely when the
//	    artifact already exists
//	  • ArtifactExists    — the presence check callers use to decide
//	    whether computation can be skipped
//	  • Distance          — order-insensitive (i, j) lookup, lazily
//	    reloading the artifact on first use
//
// ⚠️ Reuse is existence-only: once the artifact file is present it is
// trusted blindly — no validation that it matches the current corpus in
// size or content. A stale or partial artifact will be served as-is;
// delete the file to force recomputation. This mirrors the documented
// contract rather than inventing stronger validation.
//
// ⚙️ Usage:
//
//	svc := service.New("traces.txt", "traces.dist")
//	if err := svc.ComputeAndPersist(); err != nil { ... }
//	d, err := svc.Distance(3, 1)
//	switch {
//	case errors.Is(err, distmat.ErrPairNotFound):    // never computed
//	case errors.Is(err, distmat.ErrArtifactNotFound): // nothing persisted yet
//	}
//
// All failures propagate synchronously; there are no retries, timeouts
// or cancellation semantics — computation runs to completion.
package service
