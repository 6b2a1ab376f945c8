// Package seqdist computes pairwise normalized edit distances over a
// corpus of tokenized strings and persists the resulting sparse matrix
// for later lookup — the preprocessing stage in front of a clustering
// algorithm that groups similar token sequences (execution traces, log
// templates and the like).
//
// 🚀 What is seqdist?
//
//	A small, deterministic library that brings together:
//		• corpus/   — line-based corpora of whitespace-tokenized sequences
//		• editdist/ — normalized token-level Levenshtein (DP kernel)
//		• distmat/  — sparse all-pairs distance matrix + text codec
//		• service/  — compute-or-reuse orchestration and indexed lookup
//
// ✨ Why choose seqdist?
//
//   - Token-level, not character-level — tokens compare by exact equality
//   - Durable artifact — the `(i,j) distance` text format round-trips exactly
//   - Incremental reuse — an existing artifact skips recomputation entirely
//   - Pure Go — no cgo, no hidden deps
//
// The distance between two sequences is their Levenshtein distance over
// tokens divided by the length of the longer sequence, so values always
// land in [0,1]; a pair involving an empty sequence is maximally
// dissimilar (distance 1) by definition.
//
// Typical flow:
//
//	svc := service.New("traces.txt", "traces.dist")
//	if err := svc.ComputeAndPersist(); err != nil { ... }
//	d, err := svc.Distance(3, 1) // order-insensitive, 1-based line numbers
//
// Clustering itself is out of scope: seqdist produces and serves the
// matrix the clusterer consumes.
package seqdist
