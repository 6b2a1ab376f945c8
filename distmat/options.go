// Package distmat: functional configuration for the all-pairs builder.
// Defaults are documented constants (single source of truth); WithX
// constructors validate strictly and panic only on nonsensical values
// (programmer error); gatherOptions resolves setters over the defaults
// with last-writer-wins semantics.

package distmat

import "github.com/katalvlaran/seqdist/editdist"

const (
	// DefaultWorkers runs the all-pairs build sequentially. Values above
	// 1 split outer rows across that many goroutines; each (i,j) slot is
	// still computed and written exactly once, and the finished matrix is
	// identical regardless of scheduling.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "distmat: WithWorkers: n must be >= 1"

// Option mutates builder options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective builder configuration after applying
// Option setters. Fields are unexported; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	workers int
	edit    editdist.Options
}

// WithWorkers sets the number of goroutines for the all-pairs build.
// Panics when n < 1 (programmer error). n == 1 is the sequential
// default.
//
// Complexity: setter O(1); the build itself divides its O(N²·L²) work
// across n goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithEditOptions sets the edit-distance kernel options used for every
// pair (e.g., FullMatrix storage instead of the TwoRows default). The
// kernel result does not depend on this choice, only its memory use.
func WithEditOptions(eo editdist.Options) Option {
	return func(o *Options) { o.edit = eo }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		edit:    editdist.DefaultOptions(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
