// Package editdist defines options and modes for the edit-distance kernel.
package editdist

// MemoryMode controls how the kernel stores its DP table.
//
//   - FullMatrix — keep the entire (m+1)×(n+1) table in memory.
//     Useful when the table itself is of interest (debugging,
//     alignment experiments). Memory: O(m·n).
//
//   - TwoRows — only keep the current and previous rows.
//     Reduces memory to O(n) and is the default; the computed
//     distance is identical to FullMatrix.
type MemoryMode int

const (
	// TwoRows mode: rolling pair of rows, O(n) memory. Default.
	TwoRows MemoryMode = iota

	// FullMatrix mode: store all rows, O(m·n) memory.
	FullMatrix
)

// Options configures the edit-distance kernel.
//
// Fields:
//   - MemoryMode — choose TwoRows or FullMatrix storage. Both modes
//     produce the same distance; they differ only in memory.
//
// Example:
//
//	opts := editdist.DefaultOptions()
//	opts.MemoryMode = editdist.FullMatrix
//	d := editdist.Distance(a, b, &opts)
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns the documented defaults: TwoRows storage.
func DefaultOptions() Options {
	return Options{MemoryMode: TwoRows}
}
