package editdist

// Distance — normalized token-level Levenshtein
//
// Description:
//
//	Distance measures dissimilarity between two token sequences as the
//	minimum number of token edits (insert, delete, substitute) turning
//	one into the other, normalized by the longer length. Tokens compare
//	by exact string equality.
//
// Algorithm Outline (Full-Matrix):
//  1. Let m = len(a), n = len(b). If m == 0 or n == 0, the distance is
//     defined as 1 (maximal dissimilarity) — a fixed rule, not a
//     consequence of the recurrence, and it covers the both-empty case.
//  2. Allocate an (m+1)×(n+1) DP table D.
//  3. Initialize D[i][0] = i for i=0..m and D[0][j] = j for j=0..n.
//  4. For i = 1..m, j = 1..n:
//     cost  = 0 if a[i-1] == b[j-1], else 1
//     del   = D[i-1][j]   + 1
//     ins   = D[i][j-1]   + 1
//     sub   = D[i-1][j-1] + cost
//     D[i][j] = min(del, ins, sub)
//  5. distance = D[m][n] / max(m, n).
//
// Memory Modes:
//   - FullMatrix — store the full table. Memory: O(m·n).
//   - TwoRows    — store only two rows (current & previous). Memory: O(n).
//     The distance is identical in both modes.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n) (FullMatrix) or O(n) (TwoRows)

// Distance returns the normalized edit distance between a and b in [0,1].
// A nil opts is treated as DefaultOptions. Pure function of (a, b):
// deterministic, symmetric, inputs never mutated.
//
// Example:
//
//	opts := DefaultOptions()
//	d := Distance([]string{"a", "b", "c"}, []string{"a", "b", "d"}, &opts)
func Distance(a, b []string, opts *Options) float64 {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 1
	}

	return float64(raw(a, b, mode(opts))) / float64(maxInt(m, n))
}

// Raw returns the unnormalized token-level Levenshtein distance between
// a and b: the minimum number of single-token edits. Unlike Distance,
// Raw has no empty-input special case — an empty side simply costs the
// other side's length.
//
// Complexity: O(m·n) time, O(n) memory.
func Raw(a, b []string) int {
	return raw(a, b, TwoRows)
}

// mode resolves the effective memory mode from possibly-nil options.
func mode(opts *Options) MemoryMode {
	if opts == nil {
		return TwoRows
	}

	return opts.MemoryMode
}

// raw runs the Levenshtein DP over tokens using the requested storage.
func raw(a, b []string, mem MemoryMode) int {
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	if mem == FullMatrix {
		return rawFull(a, b)
	}

	return rawTwoRows(a, b)
}

// rawFull fills the whole (m+1)×(n+1) table.
func rawFull(a, b []string) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 1; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}

	return dp[m][n]
}

// rawTwoRows keeps only the previous and current rows.
func rawTwoRows(a, b []string) int {
	m, n := len(a), len(b)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
