package distmat

import (
	"sync"

	"github.com/katalvlaran/seqdist/corpus"
	"github.com/katalvlaran/seqdist/editdist"
)

// Build computes the distance for every unordered pair of distinct
// indices in c — N·(N-1)/2 pairs for N sequences — and returns the
// populated matrix. No pair is computed twice and no self-pair is
// stored.
//
// With WithWorkers(n), n > 1, outer rows are distributed across n
// goroutines. Row maps are pre-allocated before any goroutine starts,
// so each worker writes only into the inner maps of the rows it owns:
// every slot is written exactly once, with no shared mutable state
// beyond the pre-built skeleton. The finished matrix is identical to a
// sequential build.
//
// Complexity: O(N²) pairs, each O(m·n) in the sequence lengths — the
// dominant cost of the whole pipeline for large corpora.
func Build(c corpus.Corpus, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	n := c.Len()
	m := New()

	// Skeleton first: rows 1..n-1 exist before any write happens, so
	// concurrent workers never mutate the outer map.
	for i := 1; i < n; i++ {
		m.rows[i] = make(map[int]float64, n-i)
	}

	if o.workers <= 1 || n < 3 {
		for i := 1; i < n; i++ {
			buildRow(m, c, i, &o.edit)
		}

		return m
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(o.workers)
	for w := 0; w < o.workers; w++ {
		go func() {
			defer wg.Done()
			// Each worker owns the rows it receives; inner maps are
			// disjoint per row, so writes never race.
			eo := o.edit
			for i := range rows {
				buildRow(m, c, i, &eo)
			}
		}()
	}
	for i := 1; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return m
}

// buildRow fills row i: distances of (i, j) for all j in i+1..N.
func buildRow(m *Matrix, c corpus.Corpus, i int, eo *editdist.Options) {
	row := m.rows[i]
	a := c.Seq(i)
	for j := i + 1; j <= c.Len(); j++ {
		row[j] = editdist.Distance(a, c.Seq(j), eo)
	}
}
