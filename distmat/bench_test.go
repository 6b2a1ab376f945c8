package distmat_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/seqdist/corpus"
	"github.com/katalvlaran/seqdist/distmat"
)

// benchCorpus builds n synthetic lines of length tokens each, with
// enough overlap that the DP kernel exercises both branches.
func benchCorpus(n, tokens int) corpus.Corpus {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < tokens; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("t" + strconv.Itoa((i+j)%23))
		}
		sb.WriteByte('\n')
	}
	c, _ := corpus.Parse(strings.NewReader(sb.String()))

	return c
}

// BenchmarkBuild_Sequential benchmarks the default single-goroutine build.
func BenchmarkBuild_Sequential(b *testing.B) {
	c := benchCorpus(100, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = distmat.Build(c)
	}
}

// BenchmarkBuild_Workers4 benchmarks the same corpus across four workers.
func BenchmarkBuild_Workers4(b *testing.B) {
	c := benchCorpus(100, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = distmat.Build(c, distmat.WithWorkers(4))
	}
}

// BenchmarkWrite benchmarks artifact serialization.
func BenchmarkWrite(b *testing.B) {
	m := distmat.Build(benchCorpus(100, 20))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		_ = distmat.Write(m, &sb)
	}
}

// BenchmarkRead benchmarks artifact parsing.
func BenchmarkRead(b *testing.B) {
	m := distmat.Build(benchCorpus(100, 20))
	var sb strings.Builder
	_ = distmat.Write(m, &sb)
	text := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distmat.Read(strings.NewReader(text))
	}
}
