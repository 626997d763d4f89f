package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/dfs"
)

// BenchmarkClassify_Ladder measures classification of a 1000-rung ladder
// (V=2000, E=2998, no bridges).
func BenchmarkClassify_Ladder(b *testing.B) {
	g := core.NewMultigraph()
	for i := 0; i < 1000; i++ {
		top, bot := fmt.Sprintf("T%d", i), fmt.Sprintf("B%d", i)
		_, _ = g.AddEdge(top, bot)
		if i > 0 {
			_, _ = g.AddEdge(fmt.Sprintf("T%d", i-1), top)
			_, _ = g.AddEdge(fmt.Sprintf("B%d", i-1), bot)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Classify(g)
	}
}
