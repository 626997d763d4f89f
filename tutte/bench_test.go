package tutte_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/tutte"
)

// BenchmarkCompute_Wheel measures the sequential engine on W7
// (7 vertices, 12 edges).
func BenchmarkCompute_Wheel(b *testing.B) {
	g, err := builder.BuildFamily("wheel", []int{7})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tutte.Compute(context.Background(), g)
	}
}

// BenchmarkCompute_GridWorkers compares 1 and 4 workers on the 3x3 grid.
func BenchmarkCompute_GridWorkers(b *testing.B) {
	g, err := builder.BuildFamily("grid", []int{3, 3})
	if err != nil {
		b.Fatal(err)
	}
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tutte.Compute(context.Background(), g, tutte.WithWorkers(w))
			}
		})
	}
}
