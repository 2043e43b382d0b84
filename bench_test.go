package nback_test

import (
	"testing"

	"github.com/katalvlaran/nback"
)

// BenchmarkGenerate_Reference measures end-to-end generation throughput on
// the reference shape (3-back, 3 targets, 5 fillers, lures {1:2, 2:4}) -
// the same workload the CLI bench command reports on.
func BenchmarkGenerate_Reference(b *testing.B) {
	spec, err := nback.NewSpec(3, 3, 5, map[int]int{1: 2, 2: 4}, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = nback.Generate(spec, nback.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPlace_Long stresses the search alone on a longer mixed shape.
func BenchmarkPlace_Long(b *testing.B) {
	spec, err := nback.NewSpec(3, 20, 30, map[int]int{1: 5, 2: 10, 4: 5}, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = nback.Place(spec, nback.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
