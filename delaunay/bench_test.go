package delaunay_test

import (
	"testing"

	"github.com/vicentehelano/delaunay/delaunay"
	"github.com/vicentehelano/delaunay/guards"
	"github.com/vicentehelano/delaunay/links"
	"github.com/vicentehelano/delaunay/tds"
)

// benchmarkInsert times a full batch insertion of n uniform points.
func benchmarkInsert(b *testing.B, n int, newTDS func() tds.TDS) {
	points := uniformPoints(n, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := delaunay.New(newTDS(), delaunay.WithSeed(uint64(i)+1))
		if err := tr.Insert(points); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsert_Links_1k(b *testing.B) {
	benchmarkInsert(b, 1000, func() tds.TDS { return links.New() })
}

func BenchmarkInsert_Guards_1k(b *testing.B) {
	benchmarkInsert(b, 1000, func() tds.TDS { return guards.New() })
}
