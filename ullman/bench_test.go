// SPDX-License-Identifier: MIT
package ullman_test

import (
	"testing"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/ullman"
)

func benchmarkMatch(b *testing.B, n, m int, opts ...ullman.Option) {
	p := build(b, 1, builder.RandomSparse(n, 0.4))
	tg := build(b, 2, builder.RandomSparse(m, 0.3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ullman.IsSubgraphIsomorphic(p, tg, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatch_Small(b *testing.B)  { benchmarkMatch(b, 5, 12) }
func BenchmarkMatch_Medium(b *testing.B) { benchmarkMatch(b, 8, 24) }
func BenchmarkMatch_MediumParallel(b *testing.B) {
	benchmarkMatch(b, 8, 24, ullman.WithParallelism(4))
}
func BenchmarkMatch_MediumMono(b *testing.B) {
	benchmarkMatch(b, 8, 24, ullman.WithMode(ullman.ModeMonomorphism))
}
