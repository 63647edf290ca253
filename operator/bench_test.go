package operator_test

import (
	"testing"

	"github.com/katalvlaran/lvlspec/operator"
)

// buildLaplacian assembles the 1D Laplacian stencil (2 on the diagonal,
// -1 off) at dimension n and compiles it.
func buildLaplacian(b *testing.B, n int) *operator.Sparse {
	m, err := operator.NewSparse(n)
	if err != nil {
		b.Fatalf("NewSparse failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 2)
		if i > 0 {
			_ = m.Set(i, i-1, -1)
		}
		if i < n-1 {
			_ = m.Set(i, i+1, -1)
		}
	}
	m.Close()

	return m
}

// benchmarkMulVec runs the compiled CSR product at dimension n.
func benchmarkMulVec(b *testing.B, n int) {
	m := buildLaplacian(b, n)
	src := make([]float64, n)
	dst := make([]float64, n)
	for i := range src {
		src[i] = float64(i%7) - 3
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.MulVec(dst, src); err != nil {
			b.Fatalf("MulVec failed: %v", err)
		}
	}
}

// BenchmarkSparseMulVec_Small benchmarks the tridiagonal product at n=100.
func BenchmarkSparseMulVec_Small(b *testing.B) { benchmarkMulVec(b, 100) }

// BenchmarkSparseMulVec_Medium benchmarks the tridiagonal product at n=2000.
func BenchmarkSparseMulVec_Medium(b *testing.B) { benchmarkMulVec(b, 2000) }

// BenchmarkSparseClose benchmarks CSR compilation from the coordinate map.
func BenchmarkSparseClose(b *testing.B) {
	n := 2000
	m := buildLaplacian(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Add(0, 0, 0) // reopen assembly
		m.Close()
	}
}
