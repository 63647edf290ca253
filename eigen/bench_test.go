package eigen_test

import (
	"testing"

	"github.com/katalvlaran/lvlspec/dof"
	"github.com/katalvlaran/lvlspec/eigen"
	"github.com/katalvlaran/lvlspec/operator"
	"github.com/katalvlaran/lvlspec/solver"
)

// benchmarkSolve initializes and assembles a Laplacian system once, then
// times repeated solves for four pairs of dimension n.
func benchmarkSolve(b *testing.B, n int, shell bool) {
	opts := []eigen.Option{
		eigen.WithKind(solver.Hermitian),
		eigen.WithSettings(solver.Settings{Pairs: 4, Tolerance: 1e-8}),
	}
	if shell {
		opts = append(opts, eigen.WithShellMatrices())
	} else {
		opts = append(opts, eigen.WithAssembler(laplacianAssembler(n)))
	}
	sys, err := eigen.New("bench", dof.NewMap(n), opts...)
	if err != nil {
		b.Fatal(err)
	}
	if shell {
		if err = sys.SetShellApply(operator.SlotA, laplacianApply(n)); err != nil {
			b.Fatal(err)
		}
	}
	if err = sys.InitData(); err != nil {
		b.Fatal(err)
	}
	if err = sys.Assemble(); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = sys.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSystemSolve_Stored(b *testing.B) { benchmarkSolve(b, 64, false) }
func BenchmarkSystemSolve_Shell(b *testing.B)  { benchmarkSolve(b, 64, true) }

// BenchmarkSystemReinit times the resize path alone.
func BenchmarkSystemReinit(b *testing.B) {
	sys, err := eigen.New("bench", dof.NewMap(128),
		eigen.WithKind(solver.Hermitian), eigen.WithAssembler(laplacianAssembler(128)))
	if err != nil {
		b.Fatal(err)
	}
	if err = sys.InitData(); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = sys.Reinit(); err != nil {
			b.Fatal(err)
		}
	}
}
