package operator_test

import (
	"fmt"

	"github.com/katalvlaran/lvlspec/operator"
)

// ExampleSparse demonstrates coordinate assembly of a small stiffness-like
// matrix and a compiled matrix-vector product.
func ExampleSparse() {
	a, _ := operator.NewSparse(3)
	_ = a.Set(0, 0, 2)
	_ = a.Set(0, 2, 1)
	_ = a.Set(1, 1, 3)
	_ = a.Set(2, 0, 4)
	a.Close()

	dst := make([]float64, 3)
	_ = a.MulVec(dst, []float64{1, 2, 3})
	fmt.Println(dst, a.NNZ())
	// Output:
	// [5 6 4] 4
}

// ExampleSlot demonstrates the stored-XOR-shell transition: allocating one
// representation releases the other, so a slot never holds both.
func ExampleSlot() {
	var s operator.Slot

	_, _ = s.AllocateShell(2, func(dst, src []float64) error {
		dst[0], dst[1] = 2*src[0], 2*src[1] // a matrix-free scaling action

		return nil
	})
	fmt.Println("after shell:", s.Form())

	_, _ = s.AllocateStored(2, operator.BuildAutomatic)
	fmt.Println("after stored:", s.Form())

	s.Release()
	fmt.Println("after release:", s.Form())
	// Output:
	// after shell: shell
	// after stored: stored
	// after release: empty
}

// ExampleStorage demonstrates the single ownership table: reserved primary
// slots plus registered auxiliary matrices, reallocated together.
func ExampleStorage() {
	st := operator.NewStorage()
	_, _ = st.Define("Mass", operator.DistAutomatic, operator.BuildAutomatic)
	_, _ = st.Define("Scaling", operator.DistSerial, operator.BuildDiagonal)

	_ = st.AllocateAux(4)
	mass, _ := st.Slot("Mass")
	fmt.Println(st.Names(), mass.Form(), mass.Dim())
	// Output:
	// [Mass Scaling] stored 4
}
