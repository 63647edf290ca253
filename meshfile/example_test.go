package meshfile_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlspec/meshfile"
)

// ExampleFile_Attributes reads the attribute array of one element block.
func ExampleFile_Attributes() {
	f := meshfile.NewFile()
	_ = f.AddObject(meshfile.ElemBlock, 10, 2, [][]float64{{1.5, 0.5}, {2.5, 0.25}})

	attrs, out := f.Attributes(meshfile.ElemBlock, 10)
	fmt.Println(out.Severity, attrs)
	// Output: ok [1.5 0.5 2.5 0.25]
}

// ExampleFile_MarkNull shows the warning path: a null entity answers with
// an empty result, and processing can continue.
func ExampleFile_MarkNull() {
	f := meshfile.NewFile()
	_ = f.AddObject(meshfile.ElemBlock, 10, 1, [][]float64{{4}})
	_ = f.MarkNull(meshfile.ElemBlock, 10)

	attrs, out := f.Attributes(meshfile.ElemBlock, 10)
	fmt.Println(out.Severity, len(attrs), errors.Is(out.Err, meshfile.ErrNullEntity))
	fmt.Println(out.Message)
	// Output:
	// warning 0 true
	// no attributes found for null element block 10
}

// ExampleDecode round-trips a file through the binary layout.
func ExampleDecode() {
	f := meshfile.NewFile()
	_ = f.AddObject(meshfile.NodeSet, 4, 2, [][]float64{{7}, {9}})

	var buf bytes.Buffer
	_ = f.Encode(&buf)
	g, _ := meshfile.Decode(&buf)

	attrs, out := g.Attributes(meshfile.NodeSet, 4)
	fmt.Println(out.OK(), attrs)
	// Output: true [7 9]
}
