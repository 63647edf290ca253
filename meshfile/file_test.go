package meshfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspec/meshfile"
)

// TestFile_AddDim checks extent storage and duplicate/negative rejection.
func TestFile_AddDim(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddDim("num_nodes", 12))

	ext, ok := f.Dim("num_nodes")
	require.True(t, ok)
	assert.Equal(t, int64(12), ext)
	_, ok = f.Dim("ghost")
	assert.False(t, ok)

	require.ErrorIs(t, f.AddDim("num_nodes", 5), meshfile.ErrDuplicateDim)
	require.ErrorIs(t, f.AddDim("bad", -1), meshfile.ErrShapeMismatch)
}

// TestFile_AddVariables checks typed payloads, shapes, and lookups.
func TestFile_AddVariables(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddDim("rows", 2))
	require.NoError(t, f.AddDim("cols", 3))

	require.NoError(t, f.AddFloats("grid", []string{"rows", "cols"},
		[]float64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, f.AddInts("tags", []string{"rows"}, []int64{7, 8}))
	require.NoError(t, f.AddFloats("scale", nil, []float64{2.5})) // scalar

	vals, ok := f.Floats("grid")
	require.True(t, ok)
	assert.Len(t, vals, 6)
	tags, ok := f.Ints("tags")
	require.True(t, ok)
	assert.Equal(t, []int64{7, 8}, tags)

	// Typed lookups do not cross.
	_, ok = f.Ints("grid")
	assert.False(t, ok)
	_, ok = f.Floats("tags")
	assert.False(t, ok)

	dims, ok := f.VarDims("grid")
	require.True(t, ok)
	assert.Equal(t, []string{"rows", "cols"}, dims)

	require.ErrorIs(t, f.AddFloats("grid", []string{"rows"}, []float64{1, 2}),
		meshfile.ErrDuplicateVar)
	require.ErrorIs(t, f.AddFloats("bad", []string{"ghost"}, nil),
		meshfile.ErrUnknownDim)
	require.ErrorIs(t, f.AddFloats("short", []string{"rows"}, []float64{1}),
		meshfile.ErrShapeMismatch)
	require.ErrorIs(t, f.AddInts("long", []string{"cols"}, []int64{1, 2, 3, 4}),
		meshfile.ErrShapeMismatch)
}

// TestFile_AddObject lays out the id/status tables and per-object names.
func TestFile_AddObject(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddObject(meshfile.ElemBlock, 10, 2,
		[][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, f.AddObject(meshfile.ElemBlock, 20, 1, nil))

	count, ok := f.Dim("num_elem_block")
	require.True(t, ok)
	assert.Equal(t, int64(2), count)
	ids, ok := f.Ints("ids_elem_block")
	require.True(t, ok)
	assert.Equal(t, []int64{10, 20}, ids)
	status, ok := f.Ints("status_elem_block")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 1}, status)

	entries, ok := f.Dim("num_entries_elem_block1")
	require.True(t, ok)
	assert.Equal(t, int64(2), entries)
	nattr, ok := f.Dim("num_attrib_elem_block1")
	require.True(t, ok)
	assert.Equal(t, int64(2), nattr)
	flat, ok := f.Floats("attrib_elem_block1")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3, 4}, flat)

	// The attribute-free second block has no attribute names at all.
	_, ok = f.Dim("num_attrib_elem_block2")
	assert.False(t, ok)
	_, ok = f.Floats("attrib_elem_block2")
	assert.False(t, ok)
}

// TestFile_AddObject_Validation rejects inconsistent shapes and re-use.
func TestFile_AddObject_Validation(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddObject(meshfile.ElemBlock, 10, 1, [][]float64{{1}}))

	require.ErrorIs(t, f.AddObject(meshfile.ElemBlock, 10, 1, nil),
		meshfile.ErrDuplicateObject)
	require.ErrorIs(t, f.AddObject(meshfile.ObjectType(99), 1, 1, nil),
		meshfile.ErrUnknownObjectType)
	require.ErrorIs(t, f.AddObject(meshfile.NodeSet, 1, -1, nil),
		meshfile.ErrShapeMismatch)
	require.ErrorIs(t, f.AddObject(meshfile.NodeSet, 1, 3, [][]float64{{1}}),
		meshfile.ErrShapeMismatch) // row count != entries
	require.ErrorIs(t, f.AddObject(meshfile.NodeSet, 1, 2, [][]float64{{1, 2}, {3}}),
		meshfile.ErrShapeMismatch) // ragged rows
	require.ErrorIs(t, f.AddObject(meshfile.SideSet, 1, 2, [][]float64{{1}, {2}}),
		meshfile.ErrUnknownObjectType) // side sets carry no attributes
}

// TestFile_AddObject_NodeBlock is a one-shot whole-mesh object with fixed
// names.
func TestFile_AddObject_NodeBlock(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddObject(meshfile.NodeBlock, 0, 4, [][]float64{{1}, {2}, {3}, {4}}))

	n, ok := f.Dim("num_nodes")
	require.True(t, ok)
	assert.Equal(t, int64(4), n)
	_, ok = f.Dim("num_attrib_node")
	assert.True(t, ok)
	_, ok = f.Floats("attrib_node")
	assert.True(t, ok)
	_, ok = f.Ints("ids_node")
	assert.False(t, ok) // the node block has no id table

	require.ErrorIs(t, f.AddObject(meshfile.NodeBlock, 0, 2, nil),
		meshfile.ErrDuplicateDim)
}

// TestFile_SideSet registers plain side sets and lets them go null.
func TestFile_SideSet(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddObject(meshfile.SideSet, 3, 5, nil))
	require.NoError(t, f.MarkNull(meshfile.SideSet, 3))

	status, ok := f.Ints("status_side_set")
	require.True(t, ok)
	assert.Equal(t, []int64{0}, status)
}

// TestFile_NameOrder preserves definition order for both tables.
func TestFile_NameOrder(t *testing.T) {
	f := meshfile.NewFile()
	require.NoError(t, f.AddDim("b", 1))
	require.NoError(t, f.AddDim("a", 2))
	require.NoError(t, f.AddInts("second", []string{"a"}, []int64{1, 2}))
	require.NoError(t, f.AddFloats("first", []string{"b"}, []float64{3}))

	assert.Equal(t, []string{"b", "a"}, f.DimNames())
	assert.Equal(t, []string{"second", "first"}, f.VarNames())
}
