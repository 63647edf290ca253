// This file declares the object taxonomy and the naming scheme tying an
// object to its dimensions and variables.
package meshfile

import "fmt"

// ObjectType classifies the mesh objects a file can carry: the whole-mesh
// node block, the element/edge/face blocks, and the named sets.
type ObjectType uint8

const (
	// NodeBlock is the single whole-mesh node block.
	NodeBlock ObjectType = iota

	// NodeSet is a named collection of nodes.
	NodeSet

	// EdgeBlock is a block of edges of one topology.
	EdgeBlock

	// EdgeSet is a named collection of edges.
	EdgeSet

	// FaceBlock is a block of faces of one topology.
	FaceBlock

	// FaceSet is a named collection of faces.
	FaceSet

	// ElemBlock is a block of elements of one topology.
	ElemBlock

	// ElemSet is a named collection of elements.
	ElemSet

	// SideSet is a named collection of element sides. Side sets carry
	// distribution factors, not attributes.
	SideSet
)

// naming ties an object type to its label and variable-name fragments.
type naming struct {
	label   string // human label used in messages
	stem    string // fragment of the per-object names
	indexed bool   // resolves ids through a lookup table
	attribs bool   // can carry attribute variables
}

var namings = map[ObjectType]naming{
	NodeBlock: {label: "node block", stem: "node", indexed: false, attribs: true},
	NodeSet:   {label: "node set", stem: "node_set", indexed: true, attribs: true},
	EdgeBlock: {label: "edge block", stem: "edge_block", indexed: true, attribs: true},
	EdgeSet:   {label: "edge set", stem: "edge_set", indexed: true, attribs: true},
	FaceBlock: {label: "face block", stem: "face_block", indexed: true, attribs: true},
	FaceSet:   {label: "face set", stem: "face_set", indexed: true, attribs: true},
	ElemBlock: {label: "element block", stem: "elem_block", indexed: true, attribs: true},
	ElemSet:   {label: "element set", stem: "elem_set", indexed: true, attribs: true},
	SideSet:   {label: "side set", stem: "side_set", indexed: true, attribs: false},
}

// String returns the human label of the type.
func (t ObjectType) String() string {
	nm, ok := namings[t]
	if !ok {
		return fmt.Sprintf("object type %d", uint8(t))
	}

	return nm.label
}

// Valid reports whether t is one of the known object classes.
func (t ObjectType) Valid() bool {
	_, ok := namings[t]

	return ok
}

// countDim names the dimension counting registered objects of the type.
func (t ObjectType) countDim() string { return "num_" + namings[t].stem }

// idsVar names the id-lookup table of the type.
func (t ObjectType) idsVar() string { return "ids_" + namings[t].stem }

// statusVar names the status table of the type.
func (t ObjectType) statusVar() string { return "status_" + namings[t].stem }

// entriesDim names the entry-count dimension of the object at 1-based
// index k. The node block has a fixed name and ignores k.
func (t ObjectType) entriesDim(k int) string {
	if t == NodeBlock {
		return "num_nodes"
	}

	return fmt.Sprintf("num_entries_%s%d", namings[t].stem, k)
}

// attribDim names the attribute-count dimension of the object at index k.
func (t ObjectType) attribDim(k int) string {
	if t == NodeBlock {
		return "num_attrib_node"
	}

	return fmt.Sprintf("num_attrib_%s%d", namings[t].stem, k)
}

// attribVar names the attribute variable of the object at index k.
func (t ObjectType) attribVar(k int) string {
	if t == NodeBlock {
		return "attrib_node"
	}

	return fmt.Sprintf("attrib_%s%d", namings[t].stem, k)
}
