package meshfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlspec/meshfile"
)

// TestObjectType_Strings covers the labels and validity of every class.
func TestObjectType_Strings(t *testing.T) {
	cases := []struct {
		t     meshfile.ObjectType
		label string
	}{
		{meshfile.NodeBlock, "node block"},
		{meshfile.NodeSet, "node set"},
		{meshfile.EdgeBlock, "edge block"},
		{meshfile.EdgeSet, "edge set"},
		{meshfile.FaceBlock, "face block"},
		{meshfile.FaceSet, "face set"},
		{meshfile.ElemBlock, "element block"},
		{meshfile.ElemSet, "element set"},
		{meshfile.SideSet, "side set"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, tc.t.String())
		assert.True(t, tc.t.Valid())
	}
	assert.False(t, meshfile.ObjectType(42).Valid())
	assert.Equal(t, "object type 42", meshfile.ObjectType(42).String())
}

// TestSeverity_Predicates checks the outcome grading.
func TestSeverity_Predicates(t *testing.T) {
	ok := meshfile.Outcome{Severity: meshfile.SeverityOK}
	assert.True(t, ok.OK())
	assert.False(t, ok.Warning())
	assert.False(t, ok.Fatal())

	warn := meshfile.Outcome{Severity: meshfile.SeverityWarning}
	assert.True(t, warn.Warning())
	assert.False(t, warn.OK())

	fat := meshfile.Outcome{Severity: meshfile.SeverityFatal}
	assert.True(t, fat.Fatal())
	assert.False(t, fat.OK())

	assert.Equal(t, "ok", meshfile.SeverityOK.String())
	assert.Equal(t, "warning", meshfile.SeverityWarning.String())
	assert.Equal(t, "fatal", meshfile.SeverityFatal.String())
	assert.Equal(t, "unknown", meshfile.Severity(9).String())
}
