package meshfile_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlspec/meshfile"
)

// benchFile builds a file with nblocks element blocks of 8 entries and 4
// attributes each.
func benchFile(b *testing.B, nblocks int) *meshfile.File {
	b.Helper()
	f := meshfile.NewFile()
	row := []float64{1, 2, 3, 4}
	attribs := [][]float64{row, row, row, row, row, row, row, row}
	for i := 0; i < nblocks; i++ {
		if err := f.AddObject(meshfile.ElemBlock, int64(100+i), 8, attribs); err != nil {
			b.Fatal(err)
		}
	}

	return f
}

// BenchmarkAttributes times the query against a mid-table id.
func BenchmarkAttributes(b *testing.B) {
	f := benchFile(b, 64)
	id := int64(100 + 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, out := f.Attributes(meshfile.ElemBlock, id); !out.OK() {
			b.Fatal(out.Message)
		}
	}
}

// BenchmarkDecode times a full decode of an encoded file.
func BenchmarkDecode(b *testing.B) {
	var buf bytes.Buffer
	if err := benchFile(b, 64).Encode(&buf); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := meshfile.Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncode times encoding across file sizes.
func BenchmarkEncode(b *testing.B) {
	for _, nblocks := range []int{16, 128} {
		b.Run(fmt.Sprintf("blocks%d", nblocks), func(b *testing.B) {
			f := benchFile(b, nblocks)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				if err := f.Encode(&buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
