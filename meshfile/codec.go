// This file implements the canonical binary layout: magic, version, the
// dimension table, then the variable table, all little-endian.
package meshfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// fileMagic opens every encoded stream.
	fileMagic = "LVMF"

	// formatVersion is the layout version this package reads and writes.
	formatVersion = 1

	// maxNameLen bounds decoded dimension and variable names.
	maxNameLen = 1 << 12

	// maxPayload bounds a decoded payload's element count.
	maxPayload = 1 << 32
)

// stickyWriter carries the first write error through the encode sequence.
type stickyWriter struct {
	w   *bufio.Writer
	err error
}

// write emits one fixed-size value or slice little-endian.
func (sw *stickyWriter) write(v any) {
	if sw.err != nil {
		return
	}
	sw.err = binary.Write(sw.w, binary.LittleEndian, v)
}

// writeName emits a length-prefixed name.
func (sw *stickyWriter) writeName(s string) {
	sw.write(uint32(len(s)))
	if sw.err == nil {
		_, sw.err = sw.w.WriteString(s)
	}
}

// Encode writes the file to w in the canonical layout: magic, version,
// the dimension table in definition order, then the variable table in
// definition order with each payload length-prefixed.
func (f *File) Encode(w io.Writer) error {
	sw := &stickyWriter{w: bufio.NewWriter(w)}
	sw.write([]byte(fileMagic))
	sw.write(uint16(formatVersion))

	// Stage 1: the dimension table.
	sw.write(uint32(len(f.dimOrder)))
	for _, name := range f.dimOrder {
		sw.writeName(name)
		sw.write(f.dims[name])
	}

	// Stage 2: the variable table.
	sw.write(uint32(len(f.varOrder)))
	for _, name := range f.varOrder {
		v := f.vars[name]
		sw.writeName(name)
		kind := uint8(0)
		if v.isInt {
			kind = 1
		}
		sw.write(kind)
		sw.write(uint16(len(v.dims)))
		for _, d := range v.dims {
			sw.writeName(d)
		}
		if v.isInt {
			sw.write(uint64(len(v.ints)))
			sw.write(v.ints)
		} else {
			sw.write(uint64(len(v.floats)))
			sw.write(v.floats)
		}
	}
	if sw.err != nil {
		return fmt.Errorf("Encode: %w", sw.err)
	}

	return sw.w.Flush()
}

// corrupt wraps a low-level decode failure into ErrCorrupt.
func corrupt(what string, err error) error {
	return fmt.Errorf("Decode: %s: %v: %w", what, err, ErrCorrupt)
}

// readName reads a length-prefixed name, bounding its length.
func readName(br *bufio.Reader) (string, error) {
	var n uint32
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n == 0 || n > maxNameLen {
		return "", fmt.Errorf("name length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(br, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// Decode reads a file in the canonical layout from r.
// Returns ErrBadMagic when the stream does not open with the format magic,
// ErrBadVersion for a layout this package cannot read, and ErrCorrupt for
// truncation or internal inconsistency (duplicate names, unknown
// dimensions, payload/extent mismatch).
func Decode(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	// Stage 1: magic and version.
	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("Decode: magic: %v: %w", err, ErrBadMagic)
	}
	if string(magic) != fileMagic {
		return nil, fmt.Errorf("Decode: magic %q: %w", magic, ErrBadMagic)
	}
	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, corrupt("version", err)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("Decode: version %d, support %d: %w", version, formatVersion, ErrBadVersion)
	}

	f := NewFile()

	// Stage 2: the dimension table.
	var ndims uint32
	if err := binary.Read(br, binary.LittleEndian, &ndims); err != nil {
		return nil, corrupt("dimension count", err)
	}
	var (
		i      uint32
		name   string
		extent int64
		err    error
	)
	for i = 0; i < ndims; i++ {
		if name, err = readName(br); err != nil {
			return nil, corrupt("dimension name", err)
		}
		if err = binary.Read(br, binary.LittleEndian, &extent); err != nil {
			return nil, corrupt("dimension extent", err)
		}
		if err = f.AddDim(name, extent); err != nil {
			return nil, fmt.Errorf("Decode: %v: %w", err, ErrCorrupt)
		}
	}

	// Stage 3: the variable table.
	var nvars uint32
	if err = binary.Read(br, binary.LittleEndian, &nvars); err != nil {
		return nil, corrupt("variable count", err)
	}
	var (
		kind  uint8
		nd    uint16
		j     uint16
		count uint64
		want  int64
		ext   int64
		ok    bool
	)
	for i = 0; i < nvars; i++ {
		if name, err = readName(br); err != nil {
			return nil, corrupt("variable name", err)
		}
		if err = binary.Read(br, binary.LittleEndian, &kind); err != nil {
			return nil, corrupt("variable kind", err)
		}
		if kind > 1 {
			return nil, fmt.Errorf("Decode: variable %q: kind %d: %w", name, kind, ErrCorrupt)
		}
		if err = binary.Read(br, binary.LittleEndian, &nd); err != nil {
			return nil, corrupt("variable rank", err)
		}
		dims := make([]string, nd)
		for j = 0; j < nd; j++ {
			if dims[j], err = readName(br); err != nil {
				return nil, corrupt("variable dimension", err)
			}
		}

		// The declared extents bound the payload before it is allocated.
		want = 1
		for _, d := range dims {
			if ext, ok = f.dims[d]; !ok {
				return nil, fmt.Errorf("Decode: variable %q: dimension %q: %w", name, d, ErrCorrupt)
			}
			want *= ext
		}
		if err = binary.Read(br, binary.LittleEndian, &count); err != nil {
			return nil, corrupt("payload length", err)
		}
		if want < 0 || want > maxPayload || count != uint64(want) {
			return nil, fmt.Errorf("Decode: variable %q: %d values for extent %d: %w",
				name, count, want, ErrCorrupt)
		}

		if kind == 1 {
			data := make([]int64, count)
			if err = binary.Read(br, binary.LittleEndian, data); err != nil {
				return nil, corrupt("variable payload", err)
			}
			err = f.AddInts(name, dims, data)
		} else {
			data := make([]float64, count)
			if err = binary.Read(br, binary.LittleEndian, data); err != nil {
				return nil, corrupt("variable payload", err)
			}
			err = f.AddFloats(name, dims, data)
		}
		if err != nil {
			return nil, fmt.Errorf("Decode: %v: %w", err, ErrCorrupt)
		}
	}

	return f, nil
}
