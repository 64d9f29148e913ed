// Package persistence provides the low-level binary plumbing for forest
// snapshots: little-endian primitive IO, atomic file save/load helpers,
// and optional whole-snapshot compression.
//
// The snapshot structure itself (pre-order node layout) is owned by the
// root package; persistence stays agnostic of the tree shape.
package persistence

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer writes snapshot primitives in little-endian byte order.
type Writer struct {
	w         io.Writer
	byteOrder binary.ByteOrder
}

// NewWriter creates a snapshot primitive writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:         w,
		byteOrder: binary.LittleEndian,
	}
}

// WriteInt32 writes a single int32.
func (bw *Writer) WriteInt32(v int32) error {
	return binary.Write(bw.w, bw.byteOrder, v)
}

// WriteFloat64 writes a single float64.
func (bw *Writer) WriteFloat64(v float64) error {
	return binary.Write(bw.w, bw.byteOrder, v)
}

// WriteInt32Slice writes each element of the slice in order.
func (bw *Writer) WriteInt32Slice(vs []int32) error {
	return binary.Write(bw.w, bw.byteOrder, vs)
}

// Reader reads snapshot primitives in little-endian byte order.
// Any short read is reported as ErrTruncated.
type Reader struct {
	r         io.Reader
	byteOrder binary.ByteOrder
}

// NewReader creates a snapshot primitive reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:         r,
		byteOrder: binary.LittleEndian,
	}
}

// ReadInt32 reads a single int32.
func (br *Reader) ReadInt32() (int32, error) {
	var v int32
	if err := binary.Read(br.r, br.byteOrder, &v); err != nil {
		return 0, truncated(err)
	}
	return v, nil
}

// ReadFloat64 reads a single float64.
func (br *Reader) ReadFloat64() (float64, error) {
	var v float64
	if err := binary.Read(br.r, br.byteOrder, &v); err != nil {
		return 0, truncated(err)
	}
	return v, nil
}

// maxSliceReadChunk bounds how many int32 values are allocated and read at
// once. count comes from the stream and may lie; reading in chunks means a
// hostile count costs at most one chunk before the short read surfaces.
const maxSliceReadChunk = 64 * 1024

// ReadInt32Slice reads count int32 values.
func (br *Reader) ReadInt32Slice(count int) ([]int32, error) {
	if count == 0 {
		return nil, nil
	}

	vs := make([]int32, 0, min(count, maxSliceReadChunk))
	chunk := make([]int32, min(count, maxSliceReadChunk))
	for len(vs) < count {
		n := min(count-len(vs), maxSliceReadChunk)
		if err := binary.Read(br.r, br.byteOrder, chunk[:n]); err != nil {
			return nil, truncated(err)
		}
		vs = append(vs, chunk[:n]...)
	}
	return vs, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}

// SaveToFile writes a snapshot to filename atomically: the data is written
// to a temp file in the same directory, synced, and renamed over the target.
func SaveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	// Temp file in the same directory so the rename is atomic.
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Success: prevent deferred cleanup from removing the final file.
	tmpName = ""
	return nil
}

// LoadFromFile reads a snapshot from filename through a buffered reader.
func LoadFromFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewReaderSize(f, 256*1024)
	return readFunc(buf)
}
