package persistence

import "errors"

var (
	// ErrCorrupt indicates structurally invalid snapshot data
	// (negative counts, impossible sizes, trailing garbage).
	ErrCorrupt = errors.New("corrupt snapshot data")

	// ErrTruncated indicates the snapshot stream ended before the
	// encoded structure was complete.
	ErrTruncated = errors.New("truncated snapshot data")
)

// CompressionType selects the algorithm applied to a snapshot body.
type CompressionType uint8

const (
	// CompressionNone stores the snapshot uncompressed, in the raw
	// interchange format.
	CompressionNone CompressionType = 0
	// CompressionLZ4 applies LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD applies ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)
