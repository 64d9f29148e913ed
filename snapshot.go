package hifgo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hupe1980/hifgo/blobstore"
	"github.com/hupe1980/hifgo/hyperedge"
	"github.com/hupe1980/hifgo/persistence"
)

// The snapshot interchange format is little-endian with no magic number or
// version tag:
//
//	int32 rootCount
//	per node, pre-order:
//	  int32 vertexCount
//	  vertexCount x int32 vertices
//	  float64 weight
//	  int32 childCount
//	  childCount nested nodes
//
// Vertex identifiers therefore must fit in an int32.

// Encode writes the forest to w in the snapshot interchange format.
func (f *Forest) Encode(w io.Writer) error {
	bw := persistence.NewWriter(w)

	if err := bw.WriteInt32(int32(len(f.roots))); err != nil {
		return err
	}

	stack := make([]*Node, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, f.roots[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := encodeNode(bw, n); err != nil {
			return err
		}

		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}

	return nil
}

func encodeNode(bw *persistence.Writer, n *Node) error {
	vertices := n.Vertices()

	if err := bw.WriteInt32(int32(len(vertices))); err != nil {
		return err
	}

	encoded := make([]int32, len(vertices))
	for i, v := range vertices {
		if v > math.MaxInt32 {
			return fmt.Errorf("vertex %d does not fit in the snapshot format", v)
		}
		encoded[i] = int32(v)
	}
	if err := bw.WriteInt32Slice(encoded); err != nil {
		return err
	}

	if err := bw.WriteFloat64(n.Weight()); err != nil {
		return err
	}

	return bw.WriteInt32(int32(len(n.children)))
}

// Decode reads a forest from r in the snapshot interchange format.
// A truncated or malformed stream yields an error and no forest.
func Decode(r io.Reader, optFns ...Option) (*Forest, error) {
	f := New(optFns...)
	br := persistence.NewReader(r)

	rootCount, err := br.ReadInt32()
	if err != nil {
		return nil, err
	}
	if rootCount < 0 {
		return nil, fmt.Errorf("%w: negative root count %d", persistence.ErrCorrupt, rootCount)
	}

	// Each frame tracks how many children of its node remain to be read;
	// the bottom frame with a nil node feeds the root list.
	type frame struct {
		node      *Node
		remaining int32
	}

	stack := []frame{{node: nil, remaining: rootCount}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.remaining == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		top.remaining--

		n, childCount, err := decodeNode(br)
		if err != nil {
			return nil, err
		}

		if top.node == nil {
			f.roots = append(f.roots, n)
		} else {
			top.node.addChild(n)
		}
		f.size++

		if childCount > 0 {
			stack = append(stack, frame{node: n, remaining: childCount})
		}
	}

	return f, nil
}

func decodeNode(br *persistence.Reader) (*Node, int32, error) {
	vertexCount, err := br.ReadInt32()
	if err != nil {
		return nil, 0, err
	}
	if vertexCount < 0 {
		return nil, 0, fmt.Errorf("%w: negative vertex count %d", persistence.ErrCorrupt, vertexCount)
	}

	encoded, err := br.ReadInt32Slice(int(vertexCount))
	if err != nil {
		return nil, 0, err
	}

	vertices := make([]uint32, len(encoded))
	for i, v := range encoded {
		if v < 0 {
			return nil, 0, fmt.Errorf("%w: negative vertex %d", persistence.ErrCorrupt, v)
		}
		vertices[i] = uint32(v)
	}

	weight, err := br.ReadFloat64()
	if err != nil {
		return nil, 0, err
	}

	childCount, err := br.ReadInt32()
	if err != nil {
		return nil, 0, err
	}
	if childCount < 0 {
		return nil, 0, fmt.Errorf("%w: negative child count %d", persistence.ErrCorrupt, childCount)
	}

	return newNode(hyperedge.New(vertices, weight)), childCount, nil
}

// Save writes the forest to a file in the raw interchange format.
// The write is atomic: a temp file is renamed over the target.
func (f *Forest) Save(filename string) error {
	start := time.Now()

	size := 0
	err := persistence.SaveToFile(filename, func(w io.Writer) error {
		cw := &countingWriter{w: w}
		if err := f.Encode(cw); err != nil {
			return err
		}
		size = cw.n
		return nil
	})

	f.metrics.RecordSnapshot(size, time.Since(start), err)
	f.logger.LogSnapshot(context.Background(), filename, size, err)

	return err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}

// Load reads a forest from a file in the raw interchange format.
func Load(filename string, optFns ...Option) (*Forest, error) {
	var f *Forest
	err := persistence.LoadFromFile(filename, func(r io.Reader) error {
		var decodeErr error
		f, decodeErr = Decode(r, optFns...)
		return decodeErr
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// SaveSnapshot encodes the forest, optionally compresses it, and writes it
// to the blob store under name.
func (f *Forest) SaveSnapshot(ctx context.Context, store blobstore.Store, name string, compression persistence.CompressionType) error {
	start := time.Now()

	size := 0
	err := func() error {
		var buf bytes.Buffer
		if err := f.Encode(&buf); err != nil {
			return err
		}

		body, err := persistence.Compress(buf.Bytes(), compression)
		if err != nil {
			return err
		}
		size = len(body)

		return store.Put(ctx, name, body)
	}()

	f.metrics.RecordSnapshot(size, time.Since(start), err)
	f.logger.LogSnapshot(ctx, name, size, err)

	return err
}

// LoadSnapshot reads a snapshot from the blob store and decodes it.
// compression must match the type used when the snapshot was saved.
func LoadSnapshot(ctx context.Context, store blobstore.Store, name string, compression persistence.CompressionType, optFns ...Option) (*Forest, error) {
	body, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	raw, err := persistence.Decompress(body, compression)
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(raw), optFns...)
}
