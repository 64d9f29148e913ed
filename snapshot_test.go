package hifgo

import (
	"bytes"
	"context"
	"encoding/binary"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hifgo/blobstore"
	"github.com/hupe1980/hifgo/persistence"
)

func snapshotForest() *Forest {
	f := New()
	f.Insert([]uint32{1, 2, 3, 4, 5}, 5)
	f.Insert([]uint32{1, 2, 3}, 3)
	f.Insert([]uint32{1, 2}, 2)
	f.Insert([]uint32{7, 8, 9}, 4)
	f.Insert([]uint32{7, 8}, 1)
	return f
}

type nodeRecord struct {
	vertices []uint32
	weight   float64
}

func preorder(f *Forest) []nodeRecord {
	var records []nodeRecord
	for n := range f.All() {
		records = append(records, nodeRecord{vertices: n.Vertices(), weight: n.Weight()})
	}
	return records
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := snapshotForest()

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, f.Len(), decoded.Len())
	assert.Equal(t, f.RootCount(), decoded.RootCount())
	assert.Equal(t, preorder(f), preorder(decoded))
	require.NoError(t, decoded.Verify())
}

func TestSnapshotEmptyForest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf))

	// Just the root count.
	assert.Equal(t, 4, buf.Len())

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Len())
}

func TestSnapshotWireFormat(t *testing.T) {
	f := New()
	f.Insert([]uint32{1, 2}, 1.5)

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	// rootCount, vertexCount, 2 vertices, weight, childCount.
	require.Equal(t, 4+4+8+8+4, buf.Len())

	data := buf.Bytes()
	assert.Equal(t, int32(1), int32(binary.LittleEndian.Uint32(data[0:])))
	assert.Equal(t, int32(2), int32(binary.LittleEndian.Uint32(data[4:])))
	assert.Equal(t, int32(1), int32(binary.LittleEndian.Uint32(data[8:])))
	assert.Equal(t, int32(2), int32(binary.LittleEndian.Uint32(data[12:])))
}

func TestDecodeFailures(t *testing.T) {
	f := snapshotForest()

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))
	full := buf.Bytes()

	t.Run("Truncated", func(t *testing.T) {
		for _, cut := range []int{0, 1, 3, 7, len(full) / 2, len(full) - 1} {
			_, err := Decode(bytes.NewReader(full[:cut]))
			assert.ErrorIs(t, err, persistence.ErrTruncated, "cut at %d", cut)
		}
	})

	t.Run("NegativeRootCount", func(t *testing.T) {
		var bad bytes.Buffer
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(-1)))

		_, err := Decode(bytes.NewReader(bad.Bytes()))
		assert.ErrorIs(t, err, persistence.ErrCorrupt)
	})

	t.Run("HugeClaimedVertexCount", func(t *testing.T) {
		// 12 bytes claiming a 400M-vertex node: the decoder must fail on
		// the short stream without a count-sized allocation first.
		var bad bytes.Buffer
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(1)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(400_000_000)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(0)))

		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)

		_, err := Decode(bytes.NewReader(bad.Bytes()))

		runtime.ReadMemStats(&after)
		assert.ErrorIs(t, err, persistence.ErrTruncated)
		assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
	})

	t.Run("NegativeVertexCount", func(t *testing.T) {
		var bad bytes.Buffer
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(1)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(-4)))

		_, err := Decode(bytes.NewReader(bad.Bytes()))
		assert.ErrorIs(t, err, persistence.ErrCorrupt)
	})

	t.Run("NegativeVertex", func(t *testing.T) {
		var bad bytes.Buffer
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(1)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(1)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(-7)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, float64(1)))
		require.NoError(t, binary.Write(&bad, binary.LittleEndian, int32(0)))

		_, err := Decode(bytes.NewReader(bad.Bytes()))
		assert.ErrorIs(t, err, persistence.ErrCorrupt)
	})
}

func TestSaveLoadFile(t *testing.T) {
	f := snapshotForest()
	filename := filepath.Join(t.TempDir(), "forest.bin")

	require.NoError(t, f.Save(filename))

	loaded, err := Load(filename)
	require.NoError(t, err)

	assert.Equal(t, preorder(f), preorder(loaded))

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
		assert.Error(t, err)
	})
}

func TestSnapshotBlobstore(t *testing.T) {
	ctx := context.Background()
	f := snapshotForest()

	for _, compression := range []persistence.CompressionType{
		persistence.CompressionNone,
		persistence.CompressionLZ4,
		persistence.CompressionZSTD,
	} {
		store := blobstore.NewMemoryStore()

		require.NoError(t, f.SaveSnapshot(ctx, store, "forest.snap", compression))

		loaded, err := LoadSnapshot(ctx, store, "forest.snap", compression)
		require.NoError(t, err)
		assert.Equal(t, preorder(f), preorder(loaded))
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadSnapshot(ctx, blobstore.NewMemoryStore(), "nope", persistence.CompressionNone)
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}
