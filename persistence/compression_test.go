package persistence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	compressible := bytes.Repeat([]byte("hyperedge "), 500)
	incompressible := make([]byte, 256)
	for i := range incompressible {
		incompressible[i] = byte(i*131 + 17)
	}

	for _, ct := range []CompressionType{CompressionLZ4, CompressionZSTD} {
		t.Run(ct.name(), func(t *testing.T) {
			t.Run("RoundTrip", func(t *testing.T) {
				packed, err := Compress(compressible, ct)
				require.NoError(t, err)
				assert.Less(t, len(packed), len(compressible))

				got, err := Decompress(packed, ct)
				require.NoError(t, err)
				assert.Equal(t, compressible, got)
			})

			t.Run("IncompressibleFallback", func(t *testing.T) {
				packed, err := Compress(incompressible, ct)
				require.NoError(t, err)

				got, err := Decompress(packed, ct)
				require.NoError(t, err)
				assert.Equal(t, incompressible, got)
			})

			t.Run("TruncatedBody", func(t *testing.T) {
				packed, err := Compress(compressible, ct)
				require.NoError(t, err)

				_, err = Decompress(packed[:len(packed)/2], ct)
				assert.Error(t, err)
			})
		})
	}

	t.Run("None", func(t *testing.T) {
		packed, err := Compress(compressible, CompressionNone)
		require.NoError(t, err)
		assert.Equal(t, compressible, packed)

		got, err := Decompress(packed, CompressionNone)
		require.NoError(t, err)
		assert.Equal(t, compressible, got)
	})

	t.Run("HeaderTooSmall", func(t *testing.T) {
		_, err := Decompress([]byte{1, 2, 3}, CompressionZSTD)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func (c CompressionType) name() string {
	switch c {
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return "None"
	}
}
