package hifgo

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		f := New()
		require.NotNil(t, f.logger)
		require.NotNil(t, f.metrics)
	})

	t.Run("NilResetsToNoop", func(t *testing.T) {
		f := New(WithLogger(nil), WithMetricsCollector(nil))
		require.NotNil(t, f.logger)
		require.NotNil(t, f.metrics)
	})

	t.Run("MetricsCollectorWiring", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		f := New(WithMetricsCollector(mc), WithLogLevel(slog.LevelError))

		f.Insert([]uint32{1, 2}, 1.0)
		f.Insert([]uint32{1}, 0.5)
		f.TopK(1)
		f.CountAboveThreshold(0.25)
		f.PruneBelow(0.75)

		stats := mc.GetStats()
		assert.Equal(t, int64(2), stats.InsertCount)
		assert.Equal(t, int64(2), stats.QueryCount)
		assert.Equal(t, int64(1), stats.MaintenanceCount)
	})
}
