package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchInvalidatesOnWrite(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	cache := NewCache()

	_, err := cache.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cache.Watch(ctx, path))

	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	assert.Eventually(t, func() bool {
		return cache.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchMissingDirectory(t *testing.T) {
	cache := NewCache()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := cache.Watch(ctx, "/does/not/exist/data.csv")
	require.Error(t, err)
}
