package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicator_InMemory(t *testing.T) {
	d := NewDeduplicator(nil, testLogger())
	ctx := context.Background()

	seen, err := d.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, seen)

	d.MarkSeen(ctx, "abc123")

	seen, err = d.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestDeduplicator_LoadExistingHashes(t *testing.T) {
	d := NewDeduplicator(nil, testLogger())
	ctx := context.Background()

	d.LoadExistingHashes([]string{"h1", "h2"})

	seen, err := d.Seen(ctx, "h1")
	require.NoError(t, err)
	assert.True(t, seen)

	assert.Equal(t, 2, d.Stats()["memory_cache_size"])
}

func TestDeduplicator_Clear(t *testing.T) {
	d := NewDeduplicator(nil, testLogger())
	ctx := context.Background()

	d.MarkSeen(ctx, "abc123")
	d.Clear()

	seen, err := d.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, seen)
	assert.Equal(t, 0, d.Stats()["memory_cache_size"])
}
