package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMissThenPutThenHit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.sqlite")
	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get("http://example.com/japanese.model")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put("http://example.com/japanese.model", []byte("UW1:a\t1.0\n0.0\n")))

	content, ok, err := c.Get("http://example.com/japanese.model")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "UW1:a\t1.0\n0.0\n", string(content))
}

func TestCacheReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.sqlite")
	c1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c1.Put("uri-a", []byte("data")))
	require.NoError(t, c1.Close())

	c2, err := Open(path)
	require.NoError(t, err)
	defer c2.Close()
	content, ok, err := c2.Get("uri-a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data", string(content))
}
