/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	cache, err := NewCache(t.TempDir(), "test")
	require.NoError(t, err)
	defer cache.Close()

	_, err = cache.Get([]byte("nil"))
	assert.True(t, IsNotFound(err))

	require.NoError(t, cache.Put([]byte("key1"), []byte("v")))
	ok, err := cache.Has([]byte("key1"))
	assert.NoError(t, err)
	assert.True(t, ok)

	val, err := cache.Get([]byte("key1"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	assert.NoError(t, cache.Delete([]byte("key1")))
	// delete again
	assert.NoError(t, cache.Delete([]byte("key1")))
	ok, err = cache.Has([]byte("key1"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryPrefix(t *testing.T) {
	cache, err := NewCache(t.TempDir(), "test")
	require.NoError(t, err)
	defer cache.Close()

	const prefix = "prefix:"
	for _, k := range []string{"1", "2", "3"} {
		require.NoError(t, cache.Put([]byte(prefix+k), []byte("v"+k)))
	}
	require.NoError(t, cache.Put([]byte("1"), nil))
	require.NoError(t, cache.Put([]byte("prefix"), nil))

	values, err := cache.QueryPrefix(prefix)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"1": []byte("v1"),
		"2": []byte("v2"),
		"3": []byte("v3"),
	}, values)
}

func TestCacheNamespaces(t *testing.T) {
	dir := t.TempDir()
	first, err := NewCache(dir, "first")
	require.NoError(t, err)
	require.NoError(t, first.Put([]byte("k:a"), []byte("1")))
	require.NoError(t, first.Close())

	second, err := NewCache(dir, "second")
	require.NoError(t, err)
	defer second.Close()

	ok, err := second.Has([]byte("k:a"))
	assert.NoError(t, err)
	assert.False(t, ok)

	values, err := second.QueryPrefix("k:")
	assert.NoError(t, err)
	assert.Empty(t, values)
}
