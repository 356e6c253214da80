// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCacheDir points the cache at a fresh temp dir with caching enabled.
func withCacheDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TEXTDIFF_CACHE_DIR", dir)
	t.Setenv("TEXTDIFF_CACHE", "")
	return dir
}

func TestDir_WithCacheDirEnv(t *testing.T) {
	customDir := withCacheDir(t)

	result, ok := Dir()

	assert.True(t, ok)
	assert.Equal(t, customDir, result)
}

func TestDir_FallsBackToUserCacheDir(t *testing.T) {
	t.Setenv("TEXTDIFF_CACHE_DIR", "")

	result, ok := Dir()
	if ok {
		assert.True(t, filepath.IsAbs(result))
		assert.Equal(t, "textdiff", filepath.Base(result))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("TEXTDIFF_CACHE", tt.value)
			assert.Equal(t, tt.expected, Enabled())
		})
	}
}

func TestEnsureBaseDir(t *testing.T) {
	dir := filepath.Join(withCacheDir(t), "nested", "base")
	t.Setenv("TEXTDIFF_CACHE_DIR", dir)

	path, ok, err := EnsureBaseDir()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, path)
	assert.DirExists(t, dir)
}

func TestEnsureBaseDir_CachingDisabled(t *testing.T) {
	withCacheDir(t)
	t.Setenv("TEXTDIFF_CACHE", "0")

	path, ok, err := EnsureBaseDir()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestWriteRead_PreservesBytes(t *testing.T) {
	withCacheDir(t)
	sub := []string{"s3", "bucket"}
	data := []byte("  line one\r\nline two\n\n")

	require.NoError(t, Write(sub, "s3://bucket/key", data))

	got, ok := Read(sub, "s3://bucket/key")
	require.True(t, ok)
	assert.Equal(t, data, got)

	p, ok := entryPath(sub, "s3://bucket/key")
	require.True(t, ok)
	assert.Equal(t, encodeKey("s3://bucket/key"), filepath.Base(p))
	assert.FileExists(t, p)
}

func TestRead_Miss(t *testing.T) {
	withCacheDir(t)

	_, ok := Read([]string{"http"}, "https://example.com/missing")
	assert.False(t, ok)
}

func TestWrite_CachingDisabled(t *testing.T) {
	dir := withCacheDir(t)
	t.Setenv("TEXTDIFF_CACHE", "false")

	require.NoError(t, Write([]string{"x"}, "k", []byte("v")))
	_, err := os.Stat(filepath.Join(dir, "x"))
	assert.True(t, os.IsNotExist(err))

	_, ok := Read([]string{"x"}, "k")
	assert.False(t, ok)
}

func TestReadThrough(t *testing.T) {
	withCacheDir(t)
	calls := 0
	fetch := func() ([]byte, error) {
		calls++
		return []byte("fetched\n"), nil
	}

	got, err := ReadThrough([]string{"git"}, "git:HEAD:README.md", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched\n", string(got))

	got, err = ReadThrough([]string{"git"}, "git:HEAD:README.md", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched\n", string(got))
	assert.Equal(t, 1, calls)
}

func TestReadThrough_FetchError(t *testing.T) {
	withCacheDir(t)
	boom := errors.New("boom")

	_, err := ReadThrough([]string{"http"}, "k", func() ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, ok := Read([]string{"http"}, "k")
	assert.False(t, ok)
}

func TestPurge(t *testing.T) {
	withCacheDir(t)
	sub := []string{"http"}
	require.NoError(t, Write(sub, "old", []byte("old")))
	require.NoError(t, Write(sub, "new", []byte("new")))

	oldPath, _ := entryPath(sub, "old")
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, stale, stale))

	require.NoError(t, Purge(24))

	_, ok := Read(sub, "old")
	assert.False(t, ok)
	_, ok = Read(sub, "new")
	assert.True(t, ok)
}

func TestPurge_DisabledWithZeroHours(t *testing.T) {
	withCacheDir(t)
	sub := []string{"http"}
	require.NoError(t, Write(sub, "old", []byte("old")))
	oldPath, _ := entryPath(sub, "old")
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, stale, stale))

	require.NoError(t, Purge(0))

	_, ok := Read(sub, "old")
	assert.True(t, ok)
}

func TestEncodeKey(t *testing.T) {
	a := encodeKey("s3://bucket/a.txt")
	assert.Len(t, a, 64)
	assert.Equal(t, a, encodeKey("s3://bucket/a.txt"))
	assert.NotEqual(t, a, encodeKey("s3://bucket/b.txt"))
}
