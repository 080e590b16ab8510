package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/cas"
	"go.trai.ch/bundle/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(filepath.Join(t.TempDir(), "store"))
	record := domain.IntegrityRecord{
		Path:    "/packages/Foo/1.0.0/Foo.1.0.0.nupkg",
		Size:    42,
		ModTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Digest:  "abc==",
	}

	require.NoError(t, store.Put(record))

	got, err := store.Get(record.Path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.Digest, got.Digest)
	assert.True(t, got.Matches(42, record.ModTime))
	assert.False(t, got.Matches(43, record.ModTime))
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(t.TempDir())
	got, err := store.Get("/nowhere.nupkg")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	record := domain.IntegrityRecord{Path: "/a.nupkg", Size: 1, ModTime: time.Unix(100, 0).UTC(), Digest: "d"}
	require.NoError(t, cas.NewStore(dir).Put(record))

	got, err := cas.NewStore(dir).Get("/a.nupkg")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d", got.Digest)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_CorruptRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cas.NewStore(dir)
	require.NoError(t, store.Put(domain.IntegrityRecord{Path: "/a.nupkg"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), domain.FilePerm))

	_, err = store.Get("/a.nupkg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStoreReadFailed.Error())
}
