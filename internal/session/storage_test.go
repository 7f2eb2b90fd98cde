package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStorage(t *testing.T) *FileStorage {
	t.Helper()
	fs, err := NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return fs
}

func TestFileStorageRoundTrip(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)

	rec := Record{Token: "tok-123", Identity: "a@x.com", ExpiresAt: 1790000000000}
	require.NoError(t, fs.Save(rec))

	got, found, err := fs.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, rec, got)
}

func TestFileStorageAbsentFile(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)

	_, found, err := fs.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStorageCorruptFile(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(fs.Path()), 0o700))
	require.NoError(t, os.WriteFile(fs.Path(), []byte("{not json"), 0o600))

	_, _, err := fs.Load()
	assert.Error(t, err)
}

func TestFileStorageEmptyFile(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(fs.Path()), 0o700))
	require.NoError(t, os.WriteFile(fs.Path(), nil, 0o600))

	_, _, err := fs.Load()
	assert.Error(t, err)
}

func TestFileStorageClear(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)
	require.NoError(t, fs.Save(Record{Token: "tok"}))
	require.NoError(t, fs.Clear())

	_, found, err := fs.Load()
	require.NoError(t, err)
	assert.False(t, found)

	// Clearing again is not an error.
	assert.NoError(t, fs.Clear())
}

func TestFileStoragePermissions(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)
	require.NoError(t, fs.Save(Record{Token: "tok"}))

	info, err := os.Stat(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStorageOmitsZeroExpiry(t *testing.T) {
	t.Parallel()

	fs := tempStorage(t)
	require.NoError(t, fs.Save(Record{Token: "tok", Identity: "a@x.com"}))

	raw, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "expiresAt")
}
