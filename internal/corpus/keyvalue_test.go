package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueDB_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pron.bin")
	records := map[string][]byte{
		"gehen":  []byte("audio-gehen"),
		"laufen": []byte("audio-laufen"),
		"sein":   {},
	}
	require.NoError(t, WriteKeyValueFile(path, records))

	db, err := OpenKeyValueDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 3, db.Len())

	for key, want := range records {
		assert.True(t, db.Has(key))
		got, err := db.Read(key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestKeyValueDB_MissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pron.bin")
	require.NoError(t, WriteKeyValueFile(path, map[string][]byte{"gehen": []byte("x")}))

	db, err := OpenKeyValueDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, db.Has("fahren"))
	_, err = db.Read("fahren")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKeyValueDB_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pron.bin")
	require.NoError(t, WriteKeyValueFile(path, nil))

	db, err := OpenKeyValueDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 0, db.Len())
}

func TestOpenKeyValueDB_MissingFile(t *testing.T) {
	_, err := OpenKeyValueDB(filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}
