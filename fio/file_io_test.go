package fio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileIO(t *testing.T) *FileIO {
	t.Helper()
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "data"))
	require.Nil(t, err)
	t.Cleanup(func() { _ = fio.Close() })
	return fio
}

func TestFileIO_WriteAt(t *testing.T) {
	fio := newFileIO(t)

	n, err := fio.WriteAt([]byte("hello"), 0)
	assert.Nil(t, err)
	assert.Equal(t, 5, n)

	// in-place overwrite at an arbitrary offset
	n, err = fio.WriteAt([]byte("J"), 0)
	assert.Nil(t, err)
	assert.Equal(t, 1, n)

	buf := make([]byte, 5)
	_, err = fio.ReadAt(buf, 0)
	assert.Nil(t, err)
	assert.Equal(t, []byte("Jello"), buf)
}

func TestFileIO_ReadAt(t *testing.T) {
	fio := newFileIO(t)

	_, err := fio.WriteAt([]byte("hello"), 0)
	assert.Nil(t, err)

	buf := make([]byte, 3)
	n, err := fio.ReadAt(buf, 2)
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("llo"), buf)
}

func TestFileIO_Size(t *testing.T) {
	fio := newFileIO(t)

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), size)

	_, err = fio.WriteAt([]byte("hello"), 10)
	assert.Nil(t, err)

	size, err = fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(15), size)
}

func TestFileIO_Sync(t *testing.T) {
	fio := newFileIO(t)

	_, err := fio.WriteAt([]byte("aaa"), 0)
	assert.Nil(t, err)
	assert.Nil(t, fio.Sync())
}
