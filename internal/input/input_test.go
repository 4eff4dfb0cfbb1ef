package input

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "3   4\r\n4   3\r\n\r\n"

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestReadPlain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "day01.txt"), []byte(sample))

	text, err := NewProvider(dir).Read(1)
	require.NoError(t, err)
	assert.Equal(t, "3   4\n4   3", text)
}

func TestReadGzip(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	writeFile(t, filepath.Join(dir, "day02.txt.gz"), buf.Bytes())

	p := NewProvider(dir)
	path, err := p.Path(2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "day02.txt.gz"), path)

	text, err := p.Read(2)
	require.NoError(t, err)
	assert.Equal(t, "3   4\n4   3", text)
}

func TestReadZstd(t *testing.T) {
	dir := t.TempDir()

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "day12.txt.zst"), enc.EncodeAll([]byte(sample), nil))
	require.NoError(t, enc.Close())

	text, err := NewProvider(dir).Read(12)
	require.NoError(t, err)
	assert.Equal(t, "3   4\n4   3", text)
}

func TestPlainPreferred(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "day03.txt"), []byte("plain"))
	writeFile(t, filepath.Join(dir, "day03.txt.gz"), []byte("not gzip at all"))

	text, err := NewProvider(dir).Read(3)
	require.NoError(t, err)
	assert.Equal(t, "plain", text)
}

func TestNotFound(t *testing.T) {
	_, err := NewProvider(t.TempDir()).Read(7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCorruptGzip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "day04.txt.gz"), []byte("broken"))

	_, err := NewProvider(dir).Read(4)
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	a := Digest("1 2\n3 4\n")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Digest("1 2\r\n3 4"))
	assert.NotEqual(t, a, Digest("1 2\n3 5"))
}
