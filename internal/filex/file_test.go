package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLimited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cert.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0o600))

	b, err := ReadLimited(path, 1024)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7", string(b))

	_, err = ReadLimited(path, 3)
	require.ErrorContains(t, err, "the limit is 3")

	_, err = ReadLimited(dir, 1024)
	require.ErrorContains(t, err, "is a directory")

	_, err = ReadLimited(filepath.Join(dir, "missing.pdf"), 1024)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenAppend_CreatesParentsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "portal.log")

	for _, line := range []string{"one\n", "two\n"} {
		f, err := OpenAppend(path)
		require.NoError(t, err)
		_, err = f.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(b))
}
