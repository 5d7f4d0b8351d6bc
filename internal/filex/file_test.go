package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("downloads")
	require.NoError(t, err)

	want := filepath.Join(tmp, "downloads")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureSubdDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureSubdDir("downloads")
	require.NoError(t, err)

	second, err := EnsureSubdDir("downloads")
	require.NoError(t, err)

	require.Equal(t, first, second)
	fi, err := os.Stat(second)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("downloads", []byte("x"), 0o660))

	_, err := EnsureSubdDir("downloads")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestWriteFile_CreatesParents(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "out.bin")

	require.NoError(t, WriteFile(path, []byte("cipher")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("cipher"), got)

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestWriteFile_RelativeInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, WriteFile("plain.bin", []byte{1}))
	_, err := os.Stat(filepath.Join(tmp, "plain.bin"))
	require.NoError(t, err)
}

func TestReadOptional(t *testing.T) {
	data, err := ReadOptional("")
	require.NoError(t, err)
	require.Nil(t, data)

	path := filepath.Join(t.TempDir(), "k")
	require.NoError(t, os.WriteFile(path, []byte("key"), 0o600))
	data, err = ReadOptional(path)
	require.NoError(t, err)
	require.Equal(t, []byte("key"), data)

	_, err = ReadOptional(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
