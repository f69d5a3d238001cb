package safepath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAcceptsBareFilenames(t *testing.T) {
	root := t.TempDir()

	got, err := Resolve(root, "notes.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "notes.txt"), got)

	got, err = Resolve(root, "report-2024.pdf")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "report-2024.pdf"), got)
}

func TestResolveRejectsTraversal(t *testing.T) {
	root := t.TempDir()

	cases := []string{
		"",
		".",
		"..",
		"../secret.txt",
		"../../etc/passwd",
		"sub/notes.txt",
		"/etc/passwd",
	}
	for _, name := range cases {
		_, err := Resolve(root, name)
		require.ErrorIs(t, err, ErrTraversal, "name %q must be rejected", name)
	}
}

func TestResolveWithRelativeRoot(t *testing.T) {
	got, err := Resolve("uploads", "a.txt")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))

	_, err = Resolve("uploads", "../a.txt")
	require.ErrorIs(t, err, ErrTraversal)
}
