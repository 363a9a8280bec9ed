package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Node declares one path in a fixture tree. A path ending in "/" is a
// directory; anything else is a file holding Content.
type Node struct {
	Path    string
	Content string
	Mode    os.FileMode
}

// Paths turns bare paths into nodes with empty content.
func Paths(paths ...string) []Node {
	nodes := make([]Node, len(paths))
	for i, p := range paths {
		nodes[i] = Node{Path: p}
	}
	return nodes
}

func (n Node) isDir() bool { return strings.HasSuffix(n.Path, "/") }

func (n Node) mode() os.FileMode {
	switch {
	case n.Mode != 0:
		return n.Mode
	case n.isDir():
		return 0o755
	default:
		return 0o644
	}
}

// MemTree builds the nodes under root in a fresh afero.MemMapFs.
func MemTree(t testing.TB, root string, nodes ...Node) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll(root, 0o755))
	for _, n := range nodes {
		full := filepath.Join(root, filepath.FromSlash(n.Path))
		if n.isDir() {
			require.NoError(t, mem.MkdirAll(full, n.mode()))
			continue
		}
		require.NoError(t, mem.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, afero.WriteFile(mem, full, []byte(n.Content), n.mode()))
	}
	return mem
}

// DiskTree builds the nodes in a temporary directory and returns its path.
// The directory is removed when the test ends.
func DiskTree(t testing.TB, nodes ...Node) string {
	t.Helper()
	root := t.TempDir()
	for _, n := range nodes {
		full := filepath.Join(root, filepath.FromSlash(n.Path))
		if n.isDir() {
			require.NoError(t, os.MkdirAll(full, 0o755))
			require.NoError(t, os.Chmod(full, n.mode()))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(n.Content), n.mode()))
		require.NoError(t, os.Chmod(full, n.mode()))
	}
	return root
}
