package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	modified := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	e := File("/x/run.sh", WithMode(0o755), WithSize(42), WithModified(modified))

	assert.Equal(t, "run.sh", e.Name())
	assert.True(t, e.IsExecutable())
	assert.Equal(t, int64(42), e.Metadata().Size)
	assert.Equal(t, modified, e.Metadata().Modified)

	d := Dir("/x/src")
	assert.Equal(t, entry.Directory, d.Kind())
	assert.True(t, d.Permissions().User.Rights.Has(entry.Execute))
}

func TestShuffledIsDeterministic(t *testing.T) {
	entries := []entry.Entry{File("/a"), File("/b"), File("/c"), File("/d"), File("/e")}
	first := Names(Shuffled(entries, 7))
	second := Names(Shuffled(entries, 7))

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, Names(entries), first)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, Names(entries))
}

func TestMemTree(t *testing.T) {
	mem := MemTree(t, "/fixture", Node{Path: "src/main.rs", Content: "fn main() {}"}, Node{Path: "empty/"})

	data, err := afero.ReadFile(mem, "/fixture/src/main.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}", string(data))

	info, err := mem.Stat("/fixture/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskTree(t *testing.T) {
	root := DiskTree(t, Node{Path: "bin/tool", Mode: 0o750}, Node{Path: "docs/"})

	info, err := os.Stat(filepath.Join(root, "bin", "tool"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(root, "docs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestClearEnv(t *testing.T) {
	t.Setenv("XFTEST_ONE", "1")
	t.Setenv("XFTEST_TWO", "2")
	t.Setenv("OTHER_XFTEST", "3")

	t.Run("cleared", func(t *testing.T) {
		ClearEnv(t, "XFTEST_")
		_, ok := os.LookupEnv("XFTEST_ONE")
		assert.False(t, ok)
		_, ok = os.LookupEnv("XFTEST_TWO")
		assert.False(t, ok)
		assert.Equal(t, "3", os.Getenv("OTHER_XFTEST"))
	})

	assert.Equal(t, "1", os.Getenv("XFTEST_ONE"))
	assert.Equal(t, "2", os.Getenv("XFTEST_TWO"))
}
