package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/xf/pkg/classify"
	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/errors"
	"github.com/arthur-debert/xf/pkg/filesystem"
	"github.com/arthur-debert/xf/pkg/filter"
	"github.com/arthur-debert/xf/pkg/scanner"
	"github.com/arthur-debert/xf/pkg/styles"
	"github.com/arthur-debert/xf/pkg/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 16, 9, 30, 0, 0, time.Local)

func TestHumansize(t *testing.T) {
	tests := []struct {
		size    int64
		decimal string
		integer string
	}{
		{0, "-", "-"},
		{1, "1", "1"},
		{1023, "1023", "1023"},
		{1024, "1.00K", "1K"},
		{1536, "1.50K", "1K"},
		{2048, "2.00K", "2K"},
		{1 << 20, "1.00M", "1M"},
		{5*(1<<20) + (1 << 19), "5.50M", "5M"},
		{1_073_741_824, "1.00G", "1G"},
		{1 << 40, "1.00T", "1T"},
		{1 << 50, "1.00P", "1P"},
		{3 << 60, "3072.00P", "3072P"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.size), func(t *testing.T) {
			assert.Equal(t, tt.decimal, Humansize(tt.size, SizeDecimal))
			assert.Equal(t, tt.integer, Humansize(tt.size, SizeInteger))
		})
	}
}

func TestParseSizeForm(t *testing.T) {
	f, err := ParseSizeForm("INTEGER")
	require.NoError(t, err)
	assert.Equal(t, SizeInteger, f)
	assert.Equal(t, "integer", f.String())

	f, err = ParseSizeForm("")
	require.NoError(t, err)
	assert.Equal(t, SizeDecimal, f)

	_, err = ParseSizeForm("metric")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPermissionString(t *testing.T) {
	assert.Equal(t, ".rwxr-x---", PermissionString(testutil.File("/r/tool", testutil.WithMode(0o750))))
	assert.Equal(t, "drwxr-xr-x", PermissionString(testutil.Dir("/r/src", testutil.WithMode(0o755))))
	assert.Equal(t, ".rw-r--r--", PermissionString(testutil.File("/r/a.txt")))
	assert.Equal(t, ".---------", PermissionString(testutil.File("/r/x", testutil.WithPermissions(entry.Permissions{}))))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(time.Time{}, now, DefaultTimeRecent, DefaultTimeOld))
	assert.Equal(t, "Oct 16 08:15", FormatDate(time.Date(2025, 10, 16, 8, 15, 0, 0, time.Local), now, DefaultTimeRecent, DefaultTimeOld))
	assert.Equal(t, "Mar  4  2023", FormatDate(time.Date(2023, 3, 4, 8, 15, 0, 0, time.Local), now, DefaultTimeRecent, DefaultTimeOld))
	assert.Equal(t, "2023-03-04", FormatDate(time.Date(2023, 3, 4, 8, 15, 0, 0, time.Local), now, DefaultTimeRecent, "2006-01-02"))
}

func TestList(t *testing.T) {
	modified := time.Date(2025, 10, 16, 8, 15, 0, 0, time.Local)
	entries := []entry.Entry{
		testutil.Dir("/r/src", testutil.WithModified(modified)),
		testutil.File("/r/foo.txt", testutil.WithSize(2048), testutil.WithModified(modified)),
		testutil.File("/r/run", testutil.WithSize(12), testutil.WithMode(0o750), testutil.WithModified(time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local))),
	}

	var buf bytes.Buffer
	require.NoError(t, List(&buf, entries, Options{Now: now}))
	assert.Equal(t, strings.Join([]string{
		"drwxr-xr-x     - Oct 16 08:15 src",
		".rw-r--r-- 2.00K Oct 16 08:15 foo.txt",
		".rwxr-x---    12 Jan  2  2024 run",
		"",
	}, "\n"), buf.String())

	buf.Reset()
	require.NoError(t, List(&buf, entries[1:2], Options{Now: now, Sizes: SizeInteger}))
	assert.Equal(t, ".rw-r--r-- 2K Oct 16 08:15 foo.txt\n", buf.String())
}

func TestGrid(t *testing.T) {
	entries := []entry.Entry{testutil.Dir("/r/dir"), testutil.File("/r/a.txt"), testutil.File("/r/b.txt")}

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"one row", 80, "dir  a.txt  b.txt\n"},
		{"exact fit", 17, "dir  a.txt  b.txt\n"},
		{"two columns", 12, "dir    a.txt\nb.txt\n"},
		{"one column", 10, "dir\na.txt\nb.txt\n"},
		{"never splits names", 2, "dir\na.txt\nb.txt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Grid(&buf, entries, Options{Width: tt.width}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestGridGapAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, nil, Options{}))
	assert.Empty(t, buf.String())

	entries := []entry.Entry{testutil.File("/r/a"), testutil.File("/r/bb"), testutil.File("/r/c")}
	require.NoError(t, Grid(&buf, entries, Options{Width: 80, Gap: 4}))
	assert.Equal(t, "a    bb    c\n", buf.String())
}

func TestColorPaintsThroughStyles(t *testing.T) {
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })

	reg := styles.Default()
	opts := Options{Classifier: classify.Defaults(reg), Styles: reg, Color: true, Now: now}
	e := testutil.Dir("/r/src")

	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, []entry.Entry{e}, opts))
	assert.Equal(t, reg.Get("Directory").Render("src")+"\n", buf.String())
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, Grid(&buf, []entry.Entry{e}, Options{Classifier: opts.Classifier}))
	assert.Equal(t, "src\n", buf.String())
}

func treeFixture(t *testing.T) (*scanner.Scanner, filesystem.FS) {
	mem := testutil.MemTree(t, "/work/proj",
		testutil.Node{Path: ".gitignore", Content: "*.log\n!keep.log\n"},
		testutil.Node{Path: "a.txt"},
		testutil.Node{Path: "debug.log"},
		testutil.Node{Path: "keep.log"},
		testutil.Node{Path: "src/.gitignore", Content: "lib.rs\n"},
		testutil.Node{Path: "src/main.rs"},
		testutil.Node{Path: "src/lib.rs"},
		testutil.Node{Path: "src/trace.log"},
		testutil.Node{Path: "docs/notes.log"},
		testutil.Node{Path: "docs/guide.md"},
	)
	fsys := filesystem.NewAferoFS(mem)
	s := scanner.New(fsys,
		scanner.WithPermissions(entry.ModeLookup),
		scanner.WithFilter(filter.Not(filter.Hidden())),
	)
	return s, fsys
}

func TestTree(t *testing.T) {
	s, fsys := treeFixture(t)
	root, err := s.Stat("/work/proj")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root, s, GitIgnores(fsys), Options{}))
	assert.Equal(t, strings.Join([]string{
		"work/proj",
		"├ docs",
		"│ ├ guide.md",
		"│ └ notes.log",
		"├ src",
		"│ ├ main.rs",
		"│ └ trace.log",
		"├ a.txt",
		"└ keep.log",
		"",
	}, "\n"), buf.String())
}

func TestTreeWithoutIgnores(t *testing.T) {
	s, _ := treeFixture(t)
	root, err := s.Stat("/work/proj/src")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root, s, nil, Options{}))
	assert.Equal(t, "proj/src\n├ lib.rs\n├ main.rs\n└ trace.log\n", buf.String())
}

// brokenSource fails to list one directory.
type brokenSource struct {
	TreeSource
	broken string
}

func (b brokenSource) EntriesOf(e entry.Entry) ([]entry.Entry, error) {
	if e.Name() == b.broken {
		return nil, errors.New(errors.ErrPermissionDenied, "denied")
	}
	return b.TreeSource.EntriesOf(e)
}

func TestTreeSkipsUnreadableDirectory(t *testing.T) {
	s, fsys := treeFixture(t)
	root, err := s.Stat("/work/proj")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root, brokenSource{TreeSource: s, broken: "src"}, GitIgnores(fsys), Options{}))
	assert.Contains(t, buf.String(), "├ src\n├ a.txt\n")
}

// loopFixture links d/a and d/b back to the root and d/e to a sibling.
func loopFixture(t *testing.T) (*scanner.Scanner, entry.Entry) {
	root := testutil.DiskTree(t, testutil.Paths("d/x.txt", "other/y.txt")...)
	links := map[string]string{"d/a": "..", "d/b": "..", "d/e": "../other"}
	for link, target := range links {
		if err := os.Symlink(target, filepath.Join(root, filepath.FromSlash(link))); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
	}
	s := scanner.New(filesystem.NewOS())
	top, err := s.Stat(root)
	require.NoError(t, err)
	return s, top
}

func TestTreeStopsAtLinkToAncestor(t *testing.T) {
	s, root := loopFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root, s, nil, Options{}))
	lines := strings.SplitAfterN(buf.String(), "\n", 2)
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join([]string{
		"├ d",
		"│ ├ a",
		"│ ├ b",
		"│ ├ e",
		"│ │ └ y.txt",
		"│ └ x.txt",
		"└ other",
		"  └ y.txt",
		"",
	}, "\n"), lines[1])
}

func TestJSONTreeStopsAtLinkToAncestor(t *testing.T) {
	s, root := loopFixture(t)

	var buf bytes.Buffer
	require.NoError(t, JSONTree(&buf, root, s, nil, Options{}))

	type node struct {
		Name     string `json:"name"`
		Symlink  bool   `json:"symlink"`
		Children []node `json:"children"`
	}
	var decoded node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Children, 2)

	d := decoded.Children[0]
	require.Len(t, d.Children, 4)
	for _, link := range d.Children[:2] {
		assert.True(t, link.Symlink, link.Name)
		assert.Empty(t, link.Children, link.Name)
	}
	assert.Equal(t, "e", d.Children[2].Name)
	require.Len(t, d.Children[2].Children, 1)
	assert.Equal(t, "y.txt", d.Children[2].Children[0].Name)
}

func TestTreeRootErrors(t *testing.T) {
	s, _ := treeFixture(t)
	file, err := s.Stat("/work/proj/a.txt")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Tree(&buf, file, s, nil, Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))

	mem := testutil.MemTree(t, "/bad", testutil.Node{Path: ".gitignore", Content: "ok\nbroken\xff\n"}, testutil.Node{Path: "x"})
	fsys := filesystem.NewAferoFS(mem)
	bad := scanner.New(fsys, scanner.WithPermissions(entry.ModeLookup))
	root, err := bad.Stat("/bad")
	require.NoError(t, err)
	err = Tree(&buf, root, bad, GitIgnores(fsys), Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern), "got %v", err)
}

func TestRootLabel(t *testing.T) {
	assert.Equal(t, "work/proj", rootLabel(testutil.Dir("/work/proj")))
	assert.Equal(t, "/", rootLabel(testutil.Dir("/")))
}

func TestJSON(t *testing.T) {
	modified := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := []entry.Entry{
		testutil.Dir("/r/src"),
		testutil.File("/r/logo.PNG", testutil.WithSize(10), testutil.WithModified(modified)),
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, entries, Options{Classifier: classify.Defaults(styles.Default())}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "src", decoded[0]["name"])
	assert.Equal(t, "directory", decoded[0]["kind"])
	assert.Equal(t, "DIR", decoded[0]["group"])
	assert.Equal(t, "drwxr-xr-x", decoded[0]["permissions"])
	assert.NotContains(t, decoded[0], "modified")

	assert.Equal(t, "png", decoded[1]["extension"])
	assert.Equal(t, float64(10), decoded[1]["size"])
	assert.Equal(t, "2025-01-02T03:04:05Z", decoded[1]["modified"])
	assert.Equal(t, "IMAGE", decoded[1]["group"])
	assert.Equal(t, false, decoded[1]["hidden"])

	buf.Reset()
	require.NoError(t, JSON(&buf, nil, Options{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONTree(t *testing.T) {
	s, fsys := treeFixture(t)
	root, err := s.Stat("/work/proj")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSONTree(&buf, root, s, GitIgnores(fsys), Options{}))

	var decoded struct {
		Name     string `json:"name"`
		Children []struct {
			Name     string `json:"name"`
			Children []struct {
				Name string `json:"name"`
			} `json:"children"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "proj", decoded.Name)
	require.Len(t, decoded.Children, 4)
	assert.Equal(t, "src", decoded.Children[1].Name)
	require.Len(t, decoded.Children[1].Children, 2)
	assert.Equal(t, "main.rs", decoded.Children[1].Children[0].Name)
	assert.Equal(t, "keep.log", decoded.Children[3].Name)
}
