package sorting

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/filter"
	"github.com/arthur-debert/xf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func files(names ...string) []entry.Entry {
	entries := make([]entry.Entry, len(names))
	for i, n := range names {
		entries[i] = testutil.File("/r/" + n)
	}
	return entries
}

func sortedNames(entries []entry.Entry, s Strategy) []string {
	return testutil.Names(Sorted(entries, s))
}

func TestNatural(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"digit runs compare numerically", []string{"_12", "_1", "_2"}, []string{"_1", "_2", "_12"}},
		{"runs mid name", []string{"a10b", "a2b", "a10a"}, []string{"a2b", "a10a", "a10b"}},
		{"shorter prefix first", []string{"abc", "ab", "a"}, []string{"a", "ab", "abc"}},
		{"leading zeros tie broken bytewise", []string{"a1", "a01", "a001"}, []string{"a001", "a01", "a1"}},
		{"huge numbers", []string{"x100000000000000000000", "x99999999999999999999"}, []string{"x99999999999999999999", "x100000000000000000000"}},
		{"non ascii digits are characters", []string{"a٢", "a1"}, []string{"a1", "a٢"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortedNames(files(tt.input...), Natural()))
		})
	}
}

func TestByPath(t *testing.T) {
	entries := []entry.Entry{testutil.File("/r/b/x"), testutil.File("/r/a/y"), testutil.File("/r/a/x")}
	got := Sorted(entries, ByPath())
	assert.Equal(t, "/r/a/x", got[0].Path())
	assert.Equal(t, "/r/a/y", got[1].Path())
	assert.Equal(t, "/r/b/x", got[2].Path())
}

func TestByExtension(t *testing.T) {
	got := sortedNames(files("a.zip", "b", "c.txt"), ByExtension(Natural()))
	assert.Equal(t, []string{"b", "c.txt", "a.zip"}, got)

	got = sortedNames(files("z.txt", "a.txt", "m"), ByExtension(Natural()))
	assert.Equal(t, []string{"m", "a.txt", "z.txt"}, got)
}

func TestBySize(t *testing.T) {
	entries := []entry.Entry{
		testutil.File("/r/big", testutil.WithSize(1<<20)),
		testutil.File("/r/small", testutil.WithSize(1)),
		testutil.File("/r/also-small", testutil.WithSize(1)),
		testutil.Dir("/r/dir"),
	}
	got := sortedNames(entries, DirectoryFirst(BySize(Natural())))
	assert.Equal(t, []string{"dir", "also-small", "small", "big"}, got)
}

func TestByModified(t *testing.T) {
	day := func(d, h int) time.Time { return time.Date(2024, 5, d, h, 0, 0, 0, time.Local) }
	entries := []entry.Entry{
		testutil.File("/r/unknown"),
		testutil.File("/r/late-day2", testutil.WithModified(day(2, 20))),
		testutil.File("/r/early-day3", testutil.WithModified(day(3, 1))),
		testutil.File("/r/early-day2", testutil.WithModified(day(2, 1))),
	}

	assert.Equal(t, []string{"early-day2", "late-day2", "early-day3", "unknown"},
		sortedNames(entries, ByDateTime(Natural())))
	assert.Equal(t, []string{"early-day2", "late-day2", "early-day3", "unknown"},
		sortedNames(entries, ByDate(Natural())), "same day ties fall through to Natural")
	assert.Equal(t, []string{"early-day2", "early-day3", "late-day2", "unknown"},
		sortedNames(entries, ByTime(Natural())))
}

func TestDirectoryFirst(t *testing.T) {
	entries := []entry.Entry{
		testutil.File("/r/a.txt"), testutil.Dir("/r/z"), testutil.File("/r/b.txt"), testutil.Dir("/r/dir"),
	}
	assert.Equal(t, []string{"dir", "z", "a.txt", "b.txt"}, sortedNames(entries, Default()))
	assert.Equal(t, []string{"z", "dir", "b.txt", "a.txt"}, sortedNames(entries, DirectoryFirst(Reverse(Natural()))))
}

func TestHiddenPlacement(t *testing.T) {
	entries := []entry.Entry{
		testutil.File("/r/b.txt"), testutil.File("/r/.hidden"), testutil.File("/r/a.txt"), testutil.Dir("/r/dir"),
	}
	assert.Equal(t, []string{"dir", "a.txt", "b.txt", ".hidden"}, sortedNames(entries, DirectoryFirst(HiddenLast(Natural()))))
	assert.Equal(t, []string{"dir", ".hidden", "a.txt", "b.txt"}, sortedNames(entries, DirectoryFirst(HiddenFirst(Natural()))))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, sortedNames(files("a", "b", "c"), Reverse(Natural())))

	s := BySize(Natural())
	assert.Equal(t, s, Reverse(Reverse(s)))
}

func TestGrouping(t *testing.T) {
	rust := filter.NewExtensions("rs")
	docs := filter.NewExtensions("md")
	s := Grouping([]Group{
		{Match: rust, Sort: Reverse(Natural())},
		{Match: docs},
	}, Natural())

	got := sortedNames(files("z.txt", "a.rs", "README.md", "b.rs", "CHANGES.md", "a.txt"), s)
	assert.Equal(t, []string{"b.rs", "a.rs", "CHANGES.md", "README.md", "a.txt", "z.txt"}, got)
}

func TestNamed(t *testing.T) {
	s, err := Named("SIZE")
	require.NoError(t, err)
	assert.Equal(t, BySize(Natural()), s)

	_, err = Named("colour")
	assert.Error(t, err)
	assert.Contains(t, Names(), "datetime")
}

// randomEntries draws a reproducible sample mixing kinds, names, sizes and
// times so that ties happen often.
func randomEntries(seed int64, n int) []entry.Entry {
	r := rand.New(rand.NewSource(seed))
	names := []string{"a", "a1", "a01", "a2", "a10", "_1", "_12", "B", "b.txt", ".env", ".a.rs", "x.rs", "x.RS", "z9z", "ü.md", "Makefile"}
	out := make([]entry.Entry, n)
	for i := range out {
		name := names[r.Intn(len(names))]
		path := fmt.Sprintf("/r/%c%d/%s", 'a'+r.Intn(3), i, name)
		opts := []testutil.EntryOption{testutil.WithSize(int64(r.Intn(4)))}
		if r.Intn(4) > 0 {
			opts = append(opts, testutil.WithModified(time.Date(2024, 1, 1+r.Intn(3), r.Intn(3), 0, 0, 0, time.UTC)))
		}
		if r.Intn(3) == 0 {
			out[i] = testutil.Dir(path, opts...)
		} else {
			out[i] = testutil.File(path, opts...)
		}
	}
	return out
}

func allStrategies() map[string]Strategy {
	return map[string]Strategy{
		"path":           ByPath(),
		"natural":        Natural(),
		"extension":      ByExtension(Natural()),
		"size":           BySize(nil),
		"date":           ByDate(ByPath()),
		"time":           ByTime(nil),
		"datetime":       ByDateTime(Natural()),
		"reverse":        Reverse(Natural()),
		"dirs first":     Default(),
		"hidden first":   HiddenFirst(BySize(Natural())),
		"hidden last":    DirectoryFirst(HiddenLast(Natural())),
		"grouping":       Grouping([]Group{{Match: filter.NewExtensions("rs")}, {Match: filter.DotPrefix(), Sort: ByPath()}}, Reverse(Natural())),
		"reverse nested": Reverse(DirectoryFirst(ByExtension(BySize(Natural())))),
	}
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

func TestTotality(t *testing.T) {
	sample := randomEntries(42, 40)
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			for _, a := range sample {
				assert.Zero(t, s.Compare(a, a))
				for _, b := range sample {
					ab := sign(s.Compare(a, b))
					assert.Equal(t, -ab, sign(s.Compare(b, a)), "antisymmetry %s %s", a.Path(), b.Path())
					for _, c := range sample {
						if ab <= 0 && sign(s.Compare(b, c)) <= 0 {
							assert.LessOrEqual(t, sign(s.Compare(a, c)), 0, "transitivity %s %s %s", a.Path(), b.Path(), c.Path())
						}
					}
				}
			}
		})
	}
}

func TestStability(t *testing.T) {
	sample := randomEntries(7, 60)
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			once := Sorted(sample, s)
			twice := Sorted(once, s)
			assert.Equal(t, once, twice)

			// equal keys keep input order
			for i := 1; i < len(once); i++ {
				if s.Compare(once[i-1], once[i]) != 0 {
					continue
				}
				assert.Less(t, indexOf(sample, once[i-1]), indexOf(sample, once[i]))
			}
		})
	}
}

func TestReverseInvolution(t *testing.T) {
	sample := randomEntries(3, 50)
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Sorted(sample, s), Sorted(sample, Reverse(Reverse(s))))
		})
	}
}

func TestDirectoryFirstHoldsForAnyInner(t *testing.T) {
	sample := randomEntries(11, 50)
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			got := Sorted(testutil.Shuffled(sample, 5), DirectoryFirst(s))
			seenFile := false
			for _, e := range got {
				if e.IsFile() {
					seenFile = true
					continue
				}
				assert.False(t, seenFile, "directory %s after a file", e.Path())
			}
		})
	}
}

func indexOf(entries []entry.Entry, target entry.Entry) int {
	for i, e := range entries {
		if e == target {
			return i
		}
	}
	return -1
}
