// Package sorting implements the sort strategy algebra. A Strategy is a
// total order over entries; primitives compare one key and hand ties to an
// inner strategy, combinators wrap other strategies. Every strategy is pure
// and safe to share between scans.
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/filter"
)

// Strategy orders entries. Compare returns a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise.
type Strategy interface {
	Compare(a, b entry.Entry) int
}

// Func adapts a comparison function.
type Func func(a, b entry.Entry) int

func (f Func) Compare(a, b entry.Entry) int { return f(a, b) }

// Sort orders entries in place. Equal entries keep their input order.
func Sort(entries []entry.Entry, s Strategy) {
	slices.SortStableFunc(entries, s.Compare)
}

// Sorted returns a sorted copy and leaves entries untouched.
func Sorted(entries []entry.Entry, s Strategy) []entry.Entry {
	out := slices.Clone(entries)
	Sort(out, s)
	return out
}

// Default is DirectoryFirst(Natural()).
func Default() Strategy {
	return DirectoryFirst(Natural())
}

type equal struct{}

func (equal) Compare(entry.Entry, entry.Entry) int { return 0 }

// then resolves a nil inner strategy to one that treats everything as equal.
func then(s Strategy) Strategy {
	if s == nil {
		return equal{}
	}
	return s
}

type byPath struct{}

func (byPath) Compare(a, b entry.Entry) int { return strings.Compare(a.Path(), b.Path()) }

// ByPath compares canonical paths byte-wise.
func ByPath() Strategy { return byPath{} }

type byExtension struct{ then Strategy }

func (s byExtension) Compare(a, b entry.Entry) int {
	ea, okA := a.Extension()
	eb, okB := b.Extension()
	switch {
	case !okA && okB:
		return -1
	case okA && !okB:
		return 1
	}
	if c := strings.Compare(ea, eb); c != 0 {
		return c
	}
	return s.then.Compare(a, b)
}

// ByExtension compares extensions. Entries without one sort first.
func ByExtension(inner Strategy) Strategy { return byExtension{then(inner)} }

type bySize struct{ then Strategy }

func (s bySize) Compare(a, b entry.Entry) int {
	if c := cmp.Compare(a.Metadata().Size, b.Metadata().Size); c != 0 {
		return c
	}
	return s.then.Compare(a, b)
}

// BySize compares sizes, smallest first.
func BySize(inner Strategy) Strategy { return bySize{then(inner)} }

type reverse struct{ s Strategy }

func (r reverse) Compare(a, b entry.Entry) int { return r.s.Compare(b, a) }

// Reverse inverts s. Reverse(Reverse(s)) returns s itself.
func Reverse(s Strategy) Strategy {
	if r, ok := s.(reverse); ok {
		return r.s
	}
	return reverse{then(s)}
}

type directoryFirst struct{ then Strategy }

func (s directoryFirst) Compare(a, b entry.Entry) int {
	if a.IsDir() != b.IsDir() {
		if a.IsDir() {
			return -1
		}
		return 1
	}
	return s.then.Compare(a, b)
}

// DirectoryFirst puts every directory before every file.
func DirectoryFirst(inner Strategy) Strategy { return directoryFirst{then(inner)} }

type hiddenPlacement struct {
	first bool
	then  Strategy
}

func (s hiddenPlacement) Compare(a, b entry.Entry) int {
	if a.IsHidden() != b.IsHidden() {
		if a.IsHidden() == s.first {
			return -1
		}
		return 1
	}
	return s.then.Compare(a, b)
}

// HiddenFirst puts hidden entries before visible ones.
func HiddenFirst(inner Strategy) Strategy { return hiddenPlacement{first: true, then: then(inner)} }

// HiddenLast puts hidden entries after visible ones.
func HiddenLast(inner Strategy) Strategy { return hiddenPlacement{first: false, then: then(inner)} }

// Group is one partition of a Grouping. A nil Sort uses the fallback.
type Group struct {
	Match filter.Filter
	Sort  Strategy
}

type grouping struct {
	groups   []Group
	fallback Strategy
}

func (s grouping) index(e entry.Entry) int {
	for i, g := range s.groups {
		if g.Match.Keep(e) {
			return i
		}
	}
	return len(s.groups)
}

func (s grouping) Compare(a, b entry.Entry) int {
	ia, ib := s.index(a), s.index(b)
	if ia != ib {
		return cmp.Compare(ia, ib)
	}
	if ia < len(s.groups) && s.groups[ia].Sort != nil {
		return s.groups[ia].Sort.Compare(a, b)
	}
	return s.fallback.Compare(a, b)
}

// Grouping partitions entries by the first group that keeps them. Lower
// groups sort first and each group orders its own members; entries in no
// group come last, ordered by fallback.
func Grouping(groups []Group, fallback Strategy) Strategy {
	return grouping{groups: slices.Clone(groups), fallback: then(fallback)}
}
