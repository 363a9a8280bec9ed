// Package filter implements the entry filter algebra: leaf predicates over
// an Entry composed with And, Or and Not. Filters hold no mutable state and
// never fail once built.
package filter

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/errors"
)

// Filter decides whether an entry is kept.
type Filter interface {
	Keep(e entry.Entry) bool
}

// Discard is the negation of Keep.
func Discard(f Filter, e entry.Entry) bool {
	return !f.Keep(e)
}

// Apply returns the entries f keeps, in their original order.
func Apply(entries []entry.Entry, f Filter) []entry.Entry {
	kept := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Keep(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Func adapts a plain predicate.
type Func func(e entry.Entry) bool

func (f Func) Keep(e entry.Entry) bool { return f(e) }

type identity struct{}

func (identity) Keep(entry.Entry) bool { return true }

// Identity keeps every entry.
func Identity() Filter { return identity{} }

type and struct{ a, b Filter }

func (f and) Keep(e entry.Entry) bool { return f.a.Keep(e) && f.b.Keep(e) }

// And keeps an entry when both filters keep it.
func And(a, b Filter) Filter { return and{a, b} }

type or struct{ a, b Filter }

func (f or) Keep(e entry.Entry) bool { return f.a.Keep(e) || f.b.Keep(e) }

// Or keeps an entry when either filter keeps it.
func Or(a, b Filter) Filter { return or{a, b} }

type not struct{ f Filter }

func (f not) Keep(e entry.Entry) bool { return !f.f.Keep(e) }

// Not inverts f. Not(Not(f)) returns f itself.
func Not(f Filter) Filter {
	if n, ok := f.(not); ok {
		return n.f
	}
	return not{f}
}

// All folds filters with And. No filters means Identity.
func All(filters ...Filter) Filter {
	if len(filters) == 0 {
		return Identity()
	}
	f := filters[0]
	for _, next := range filters[1:] {
		f = And(f, next)
	}
	return f
}

type directory struct{}

func (directory) Keep(e entry.Entry) bool { return e.IsDir() }

// Directory keeps only directories.
func Directory() Filter { return directory{} }

type hidden struct{}

func (hidden) Keep(e entry.Entry) bool { return e.IsHidden() }

// Hidden keeps only entries the permission record reports as hidden.
func Hidden() Filter { return hidden{} }

type dotPrefix struct{}

func (dotPrefix) Keep(e entry.Entry) bool { return e.HasDotPrefix() }

// DotPrefix keeps only names starting with '.'.
func DotPrefix() Filter { return dotPrefix{} }

// Extensions keeps files whose extension is in the set. Directories are
// always kept so a tree can still descend into them.
type Extensions struct {
	exts          map[string]struct{}
	caseSensitive bool
}

// NewExtensions builds a case-insensitive extension filter. Leading dots
// are ignored.
func NewExtensions(exts ...string) Extensions {
	f := Extensions{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		f.exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return f
}

// NewCaseSensitiveExtensions builds an extension filter that compares the
// extension exactly as spelled.
func NewCaseSensitiveExtensions(exts ...string) Extensions {
	f := Extensions{exts: make(map[string]struct{}, len(exts)), caseSensitive: true}
	for _, ext := range exts {
		f.exts[strings.TrimPrefix(ext, ".")] = struct{}{}
	}
	return f
}

func (f Extensions) Keep(e entry.Entry) bool {
	if e.IsDir() {
		return true
	}
	var ext string
	if f.caseSensitive {
		ext = e.RawExtension()
	} else {
		ext, _ = e.Extension()
	}
	if ext == "" {
		return false
	}
	_, ok := f.exts[ext]
	return ok
}

// FilenameRegex keeps entries whose name matches the expression.
type FilenameRegex struct {
	re *regexp.Regexp
}

// NewFilenameRegex compiles pattern. A bad pattern is an InvalidPattern error.
func NewFilenameRegex(pattern string) (FilenameRegex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return FilenameRegex{}, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid filter %q", pattern).
			WithDetail("pattern", pattern)
	}
	return FilenameRegex{re: re}, nil
}

func (f FilenameRegex) Keep(e entry.Entry) bool {
	return f.re.MatchString(e.Name())
}
