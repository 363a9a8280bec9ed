package classify

import (
	"sort"
	"strings"

	"github.com/arthur-debert/xf/pkg/entry"
)

// Tag identifies the kind of a Match.
type Tag int

const (
	TagDirectory Tag = iota
	TagHidden
	TagExecutable
	TagStartsWith
	TagEndsWith
	TagFilename
	TagExtension
)

var tagNames = map[Tag]string{
	TagDirectory:  "directory",
	TagHidden:     "hidden",
	TagExecutable: "executable",
	TagStartsWith: "starts_with",
	TagEndsWith:   "ends_with",
	TagFilename:   "filename",
	TagExtension:  "extension",
}

func (t Tag) String() string { return tagNames[t] }

// setValued reports whether rules with this tag union on merge.
func (t Tag) setValued() bool { return t == TagFilename || t == TagExtension }

// Match is one classifier rule.
type Match struct {
	tag   Tag
	value string
	set   map[string]struct{}
}

// Directory matches directories.
func Directory() Match { return Match{tag: TagDirectory} }

// Hidden matches entries whose permission record reports them hidden.
func Hidden() Match { return Match{tag: TagHidden} }

// Executable matches entries whose permission record reports them
// executable.
func Executable() Match { return Match{tag: TagExecutable} }

// StartsWith matches names with the given byte prefix.
func StartsWith(prefix string) Match { return Match{tag: TagStartsWith, value: prefix} }

// EndsWith matches names with the given suffix.
func EndsWith(suffix string) Match { return Match{tag: TagEndsWith, value: suffix} }

// Filenames matches exact names, case-sensitively.
func Filenames(names ...string) Match {
	m := Match{tag: TagFilename, set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		m.set[n] = struct{}{}
	}
	return m
}

// Extensions matches extensions. Values are lowercased on insert and a
// leading dot is dropped.
func Extensions(exts ...string) Match {
	m := Match{tag: TagExtension, set: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		m.set[normalizeExt(ext)] = struct{}{}
	}
	return m
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Tag returns the rule kind.
func (m Match) Tag() Tag { return m.tag }

// Values returns the prefix or suffix of a single-valued rule, or the
// sorted members of a set-valued one.
func (m Match) Values() []string {
	if !m.tag.setValued() {
		if m.value == "" {
			return nil
		}
		return []string{m.value}
	}
	values := make([]string, 0, len(m.set))
	for v := range m.set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Matches reports whether the rule applies to e.
func (m Match) Matches(e entry.Entry) bool {
	switch m.tag {
	case TagDirectory:
		return e.IsDir()
	case TagHidden:
		return e.IsHidden()
	case TagExecutable:
		return e.IsExecutable()
	case TagStartsWith:
		return strings.HasPrefix(e.Name(), m.value)
	case TagEndsWith:
		return strings.HasSuffix(e.Name(), m.value)
	case TagFilename:
		_, ok := m.set[e.Name()]
		return ok
	case TagExtension:
		ext, ok := e.Extension()
		if !ok {
			return false
		}
		_, ok = m.set[ext]
		return ok
	}
	return false
}

// sameRule reports whether other merges into m instead of being appended.
func (m Match) sameRule(other Match) bool {
	if m.tag != other.tag {
		return false
	}
	return m.tag.setValued() || m.value == other.value
}

// union returns m with the members of other added. m's set is copied so
// rules handed out earlier never change.
func (m Match) union(other Match) Match {
	set := make(map[string]struct{}, len(m.set)+len(other.set))
	for v := range m.set {
		set[v] = struct{}{}
	}
	for v := range other.set {
		set[v] = struct{}{}
	}
	m.set = set
	return m
}
