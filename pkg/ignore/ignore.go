// Package ignore implements the subset of .gitignore the tree view honors.
//
// Each non-empty, non-comment line is either "!path", which always
// includes that exact path, or a pattern that excludes matching paths.
// Patterns are anchored at the directory holding the file: "**/" spans any
// number of directories, "**" anything and "*" one or more characters
// within a path component. "." is literal; every other character keeps its
// regular expression meaning, so "[Bb]uild" is a character class. Leading
// and trailing slashes are ignored.
package ignore

import (
	"bufio"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/xf/pkg/errors"
	"github.com/arthur-debert/xf/pkg/filesystem"
)

// FileName is the file Load looks for in a directory.
const FileName = ".gitignore"

// GitIgnore is a parsed ignore file. The zero value and nil include
// everything.
type GitIgnore struct {
	include map[string]struct{}
	exclude []*regexp.Regexp
}

// Parse reads ignore rules from text.
func Parse(text string) (*GitIgnore, error) {
	g := &GitIgnore{include: make(map[string]struct{})}
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "!"):
			g.include[normalize(line[1:])] = struct{}{}
		default:
			re, err := regexp.Compile(Translate(line))
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid ignore pattern %q", line).
					WithDetail("line", lineNo)
			}
			g.exclude = append(g.exclude, re)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "cannot read ignore rules")
	}
	return g, nil
}

// Load parses the .gitignore in dir. A missing file yields (nil, nil).
func Load(fsys filesystem.FS, dir string) (*GitIgnore, error) {
	path := filepath.Join(dir, FileName)
	if _, err := fsys.Stat(path); err != nil {
		return nil, nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.FromOS(err, path)
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "in %s", path).WithDetail("path", path)
	}
	return g, nil
}

// Translate turns one pattern into an anchored regular expression. Only
// "." is escaped, so the result may fail to compile.
func Translate(glob string) string {
	glob = strings.TrimSuffix(strings.TrimPrefix(glob, "/"), "/")

	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(glob); i++ {
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 2
		case strings.HasPrefix(glob[i:], "**"):
			b.WriteString(".*")
			i++
		case glob[i] == '*':
			b.WriteString(`[^/\\]+`)
		case glob[i] == '.':
			b.WriteString(`\.`)
		default:
			b.WriteByte(glob[i])
		}
	}
	b.WriteString("$")
	return b.String()
}

// Include reports whether rel, a path relative to the ignore file's
// directory, should be shown.
func (g *GitIgnore) Include(rel string) bool {
	if g == nil {
		return true
	}
	rel = normalize(rel)
	if _, ok := g.include[rel]; ok {
		return true
	}
	for _, re := range g.exclude {
		if re.MatchString(rel) {
			return false
		}
	}
	return true
}

func normalize(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
}
