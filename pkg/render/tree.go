package render

import (
	"io"
	"path/filepath"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/filesystem"
	"github.com/arthur-debert/xf/pkg/ignore"
	"github.com/arthur-debert/xf/pkg/logging"
	"github.com/rs/zerolog"
)

// TreeSource lists the children of a directory entry.
type TreeSource interface {
	EntriesOf(e entry.Entry) ([]entry.Entry, error)
}

// Predicate decides whether a path, relative to the directory that owns
// the predicate and using forward slashes, is shown.
type Predicate interface {
	Include(rel string) bool
}

// Resolver maps a directory path to its canonical form. A TreeSource that
// implements it lets the tree recognize links back to an open directory.
type Resolver interface {
	Canonicalize(path string) (string, error)
}

// IgnoreLoader returns the predicate defined in dir, or nil when dir
// defines none.
type IgnoreLoader func(dir string) (Predicate, error)

// GitIgnores loads .gitignore files through fsys.
func GitIgnores(fsys filesystem.FS) IgnoreLoader {
	return func(dir string) (Predicate, error) {
		g, err := ignore.Load(fsys, dir)
		if err != nil || g == nil {
			return nil, err
		}
		return g, nil
	}
}

const (
	branchMid  = "├ "
	branchLast = "└ "
	indentMid  = "│ "
	indentLast = "  "
)

// scope is the predicate in force and the directory its paths are
// relative to.
type scope struct {
	pred Predicate
	base string
}

func (s scope) include(e entry.Entry) bool {
	if s.pred == nil {
		return true
	}
	rel, err := filepath.Rel(s.base, e.Path())
	if err != nil {
		return true
	}
	return s.pred.Include(filepath.ToSlash(rel))
}

type treeWalker struct {
	src    TreeSource
	loader IgnoreLoader
	opts   Options
	logger zerolog.Logger
	rows   []row
	// open holds the resolved paths of the directories being walked.
	open map[string]struct{}
}

func newTreeWalker(src TreeSource, loader IgnoreLoader, opts Options, component string) *treeWalker {
	return &treeWalker{
		src:    src,
		loader: loader,
		opts:   opts,
		logger: logging.GetLogger(component),
		open:   make(map[string]struct{}),
	}
}

// Tree renders root and everything below it. Children come from src, so
// they carry the scanner's filter and order. A directory's own .gitignore
// replaces the inherited one for its subtree. A directory that cannot be
// listed is shown but not descended into, as is a link back to a directory
// above it. A nil loader disables ignores.
func Tree(w io.Writer, root entry.Entry, src TreeSource, loader IgnoreLoader, opts Options) error {
	opts = opts.withDefaults()
	t := newTreeWalker(src, loader, opts, "render.tree")
	children, top, err := t.start(root)
	if err != nil {
		return err
	}

	t.rows = append(t.rows, opts.newRow(root, "", opts.named("TreeRoot", rootLabel(root))))
	t.walk(children, top, "")
	return opts.writeRows(w, t.rows, false)
}

// start lists the root. Failures here, including a bad root .gitignore,
// are returned; below the root they are logged and skipped.
func (t *treeWalker) start(root entry.Entry) ([]entry.Entry, scope, error) {
	children, err := t.src.EntriesOf(root)
	if err != nil {
		return nil, scope{}, err
	}
	t.open[t.resolve(root.Path())] = struct{}{}
	if t.loader == nil {
		return children, scope{}, nil
	}
	pred, err := t.loader(root.Path())
	if err != nil {
		return nil, scope{}, err
	}
	return children, scope{pred: pred, base: root.Path()}, nil
}

func (t *treeWalker) walk(children []entry.Entry, sc scope, indent string) {
	visible := children[:0:0]
	for _, c := range children {
		if sc.include(c) {
			visible = append(visible, c)
		}
	}

	for i, c := range visible {
		branch, next := branchMid, indentMid
		if i == len(visible)-1 {
			branch, next = branchLast, indentLast
		}
		prefix := t.opts.named("TreeBranch", indent+branch)
		t.rows = append(t.rows, t.opts.newRow(c, prefix, t.opts.name(c)))

		if sub, key, ok := t.enter(c); ok {
			t.walk(sub, t.scopeFor(c, sc), indent+next)
			delete(t.open, key)
		}
	}
}

// enter lists dir's children. It reports false for files, for directories
// that cannot be listed and for links that resolve to an open directory.
// The caller deletes key from t.open once the subtree is done.
func (t *treeWalker) enter(dir entry.Entry) ([]entry.Entry, string, bool) {
	if !dir.IsDir() {
		return nil, "", false
	}
	key := t.resolve(dir.Path())
	if _, cycle := t.open[key]; cycle {
		t.logger.Debug().Str("path", dir.Path()).Str("target", key).Msg("Not descending into link to an ancestor")
		return nil, "", false
	}
	sub, err := t.src.EntriesOf(dir)
	if err != nil {
		t.logger.Debug().Str("path", dir.Path()).Err(err).Msg("Not descending into directory")
		return nil, "", false
	}
	t.open[key] = struct{}{}
	return sub, key, true
}

func (t *treeWalker) resolve(path string) string {
	r, ok := t.src.(Resolver)
	if !ok {
		return path
	}
	canonical, err := r.Canonicalize(path)
	if err != nil {
		return path
	}
	return canonical
}

// scopeFor returns the scope for dir's children: its own ignore file when
// it has one, the inherited scope otherwise.
func (t *treeWalker) scopeFor(dir entry.Entry, inherited scope) scope {
	if t.loader == nil {
		return inherited
	}
	pred, err := t.loader(dir.Path())
	if err != nil {
		t.logger.Warn().Str("path", dir.Path()).Err(err).Msg("Ignoring unreadable .gitignore")
		return inherited
	}
	if pred == nil {
		return inherited
	}
	return scope{pred: pred, base: dir.Path()}
}

// rootLabel is "parent/name" for the root line.
func rootLabel(root entry.Entry) string {
	path := root.Path()
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.ToSlash(filepath.Join(filepath.Base(parent), root.Name()))
}
