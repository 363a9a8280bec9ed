// Package scanner reads one directory into a filtered, stably sorted slice
// of entries. It never recurses; the tree renderer drives descent through
// EntriesOf.
package scanner

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/errors"
	"github.com/arthur-debert/xf/pkg/filesystem"
	"github.com/arthur-debert/xf/pkg/filter"
	"github.com/arthur-debert/xf/pkg/logging"
	"github.com/arthur-debert/xf/pkg/sorting"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
)

// Scanner lists directories. The filter, strategy and lookup are fixed at
// construction, so a Scanner can be reused for any number of scans.
type Scanner struct {
	fs       filesystem.FS
	filter   filter.Filter
	sorter   sorting.Strategy
	lookup   func() entry.Lookup
	execExts []string
	logger   zerolog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFilter sets the active filter. The default keeps everything.
func WithFilter(f filter.Filter) Option {
	return func(s *Scanner) { s.filter = f }
}

// WithSorter sets the active strategy. The default is sorting.Default().
func WithSorter(st sorting.Strategy) Option {
	return func(s *Scanner) { s.sorter = st }
}

// WithPermissions replaces the platform lookup, for example with
// entry.ModeLookup for in-memory trees.
func WithPermissions(l entry.Lookup) Option {
	return func(s *Scanner) { s.lookup = func() entry.Lookup { return l } }
}

// WithExecutableExtensions sets the Windows executable extension set used
// by the platform lookup.
func WithExecutableExtensions(exts []string) Option {
	return func(s *Scanner) { s.execExts = exts }
}

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// New creates a scanner over fsys.
func New(fsys filesystem.FS, opts ...Option) *Scanner {
	s := &Scanner{
		fs:     fsys,
		filter: filter.Identity(),
		sorter: sorting.Default(),
		logger: logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.lookup == nil {
		// A fresh resolver per scan keeps owner-name caches scan-local.
		s.lookup = func() entry.Lookup { return entry.NewResolver(s.execExts) }
	}
	return s
}

// Canonicalize expands a leading ~ and resolves path to its absolute,
// symlink-free form.
func (s *Scanner) Canonicalize(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathNotFound, "cannot resolve %s", path).
			WithDetail("path", path)
	}
	canonical, err := s.fs.Canonical(expanded)
	if err != nil {
		if stderrors.Is(err, fs.ErrPermission) {
			return "", errors.FromOS(err, path)
		}
		return "", errors.Wrapf(err, errors.ErrPathNotFound, "cannot access %s", path).
			WithDetail("path", path)
	}
	return canonical, nil
}

// Entries lists the directory at path.
func (s *Scanner) Entries(path string) ([]entry.Entry, error) {
	root, err := s.Canonicalize(path)
	if err != nil {
		return nil, err
	}
	return s.scan(root)
}

// EntriesOf lists the directory e refers to. It fails with NotADirectory
// for files.
func (s *Scanner) EntriesOf(e entry.Entry) ([]entry.Entry, error) {
	if !e.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", e.Path()).
			WithDetail("path", e.Path())
	}
	return s.scan(e.Path())
}

// Stat builds the entry for path itself rather than its children.
func (s *Scanner) Stat(path string) (entry.Entry, error) {
	canonical, err := s.Canonicalize(path)
	if err != nil {
		return entry.Entry{}, err
	}
	e, err := s.build(canonical, s.lookup())
	if err != nil {
		return entry.Entry{}, errors.FromOS(err, path)
	}
	return e, nil
}

func (s *Scanner) scan(dir string) ([]entry.Entry, error) {
	logger := s.logger.With().Str("dir", dir).Logger()
	done := logging.LogOperationStart(logger, "scan")
	defer done()

	info, err := s.fs.Stat(dir)
	if err != nil {
		return nil, errors.FromOS(err, dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", dir).
			WithDetail("path", dir)
	}

	children, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.FromOS(err, dir)
	}

	lookup := s.lookup()
	entries := make([]entry.Entry, 0, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		e, err := s.build(path, lookup)
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("Skipping unreadable entry")
			continue
		}
		if s.filter.Keep(e) {
			entries = append(entries, e)
		}
	}

	sorting.Sort(entries, s.sorter)
	logger.Trace().Int("children", len(children)).Int("kept", len(entries)).Msg("Scanned directory")
	return entries, nil
}

// build stats path, following a symlink when its target exists. A dangling
// link becomes a File described by the link itself.
func (s *Scanner) build(path string, lookup entry.Lookup) (entry.Entry, error) {
	linfo, err := s.fs.Lstat(path)
	if err != nil {
		return entry.Entry{}, err
	}
	symlink := linfo.Mode()&fs.ModeSymlink != 0

	info := linfo
	if symlink {
		if target, err := s.fs.Stat(path); err == nil {
			info = target
		}
	}

	kind := entry.File
	if info.IsDir() {
		kind = entry.Directory
	}

	perms, err := lookup.Lookup(path, info)
	if err != nil {
		return entry.Entry{}, err
	}
	return entry.New(path, kind, perms, entry.MetadataFrom(info, symlink)), nil
}
