package testutil

import (
	"io/fs"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/arthur-debert/xf/pkg/entry"
)

// EntryOption customizes NewEntry.
type EntryOption func(*entryConfig)

type entryConfig struct {
	mode  fs.FileMode
	perms *entry.Permissions
	meta  entry.Metadata
}

// WithSize sets the recorded size.
func WithSize(size int64) EntryOption {
	return func(c *entryConfig) { c.meta.Size = size }
}

// WithModified sets the recorded modification time.
func WithModified(modified time.Time) EntryOption {
	return func(c *entryConfig) { c.meta.Modified = modified }
}

// WithMode derives a POSIX permission record from mode bits.
func WithMode(mode fs.FileMode) EntryOption {
	return func(c *entryConfig) { c.mode = mode }
}

// WithPermissions uses perms verbatim.
func WithPermissions(perms entry.Permissions) EntryOption {
	return func(c *entryConfig) { c.perms = &perms }
}

// WithSymlink marks the entry as reached through a link.
func WithSymlink() EntryOption {
	return func(c *entryConfig) { c.meta.Symlink = true }
}

// NewEntry builds an entry at path. Files default to 0644 and directories
// to 0755.
func NewEntry(path string, kind entry.Kind, opts ...EntryOption) entry.Entry {
	c := entryConfig{mode: 0o644}
	if kind == entry.Directory {
		c.mode = 0o755
	}
	for _, opt := range opts {
		opt(&c)
	}
	perms := entry.FromMode(filepath.Base(path), c.mode)
	if c.perms != nil {
		perms = *c.perms
	}
	return entry.New(path, kind, perms, c.meta)
}

// File is NewEntry for a regular file.
func File(path string, opts ...EntryOption) entry.Entry {
	return NewEntry(path, entry.File, opts...)
}

// Dir is NewEntry for a directory.
func Dir(path string, opts ...EntryOption) entry.Entry {
	return NewEntry(path, entry.Directory, opts...)
}

// Names returns the entry names in order.
func Names(entries []entry.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

// Shuffled returns a copy of entries permuted by a seeded source, so a
// failure is reproducible.
func Shuffled(entries []entry.Entry, seed int64) []entry.Entry {
	out := append([]entry.Entry(nil), entries...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
