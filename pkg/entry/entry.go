package entry

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// Kind is the resolved type of an entry. Symlinks are resolved when their
// target exists; a dangling link is a File.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// Metadata is the stat snapshot taken when the entry was built.
type Metadata struct {
	// Modified is the zero time when the platform could not report it.
	Modified time.Time
	Size     int64
	Symlink  bool
}

// HasModified reports whether a modification time is available.
func (m Metadata) HasModified() bool {
	return !m.Modified.IsZero()
}

// MetadataFrom snapshots info. symlink comes from an Lstat of the same path.
func MetadataFrom(info fs.FileInfo, symlink bool) Metadata {
	return Metadata{
		Modified: info.ModTime().UTC(),
		Size:     info.Size(),
		Symlink:  symlink,
	}
}

// Entry describes one filesystem item.
type Entry struct {
	path        string
	name        string
	ext         string
	kind        Kind
	permissions Permissions
	meta        Metadata
}

// New builds an Entry for the canonical path. Name and extension are
// derived from the last path component.
func New(path string, kind Kind, perms Permissions, meta Metadata) Entry {
	name := DisplayName(filepath.Base(path))
	return Entry{
		path:        path,
		name:        name,
		ext:         ExtensionOf(name, kind),
		kind:        kind,
		permissions: perms,
		meta:        meta,
	}
}

// DisplayName replaces invalid UTF-8 so the name is always printable.
func DisplayName(name string) string {
	return strings.ToValidUTF8(name, "�")
}

// ExtensionOf returns the lowercase extension of name without the dot.
// Directories, dotfiles without a second dot and names ending in a dot have
// no extension.
func ExtensionOf(name string, kind Kind) string {
	return strings.ToLower(rawExtension(name, kind))
}

func rawExtension(name string, kind Kind) string {
	if kind == Directory {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}

func (e Entry) Path() string { return e.path }
func (e Entry) Name() string { return e.name }
func (e Entry) Kind() Kind { return e.kind }
func (e Entry) Permissions() Permissions { return e.permissions }
func (e Entry) Metadata() Metadata { return e.meta }
func (e Entry) IsDir() bool { return e.kind == Directory }
func (e Entry) IsFile() bool { return e.kind == File }
func (e Entry) IsHidden() bool { return e.permissions.IsHidden() }
func (e Entry) IsExecutable() bool { return e.permissions.IsExecutable() }
func (e Entry) HasDotPrefix() bool { return strings.HasPrefix(e.name, ".") }

// Extension returns the lowercase extension and whether one is present.
func (e Entry) Extension() (string, bool) {
	return e.ext, e.ext != ""
}

// RawExtension is the extension as spelled in the name.
func (e Entry) RawExtension() string {
	return rawExtension(e.name, e.kind)
}

// Equal reports whether both entries have the same kind and canonical path.
func (e Entry) Equal(other Entry) bool {
	return e.kind == other.kind && e.path == other.path
}
