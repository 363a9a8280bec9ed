package entry

import (
	"io/fs"
	"strings"
)

// Lookup produces the permission record for one directory child.
type Lookup interface {
	Lookup(path string, info fs.FileInfo) (Permissions, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(path string, info fs.FileInfo) (Permissions, error)

func (f LookupFunc) Lookup(path string, info fs.FileInfo) (Permissions, error) {
	return f(path, info)
}

// ModeLookup derives the record from mode bits only. It is what in-memory
// filesystems get, since they carry no owner or attribute data.
var ModeLookup = LookupFunc(func(_ string, info fs.FileInfo) (Permissions, error) {
	return FromMode(info.Name(), info.Mode()), nil
})

// DefaultExecutableExtensions is the Windows executable set used when the
// caller configures none.
var DefaultExecutableExtensions = []string{"exe", "bat", "cmd", "com", "ps1"}

// Resolver is the platform permission lookup. It caches owner names for
// the lifetime of one scan and must not be shared between scans.
type Resolver struct {
	execExts map[string]struct{}
	users    map[uint32]string
	groups   map[uint32]string
}

// NewResolver returns a lookup for the running platform. executableExts
// only matters on Windows.
func NewResolver(executableExts []string) *Resolver {
	if executableExts == nil {
		executableExts = DefaultExecutableExtensions
	}
	exts := make(map[string]struct{}, len(executableExts))
	for _, ext := range executableExts {
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &Resolver{
		execExts: exts,
		users:    make(map[uint32]string),
		groups:   make(map[uint32]string),
	}
}

func (r *Resolver) isExecutableExt(name string) bool {
	ext := ExtensionOf(name, File)
	if ext == "" {
		return false
	}
	_, ok := r.execExts[ext]
	return ok
}
