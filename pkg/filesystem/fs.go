package filesystem

import "io/fs"

// FS is the subset of filesystem access xf needs. Nothing in xf writes.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	// Canonical returns the absolute form of name with symlinks resolved
	// where the implementation supports them.
	Canonical(name string) (string, error)
}
