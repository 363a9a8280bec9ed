// Package filesystem is the read-only filesystem seam used by the scanner
// and the gitignore loader. NewOS talks to the real disk; NewAferoFS wraps
// any afero.Fs, which is how tests run against an in-memory tree.
package filesystem
