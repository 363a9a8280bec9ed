//go:build windows

package entry

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// Lookup reads the file attributes. Rights come from the mode Go derives
// from the read-only attribute; executable comes from the configured
// extension set.
func (r *Resolver) Lookup(path string, info fs.FileInfo) (Permissions, error) {
	p := FromMode(info.Name(), info.Mode())
	p.Platform = Windows

	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Permissions{}, err
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return Permissions{}, &fs.PathError{Op: "GetFileAttributes", Path: path, Err: err}
	}

	p.Attributes = Attributes{
		Archivable: attrs&windows.FILE_ATTRIBUTE_ARCHIVE != 0,
		ReadOnly:   attrs&windows.FILE_ATTRIBUTE_READONLY != 0,
		Hidden:     attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0,
		System:     attrs&windows.FILE_ATTRIBUTE_SYSTEM != 0,
		Executable: !info.IsDir() && r.isExecutableExt(info.Name()),
	}
	return p, nil
}
