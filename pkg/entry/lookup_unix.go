//go:build !windows

package entry

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
)

// Lookup fills the POSIX record from the mode bits and resolves the owner
// and group names from the stat data when the filesystem provides it.
func (r *Resolver) Lookup(_ string, info fs.FileInfo) (Permissions, error) {
	p := FromMode(info.Name(), info.Mode())
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		p.User.Name = r.userName(uint32(st.Uid))
		p.Group.Name = r.groupName(uint32(st.Gid))
	}
	return p, nil
}

func (r *Resolver) userName(uid uint32) string {
	if name, ok := r.users[uid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := user.LookupId(id); err == nil {
		name = u.Username
	}
	r.users[uid] = name
	return name
}

func (r *Resolver) groupName(gid uint32) string {
	if name, ok := r.groups[gid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := user.LookupGroupId(id); err == nil {
		name = g.Name
	}
	r.groups[gid] = name
	return name
}
