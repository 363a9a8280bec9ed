package entry

import (
	"io/fs"
	"strings"
)

// Right is a single access right.
type Right uint8

const (
	Read Right = 1 << iota
	Write
	Execute
)

// Rights is a set of Right values.
type Rights uint8

func (r Rights) Has(right Right) bool { return uint8(r)&uint8(right) != 0 }

// String renders the set as an rwx triplet with '-' for absent rights.
func (r Rights) String() string {
	s := [3]byte{'-', '-', '-'}
	if r.Has(Read) {
		s[0] = 'r'
	}
	if r.Has(Write) {
		s[1] = 'w'
	}
	if r.Has(Execute) {
		s[2] = 'x'
	}
	return string(s[:])
}

// RightsOf builds a set from individual rights.
func RightsOf(rights ...Right) Rights {
	var r Rights
	for _, right := range rights {
		r |= Rights(right)
	}
	return r
}

// Principal is an owner class with the rights granted to it.
type Principal struct {
	Domain string
	Name   string
	Rights Rights
}

// Attributes is the platform flag bag. On POSIX only Hidden, ReadOnly and
// Executable are derived; the rest stay false.
type Attributes struct {
	Archivable bool
	ReadOnly   bool
	Hidden     bool
	System     bool
	Executable bool
}

// Platform selects how the derived predicates read the record.
type Platform int

const (
	POSIX Platform = iota
	Windows
)

// Permissions is the per-entry permission record.
type Permissions struct {
	Platform   Platform
	User       Principal
	Group      Principal
	Everyone   Principal
	Attributes Attributes
}

// IsHidden is the dot-prefix rule on POSIX and the FS hidden attribute on
// Windows. Both are materialized into Attributes.Hidden at lookup time.
func (p Permissions) IsHidden() bool {
	return p.Attributes.Hidden
}

// IsExecutable is any execute bit on POSIX. On Windows it is the executable
// attribute, which the lookup sets for files whose extension is in the
// configured set.
func (p Permissions) IsExecutable() bool {
	if p.Platform == Windows {
		return p.Attributes.Executable
	}
	return p.User.Rights.Has(Execute) || p.Group.Rights.Has(Execute) || p.Everyone.Rights.Has(Execute)
}

// FromMode builds a POSIX record from mode bits. Principal names are left
// for the platform lookup to fill in.
func FromMode(name string, mode fs.FileMode) Permissions {
	perm := mode.Perm()
	p := Permissions{
		Platform: POSIX,
		User:     Principal{Rights: tripletAt(perm, 6)},
		Group:    Principal{Rights: tripletAt(perm, 3)},
		Everyone: Principal{Name: "everyone", Rights: tripletAt(perm, 0)},
	}
	p.Attributes = Attributes{
		ReadOnly:   !p.User.Rights.Has(Write),
		Hidden:     strings.HasPrefix(name, "."),
		Executable: p.IsExecutable(),
	}
	return p
}

func tripletAt(perm fs.FileMode, shift uint) Rights {
	bits := uint8(perm>>shift) & 0o7
	var r Rights
	if bits&0o4 != 0 {
		r |= Rights(Read)
	}
	if bits&0o2 != 0 {
		r |= Rights(Write)
	}
	if bits&0o1 != 0 {
		r |= Rights(Execute)
	}
	return r
}
