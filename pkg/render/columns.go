package render

import (
	"strings"
	"time"

	"github.com/arthur-debert/xf/pkg/entry"
)

// PermissionString renders the type character and the three rwx triplets:
// "drwxr-xr-x" for a directory, ".rwxr-x---" for a file.
func PermissionString(e entry.Entry) string {
	p := e.Permissions()
	var b strings.Builder
	if e.IsDir() {
		b.WriteByte('d')
	} else {
		b.WriteByte('.')
	}
	b.WriteString(p.User.Rights.String())
	b.WriteString(p.Group.Rights.String())
	b.WriteString(p.Everyone.Rights.String())
	return b.String()
}

// paintPermissions styles each character of a permission string.
func (o Options) paintPermissions(perms string) string {
	if !o.Color {
		return perms
	}
	var b strings.Builder
	for i, c := range perms {
		style := "PermNone"
		switch {
		case i == 0 && c == 'd':
			style = "PermType"
		case c == 'r':
			style = "PermRead"
		case c == 'w':
			style = "PermWrite"
		case c == 'x':
			style = "PermExec"
		}
		b.WriteString(o.named(style, string(c)))
	}
	return b.String()
}

// FormatDate renders t in local time, with the clock for dates in the
// current year and the year otherwise. A zero time renders as "-".
func FormatDate(t, now time.Time, recent, old string) string {
	if t.IsZero() {
		return "-"
	}
	local := t.Local()
	if local.Year() == now.Local().Year() {
		return local.Format(recent)
	}
	return local.Format(old)
}

// sizeCell is the size column: directories show "-".
func (o Options) sizeCell(e entry.Entry) string {
	if e.IsDir() {
		return "-"
	}
	return Humansize(e.Metadata().Size, o.Sizes)
}

func (o Options) dateCell(e entry.Entry) string {
	return FormatDate(e.Metadata().Modified, o.Now, o.TimeRecent, o.TimeOld)
}
