package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xf/pkg/entry"
)

// row is one output line. prefix holds tree glyphs and is empty for the
// flat listing.
type row struct {
	entry  entry.Entry
	perms  string
	size   string
	date   string
	prefix string
	label  string
}

func (o Options) newRow(e entry.Entry, prefix, label string) row {
	return row{
		entry:  e,
		perms:  PermissionString(e),
		size:   o.sizeCell(e),
		date:   o.dateCell(e),
		prefix: prefix,
		label:  label,
	}
}

// List writes one line per entry: permissions, right-aligned size,
// right-aligned date and the styled name.
func List(w io.Writer, entries []entry.Entry, opts Options) error {
	opts = opts.withDefaults()
	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = opts.newRow(e, "", opts.name(e))
	}
	return opts.writeRows(w, rows, true)
}

// writeRows aligns the metadata columns across all rows when long is set.
func (o Options) writeRows(w io.Writer, rows []row, long bool) error {
	sizeWidth, dateWidth := 0, 0
	for _, r := range rows {
		sizeWidth = max(sizeWidth, len(r.size))
		dateWidth = max(dateWidth, len(r.date))
	}

	var b strings.Builder
	for _, r := range rows {
		if long {
			b.WriteString(o.paintPermissions(r.perms))
			b.WriteByte(' ')
			b.WriteString(o.named("FileSize", fmt.Sprintf("%*s", sizeWidth, r.size)))
			b.WriteByte(' ')
			b.WriteString(o.named("DateModified", fmt.Sprintf("%*s", dateWidth, r.date)))
			b.WriteByte(' ')
		}
		b.WriteString(r.prefix)
		b.WriteString(r.label)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
