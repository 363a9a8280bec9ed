package render

import (
	"io"
	"strings"

	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/charmbracelet/lipgloss"
)

// Grid packs names row by row into as many columns as fit the width. Each
// column is as wide as its widest name; names are never split, so a name
// wider than the terminal gets a row of its own.
func Grid(w io.Writer, entries []entry.Entry, opts Options) error {
	if len(entries) == 0 {
		return nil
	}
	opts = opts.withDefaults()

	widths := make([]int, len(entries))
	for i, e := range entries {
		widths[i] = lipgloss.Width(e.Name())
	}

	cols := fitColumns(widths, opts.Width, opts.Gap)
	colWidths := columnWidths(widths, cols)

	var b strings.Builder
	for i, e := range entries {
		col := i % cols
		if col > 0 {
			b.WriteString(strings.Repeat(" ", opts.Gap))
		}
		b.WriteString(opts.name(e))
		last := col == cols-1 || i == len(entries)-1
		if last {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(strings.Repeat(" ", colWidths[col]-widths[i]))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// fitColumns returns the largest column count whose packed rows fit width.
func fitColumns(widths []int, width, gap int) int {
	narrowest := widths[0]
	for _, w := range widths {
		narrowest = min(narrowest, w)
	}
	upper := min(len(widths), (width+gap)/(narrowest+gap))
	for cols := upper; cols > 1; cols-- {
		total := gap * (cols - 1)
		for _, cw := range columnWidths(widths, cols) {
			total += cw
		}
		if total <= width {
			return cols
		}
	}
	return 1
}

func columnWidths(widths []int, cols int) []int {
	out := make([]int, cols)
	for i, w := range widths {
		out[i%cols] = max(out[i%cols], w)
	}
	return out
}
