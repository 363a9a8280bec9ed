// Package ui decides how a listing reaches the terminal: which output
// format applies, which color profile lipgloss paints with and how wide
// the grid may grow.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Terminal is the resolved output setup for one run.
type Terminal struct {
	Format Format
	Width  int
}

// Color reports whether renderers should paint.
func (t Terminal) Color() bool {
	return t.Format == FormatTerminal
}

// Setup resolves format against w and points the default lipgloss renderer
// at the matching color profile. Forcing term onto a pipe still paints,
// with 256 colors.
func Setup(format Format, w io.Writer) Terminal {
	resolved := Resolve(format, w)

	switch resolved {
	case FormatTerminal:
		profile := termenv.ANSI256
		if file, ok := w.(*os.File); ok {
			if detected := termenv.NewOutput(file).ColorProfile(); detected != termenv.Ascii {
				profile = detected
			}
		}
		lipgloss.SetColorProfile(profile)
	default:
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return Terminal{Format: resolved, Width: Width(w)}
}

// Width returns the column count of the terminal behind w, or
// DefaultWidth.
func Width(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
