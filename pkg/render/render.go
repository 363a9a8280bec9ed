package render

import (
	"time"

	"github.com/arthur-debert/xf/pkg/classify"
	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/styles"
	"github.com/charmbracelet/lipgloss"
)

// Default layout values.
const (
	DefaultWidth      = 80
	DefaultGap        = 2
	DefaultTimeRecent = "Jan _2 15:04"
	DefaultTimeOld    = "Jan _2  2006"
)

// Options controls every renderer.
type Options struct {
	Classifier *classify.Classifier
	Styles     *styles.Registry
	// Color paints through lipgloss; without it output is plain text.
	Color bool
	// Width is the terminal width the grid packs into.
	Width int
	// Gap is the number of spaces between grid columns.
	Gap   int
	Sizes SizeForm
	// TimeRecent and TimeOld are Go layouts for dates in the current year
	// and in other years.
	TimeRecent string
	TimeOld    string
	Now        time.Time
}

func (o Options) withDefaults() Options {
	if o.Classifier == nil {
		o.Classifier = classify.New()
	}
	if o.Styles == nil {
		o.Styles = styles.Default()
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Gap <= 0 {
		o.Gap = DefaultGap
	}
	if o.TimeRecent == "" {
		o.TimeRecent = DefaultTimeRecent
	}
	if o.TimeOld == "" {
		o.TimeOld = DefaultTimeOld
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

func (o Options) paint(style lipgloss.Style, s string) string {
	if !o.Color || s == "" {
		return s
	}
	return style.Render(s)
}

func (o Options) named(styleName, s string) string {
	if !o.Color {
		return s
	}
	return o.paint(o.Styles.Get(styleName), s)
}

func (o Options) name(e entry.Entry) string {
	return o.paint(o.Classifier.StyleFor(e), e.Name())
}
