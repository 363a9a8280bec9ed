// Package styles holds the named lipgloss styles used to paint listings.
//
// Styles are declared in YAML with adaptive colors that follow the terminal
// background. The embedded styles.yaml is the default registry; a user file
// can replace it entirely.
//
//	colors:
//	  blue: {light: "#1D4ED8", dark: "#60A5FA"}
//	styles:
//	  Directory: {bold: true, foreground: blue}
//
// A foreground or background that is not a declared color is used as a raw
// lipgloss color ("5", "#ff00ff").
package styles

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/xf/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles.
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded styles.yaml.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Parse(embeddedStyles)
		if err != nil {
			// Keep the program usable with unstyled output.
			r = &Registry{colors: map[string]lipgloss.AdaptiveColor{}, styles: map[string]lipgloss.Style{}}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// GetStyle retrieves a style from the default registry.
func GetStyle(name string) lipgloss.Style {
	return Default().Get(name)
}

// Load reads a styles file from disk.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles file %s", path).
			WithDetail("path", path)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse styles file %s", path).
			WithDetail("path", path)
	}
	return r, nil
}

// Parse builds a registry from YAML data.
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles data")
	}

	r := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		r.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		r.styles[name] = r.buildStyle(def)
	}
	return r, nil
}

// buildStyle constructs a lipgloss style from a style definition
func (r *Registry) buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(r.color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(r.color(def.Background))
	}
	return style
}

func (r *Registry) color(name string) lipgloss.TerminalColor {
	if c, ok := r.colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// Get returns the named style, or a plain style when it is not defined.
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Names lists the defined style names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge combines multiple named styles, later ones filling unset properties.
func (r *Registry) Merge(names ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for _, name := range names {
		result = result.Inherit(r.Get(name))
	}
	return result
}
