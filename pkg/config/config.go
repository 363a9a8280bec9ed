package config

import (
	"io"
	"strings"

	"github.com/arthur-debert/xf/pkg/classify"
	"github.com/arthur-debert/xf/pkg/errors"
	"github.com/arthur-debert/xf/pkg/render"
	"github.com/arthur-debert/xf/pkg/styles"
	"github.com/arthur-debert/xf/pkg/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Hidden positions.
const (
	HiddenFirst = "first"
	HiddenLast  = "last"
	HiddenMixed = "mixed"
)

// Config is the effective configuration.
type Config struct {
	StylesFile string  `koanf:"styles_file" toml:"styles_file"`
	Listing    Listing `koanf:"listing" toml:"listing"`
	Format     Format  `koanf:"format" toml:"format"`
	Groups     []Group `koanf:"groups" toml:"groups,omitempty"`

	// Source is the user file that was loaded, if any.
	Source string `koanf:"-" toml:"-"`
}

// Listing holds the entry pipeline settings.
type Listing struct {
	HiddenPosition          string   `koanf:"hidden_position" toml:"hidden_position"`
	ExecutableExtensions    []string `koanf:"executable_extensions" toml:"executable_extensions"`
	CaseSensitiveExtensions bool     `koanf:"case_sensitive_extensions" toml:"case_sensitive_extensions"`
}

// Format holds the rendering settings.
type Format struct {
	Output     string `koanf:"output" toml:"output"`
	TimeRecent string `koanf:"time_recent" toml:"time_recent"`
	TimeOld    string `koanf:"time_old" toml:"time_old"`
	Humansize  string `koanf:"humansize" toml:"humansize"`
	GridGap    int    `koanf:"grid_gap" toml:"grid_gap"`
}

// Group is a user classifier group. Match takes the flag rules
// "directory", "hidden" and "executable".
type Group struct {
	Name       string   `koanf:"name" toml:"name"`
	Style      string   `koanf:"style" toml:"style,omitempty"`
	Match      []string `koanf:"match" toml:"match,omitempty"`
	StartsWith []string `koanf:"starts_with" toml:"starts_with,omitempty"`
	EndsWith   []string `koanf:"ends_with" toml:"ends_with,omitempty"`
	Filenames  []string `koanf:"filenames" toml:"filenames,omitempty"`
	Extensions []string `koanf:"extensions" toml:"extensions,omitempty"`
}

// Validate checks every enumerated value.
func (c *Config) Validate() error {
	switch c.Listing.HiddenPosition {
	case HiddenFirst, HiddenLast, HiddenMixed:
	default:
		return invalid("listing.hidden_position", c.Listing.HiddenPosition, "first, last, mixed")
	}
	if _, err := render.ParseSizeForm(c.Format.Humansize); err != nil {
		return invalid("format.humansize", c.Format.Humansize, "decimal, integer")
	}
	if _, err := ui.ParseFormat(c.Format.Output); err != nil {
		return invalid("format.output", c.Format.Output, "auto, term, text, json")
	}
	if c.Format.GridGap < 1 {
		return invalid("format.grid_gap", c.Format.GridGap, "a positive number")
	}
	for i, g := range c.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return invalid("groups.name", i, "a non-empty name for every group")
		}
		if _, err := g.rules(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(key string, value interface{}, valid string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s: %v (expected %s)", key, value, valid).
		WithDetail("key", key)
}

// rules converts the group into classifier rules.
func (g Group) rules() ([]classify.Match, error) {
	var rules []classify.Match
	for _, m := range g.Match {
		switch strings.ToLower(m) {
		case "directory":
			rules = append(rules, classify.Directory())
		case "hidden":
			rules = append(rules, classify.Hidden())
		case "executable":
			rules = append(rules, classify.Executable())
		default:
			return nil, invalid("groups."+g.Name+".match", m, "directory, hidden, executable")
		}
	}
	for _, s := range g.StartsWith {
		rules = append(rules, classify.StartsWith(s))
	}
	for _, s := range g.EndsWith {
		rules = append(rules, classify.EndsWith(s))
	}
	if len(g.Filenames) > 0 {
		rules = append(rules, classify.Filenames(g.Filenames...))
	}
	if len(g.Extensions) > 0 {
		rules = append(rules, classify.Extensions(g.Extensions...))
	}
	return rules, nil
}

// Styles returns the configured style registry.
func (c *Config) Styles() (*styles.Registry, error) {
	if c.StylesFile == "" {
		return styles.Default(), nil
	}
	path, err := homedir.Expand(c.StylesFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot resolve styles file %s", c.StylesFile)
	}
	return styles.Load(path)
}

// Classifier builds the built-in groups and applies the user groups: a
// known name amends that group, a new name is appended.
func (c *Config) Classifier(reg *styles.Registry) (*classify.Classifier, error) {
	cl := classify.Defaults(reg)
	for _, g := range c.Groups {
		rules, err := g.rules()
		if err != nil {
			return nil, err
		}
		if _, exists := cl.Lookup(g.Name); exists {
			for _, r := range rules {
				cl.Add(g.Name, r)
			}
			if g.Style != "" {
				cl.Restyle(g.Name, reg.Get(g.Style))
			}
			continue
		}
		cl.Group(g.Name, reg.Get(g.Style), rules...)
	}
	return cl, nil
}

// SizeForm returns the parsed humansize form.
func (c *Config) SizeForm() render.SizeForm {
	form, _ := render.ParseSizeForm(c.Format.Humansize)
	return form
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() ui.Format {
	format, _ := ui.ParseFormat(c.Format.Output)
	return format
}

// Dump writes the effective configuration as TOML.
func (c *Config) Dump(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return nil
}
