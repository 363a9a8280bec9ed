// Package classify maps entries to styles. A Classifier holds an ordered
// list of named groups; the first group with a matching rule decides the
// style, and entries no group claims get the default style.
package classify

import (
	"github.com/arthur-debert/xf/pkg/entry"
	"github.com/arthur-debert/xf/pkg/filter"
	"github.com/arthur-debert/xf/pkg/sorting"
	"github.com/charmbracelet/lipgloss"
)

// Group is a named set of rules sharing one style.
type Group struct {
	name  string
	style lipgloss.Style
	rules []Match
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Style returns the group style.
func (g *Group) Style() lipgloss.Style { return g.style }

// Rules returns a copy of the group's rules in insertion order.
func (g *Group) Rules() []Match { return append([]Match(nil), g.rules...) }

// Matches reports whether any rule applies to e.
func (g *Group) Matches(e entry.Entry) bool {
	for _, r := range g.rules {
		if r.Matches(e) {
			return true
		}
	}
	return false
}

// Keep lets a group act as a filter.
func (g *Group) Keep(e entry.Entry) bool { return g.Matches(e) }

// add merges rule: set-valued rules union with an existing rule of the
// same tag, single-valued duplicates are dropped.
func (g *Group) add(rule Match) {
	for i, existing := range g.rules {
		if !existing.sameRule(rule) {
			continue
		}
		if rule.tag.setValued() {
			g.rules[i] = existing.union(rule)
		}
		return
	}
	g.rules = append(g.rules, rule)
}

// Classifier assigns styles to entries by first matching group.
type Classifier struct {
	groups   []*Group
	index    map[string]int
	fallback lipgloss.Style
}

// New returns an empty classifier whose default style is plain.
func New() *Classifier {
	return &Classifier{
		index:    make(map[string]int),
		fallback: lipgloss.NewStyle(),
	}
}

// WithDefault sets the style used when no group matches.
func (c *Classifier) WithDefault(style lipgloss.Style) *Classifier {
	c.fallback = style
	return c
}

// Group appends a group. If a group with that name exists, the rules are
// merged into it and its style and position are kept.
func (c *Classifier) Group(name string, style lipgloss.Style, rules ...Match) *Classifier {
	if i, ok := c.index[name]; ok {
		for _, r := range rules {
			c.groups[i].add(r)
		}
		return c
	}
	g := &Group{name: name, style: style}
	for _, r := range rules {
		g.add(r)
	}
	c.index[name] = len(c.groups)
	c.groups = append(c.groups, g)
	return c
}

// Add merges rule into the named group. It reports false, and changes
// nothing, when the group does not exist.
func (c *Classifier) Add(name string, rule Match) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.groups[i].add(rule)
	return true
}

// Restyle replaces the style of the named group.
func (c *Classifier) Restyle(name string, style lipgloss.Style) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.groups[i].style = style
	return true
}

// Lookup returns the named group.
func (c *Classifier) Lookup(name string) (*Group, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.groups[i], true
}

// Groups returns the groups in match order.
func (c *Classifier) Groups() []*Group {
	return append([]*Group(nil), c.groups...)
}

// GroupFor returns the first group matching e.
func (c *Classifier) GroupFor(e entry.Entry) (*Group, bool) {
	for _, g := range c.groups {
		if g.Matches(e) {
			return g, true
		}
	}
	return nil, false
}

// StyleFor returns the style of the first group matching e, or the
// default style.
func (c *Classifier) StyleFor(e entry.Entry) lipgloss.Style {
	if g, ok := c.GroupFor(e); ok {
		return g.style
	}
	return c.fallback
}

// SortGroups turns the groups into sorting partitions, in match order, so
// a listing can be ordered group by group.
func (c *Classifier) SortGroups(inner sorting.Strategy) []sorting.Group {
	out := make([]sorting.Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = sorting.Group{Match: g, Sort: inner}
	}
	return out
}

var _ filter.Filter = (*Group)(nil)
