package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/arthur-debert/xf/pkg/entry"
)

// jsonEntry is the machine-readable form of an entry.
type jsonEntry struct {
	Name       string      `json:"name"`
	Path       string      `json:"path"`
	Kind       string      `json:"kind"`
	Extension  string      `json:"extension,omitempty"`
	Size       int64       `json:"size"`
	Modified   *time.Time  `json:"modified,omitempty"`
	Symlink    bool        `json:"symlink"`
	Perms      string      `json:"permissions"`
	Hidden     bool        `json:"hidden"`
	Executable bool        `json:"executable"`
	Group      string      `json:"group,omitempty"`
	Children   []jsonEntry `json:"children,omitempty"`
}

func (o Options) toJSON(e entry.Entry) jsonEntry {
	meta := e.Metadata()
	ext, _ := e.Extension()
	out := jsonEntry{
		Name:       e.Name(),
		Path:       e.Path(),
		Kind:       e.Kind().String(),
		Extension:  ext,
		Size:       meta.Size,
		Symlink:    meta.Symlink,
		Perms:      PermissionString(e),
		Hidden:     e.IsHidden(),
		Executable: e.IsExecutable(),
	}
	if meta.HasModified() {
		modified := meta.Modified
		out.Modified = &modified
	}
	if g, ok := o.Classifier.GroupFor(e); ok {
		out.Group = g.Name()
	}
	return out
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

// JSON writes entries as a JSON array.
func JSON(w io.Writer, entries []entry.Entry, opts Options) error {
	opts = opts.withDefaults()
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = opts.toJSON(e)
	}
	return newEncoder(w).Encode(out)
}

// JSONTree writes root as a JSON object with nested children. It honors
// ignore files, unreadable directories and links to ancestors the same way
// Tree does.
func JSONTree(w io.Writer, root entry.Entry, src TreeSource, loader IgnoreLoader, opts Options) error {
	opts = opts.withDefaults()
	t := newTreeWalker(src, loader, opts, "render.json")
	children, top, err := t.start(root)
	if err != nil {
		return err
	}

	out := opts.toJSON(root)
	out.Children = t.nest(children, top)
	return newEncoder(w).Encode(out)
}

func (t *treeWalker) nest(children []entry.Entry, sc scope) []jsonEntry {
	var out []jsonEntry
	for _, c := range children {
		if !sc.include(c) {
			continue
		}
		node := t.opts.toJSON(c)
		if sub, key, ok := t.enter(c); ok {
			node.Children = t.nest(sub, t.scopeFor(c, sc))
			delete(t.open, key)
		}
		out = append(out, node)
	}
	return out
}
