package cli

import (
	"github.com/arthur-debert/xf/pkg/classify"
	"github.com/arthur-debert/xf/pkg/config"
	"github.com/arthur-debert/xf/pkg/filesystem"
	"github.com/arthur-debert/xf/pkg/filter"
	"github.com/arthur-debert/xf/pkg/logging"
	"github.com/arthur-debert/xf/pkg/render"
	"github.com/arthur-debert/xf/pkg/scanner"
	"github.com/arthur-debert/xf/pkg/sorting"
	"github.com/arthur-debert/xf/pkg/ui"
	"github.com/spf13/cobra"
)

// overrides maps the flags that shadow config keys.
func (o *options) overrides(cmd *cobra.Command) map[string]interface{} {
	values := map[string]interface{}{}
	if cmd.Flags().Changed("output") {
		values["format.output"] = o.output
	}
	if o.hiddenFirst {
		values["listing.hidden_position"] = config.HiddenFirst
	}
	return values
}

// filter is the hidden rule, then the name pattern, then the extension
// set. An invalid pattern fails here, before anything is read.
func (o *options) filter(cfg *config.Config) (filter.Filter, error) {
	var parts []filter.Filter
	if !o.all {
		parts = append(parts, filter.Not(filter.Or(filter.Hidden(), filter.DotPrefix())))
	}
	if o.pattern != "" {
		re, err := filter.NewFilenameRegex(o.pattern)
		if err != nil {
			return nil, err
		}
		parts = append(parts, re)
	}
	if len(o.exts) > 0 {
		if cfg.Listing.CaseSensitiveExtensions {
			parts = append(parts, filter.NewCaseSensitiveExtensions(o.exts...))
		} else {
			parts = append(parts, filter.NewExtensions(o.exts...))
		}
	}
	return filter.All(parts...), nil
}

// strategy picks the key order from the sort flags, places hidden
// entries when they are listed and keeps directories first.
func (o *options) strategy(cfg *config.Config, cl *classify.Classifier) (sorting.Strategy, error) {
	key := sorting.Natural()
	switch {
	case o.sortKey == SortGroup:
		key = sorting.Grouping(cl.SortGroups(sorting.Natural()), sorting.Natural())
	case o.sortKey != "":
		named, err := sorting.Named(o.sortKey)
		if err != nil {
			return nil, err
		}
		key = named
	case o.lastModified:
		key = sorting.ByDateTime(sorting.Natural())
	case o.bySize:
		key = sorting.BySize(sorting.Natural())
	case o.reverse:
		key = sorting.Reverse(sorting.Natural())
	}

	if o.all {
		switch cfg.Listing.HiddenPosition {
		case config.HiddenFirst:
			key = sorting.HiddenFirst(key)
		case config.HiddenLast:
			key = sorting.HiddenLast(key)
		}
	}
	return sorting.DirectoryFirst(key), nil
}

func run(cmd *cobra.Command, opts *options, path string) error {
	logger := logging.GetLogger("cli")
	out := cmd.OutOrStdout()

	cfg, err := config.Load(config.Options{File: opts.configFile, Overrides: opts.overrides(cmd)})
	if err != nil {
		return err
	}
	if opts.dumpConfig {
		return cfg.Dump(out)
	}

	reg, err := cfg.Styles()
	if err != nil {
		return err
	}
	classifier, err := cfg.Classifier(reg)
	if err != nil {
		return err
	}
	keep, err := opts.filter(cfg)
	if err != nil {
		return err
	}
	order, err := opts.strategy(cfg, classifier)
	if err != nil {
		return err
	}

	term := ui.Setup(cfg.OutputFormat(), out)
	fsys := filesystem.NewOS()
	sc := scanner.New(fsys,
		scanner.WithFilter(keep),
		scanner.WithSorter(order),
		scanner.WithExecutableExtensions(cfg.Listing.ExecutableExtensions),
		scanner.WithLogger(logging.WithFields(map[string]interface{}{
			"component": "scanner",
			"root":      path,
		})),
	)
	ropts := render.Options{
		Classifier: classifier,
		Styles:     reg,
		Color:      term.Color(),
		Width:      term.Width,
		Gap:        cfg.Format.GridGap,
		Sizes:      cfg.SizeForm(),
		TimeRecent: cfg.Format.TimeRecent,
		TimeOld:    cfg.Format.TimeOld,
	}

	logger.Debug().
		Str("path", path).
		Str("format", term.Format.String()).
		Bool("tree", opts.tree).
		Bool("long", opts.long).
		Str("config", cfg.Source).
		Msg("Listing")

	if opts.tree {
		root, err := sc.Stat(path)
		if err != nil {
			return err
		}
		var loader render.IgnoreLoader
		if !opts.noGitignore {
			loader = render.GitIgnores(fsys)
		}
		if term.Format == ui.FormatJSON {
			return render.JSONTree(out, root, sc, loader, ropts)
		}
		return render.Tree(out, root, sc, loader, ropts)
	}

	entries, err := sc.Entries(path)
	if err != nil {
		return err
	}
	switch {
	case term.Format == ui.FormatJSON:
		return render.JSON(out, entries, ropts)
	case opts.long:
		return render.List(out, entries, ropts)
	default:
		return render.Grid(out, entries, ropts)
	}
}
