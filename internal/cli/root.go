package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/xf/internal/version"
	"github.com/arthur-debert/xf/pkg/cobrax/topics"
	"github.com/arthur-debert/xf/pkg/logging"
	"github.com/arthur-debert/xf/pkg/sorting"
	"github.com/arthur-debert/xf/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// options holds the parsed command line.
type options struct {
	verbosity  int
	logFile    string
	configFile string
	dumpConfig bool
	output     string

	tree bool
	long bool
	grid bool

	pattern     string
	all         bool
	exts        []string
	hiddenFirst bool
	noGitignore bool

	lastModified bool
	reverse      bool
	bySize       bool
	sortKey      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "xf [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, opts.logFile)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return run(cmd, opts, path)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.tree, "tree", "R", false, MsgFlagTree)
	flags.BoolVarP(&opts.long, "long", "l", false, MsgFlagLong)
	flags.BoolVarP(&opts.grid, "grid", "g", false, MsgFlagGrid)
	flags.StringVarP(&opts.pattern, "filter", "f", "", MsgFlagFilter)
	flags.BoolVarP(&opts.all, "all", "a", false, MsgFlagAll)
	flags.BoolVarP(&opts.lastModified, "last-modified", "t", false, MsgFlagLastModified)
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, MsgFlagReverse)
	flags.BoolVarP(&opts.bySize, "by-size", "S", false, MsgFlagBySize)
	flags.StringVar(&opts.sortKey, "sort", "", fmt.Sprintf(MsgFlagSort, strings.Join(sortKeys(), ", ")))
	flags.StringSliceVar(&opts.exts, "ext", nil, MsgFlagExt)
	flags.BoolVar(&opts.hiddenFirst, "hidden-first", false, MsgFlagHiddenFirst)
	flags.BoolVar(&opts.noGitignore, "no-gitignore", false, MsgFlagNoGitignore)
	flags.StringVar(&opts.output, "output", "auto", MsgFlagOutput)
	flags.BoolVar(&opts.dumpConfig, "dump-config", false, MsgFlagDumpConfig)

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", MsgFlagLogFile)
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.MarkFlagsMutuallyExclusive("tree", "long", "grid")
	rootCmd.MarkFlagsMutuallyExclusive("last-modified", "reverse", "by-size", "sort")

	_ = rootCmd.RegisterFlagCompletionFunc("sort", fixedCompletions(sortKeys()))
	_ = rootCmd.RegisterFlagCompletionFunc("output", fixedCompletions([]string{"auto", "term", "text", "json"}))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		manager, err := topics.Initialize(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(ui.Width(os.Stdout)),
		})
		if err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		} else {
			rootCmd.AddCommand(newTopicsCmd(manager))
		}
	}

	return rootCmd
}

func newTopicsCmd(manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager.List(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		},
	}
}

func sortKeys() []string {
	return append(sorting.Names(), SortGroup)
}

func fixedCompletions(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
