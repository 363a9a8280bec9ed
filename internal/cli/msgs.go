package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort   = "List directory entries as a grid, a long listing or a tree"
	MsgTopicsShort = "Display available documentation topics"
	MsgTopicsLong  = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Flag descriptions
	MsgFlagTree         = "Recurse into directories and print a tree"
	MsgFlagLong         = "Long listing with permissions, size and modification date"
	MsgFlagGrid         = "Pack names into columns (the default)"
	MsgFlagFilter       = "Keep only entries whose name matches the regular expression"
	MsgFlagAll          = "Include hidden entries"
	MsgFlagLastModified = "Sort by modification time, oldest first"
	MsgFlagReverse      = "Reverse the name order"
	MsgFlagBySize       = "Sort by size, smallest first"
	MsgFlagSort         = "Sort by key: %s"
	MsgFlagExt          = "Keep only files with these extensions (directories are kept)"
	MsgFlagHiddenFirst  = "Put hidden entries before the others"
	MsgFlagNoGitignore  = "Do not apply .gitignore files in --tree"
	MsgFlagConfig       = "Config file (default: xf/config.toml in the XDG config directories)"
	MsgFlagDumpConfig   = "Print the effective configuration as TOML and exit"
	MsgFlagOutput       = "Output format: auto, term, text or json"
	MsgFlagLogFile      = "Also write logs to this file"
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// SortGroup orders entries by classifier group.
	SortGroup = "group"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
