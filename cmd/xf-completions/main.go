package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/xf/internal/cli"
	"github.com/spf13/cobra"
)

var generators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func usage(prog string) {
	fmt.Fprintf(os.Stderr, `Usage: %s <bash|zsh|fish|powershell>

Prints the xf completion script for the shell. Besides flags, paths and
help topics it completes the keys of --sort and the modes of --output.

  %[1]s bash > /etc/bash_completion.d/xf
  %[1]s zsh > "${fpath[1]}/_xf"
  %[1]s fish > ~/.config/fish/completions/xf.fish
`, prog)
}

func main() {
	if len(os.Args) != 2 {
		usage(os.Args[0])
		os.Exit(1)
	}

	shell := os.Args[1]
	gen, ok := generators[shell]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\n\n", shell)
		usage(os.Args[0])
		os.Exit(1)
	}

	if err := gen(cli.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}
