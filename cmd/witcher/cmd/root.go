// Package cmd implements the witcher CLI's cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "witcher [path]",
	Short: "WitcherScript interpreter",
	Long: `witcher runs WitcherScript programs: a small dynamically typed
scripting language with Witcher-themed keywords.

With no arguments, witcher starts an interactive read-eval loop. Given a
file path, it loads and runs that file.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runDefault,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

// runDefault dispatches bare `witcher` to the REPL and `witcher <path>`
// to running that file, mirroring the single-binary entry point the
// language's external interface describes.
func runDefault(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runREPL(cmd, args)
	}
	return runScript(cmd, args)
}
