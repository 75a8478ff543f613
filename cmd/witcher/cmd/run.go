package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rwnicholas/WitcherScript/internal/cerr"
	"github.com/rwnicholas/WitcherScript/internal/interp"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a WitcherScript file or inline expression",
	Long: `Execute a WitcherScript program from a file or inline source.

Examples:
  witcher run script.witcher
  witcher run -e 'medallion("Hello, Witcher!")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var source, filename, baseDir string

	switch {
	case evalExpr != "":
		source = evalExpr
		filename = "<eval>"
		baseDir, _ = os.Getwd()
	case len(args) == 1:
		filename = args[0]
		if ext := filepath.Ext(filename); ext != ".witcher" {
			fmt.Fprintf(os.Stderr, "warning: %s does not have the .witcher extension\n", filename)
		}
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
		baseDir = filepath.Dir(filename)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	e := interp.New(interp.Config{Stdout: os.Stdout, Stdin: os.Stdin})
	e.SetBaseDir(baseDir)

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	if err := e.Run(source); err != nil {
		report := cerr.FromError(err, displayName(filename), source)
		fmt.Fprint(os.Stderr, report.Format())
		return errSilent
	}
	return nil
}

func displayName(filename string) string {
	if filename == "<eval>" {
		return ""
	}
	return filename
}

// errSilent carries a non-zero exit without cobra re-printing the
// message it already wrote to stderr via cerr.
var errSilent = errSilentType{}

type errSilentType struct{}

func (errSilentType) Error() string { return "" }
