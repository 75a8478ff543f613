package cmd

import (
	"fmt"
	"os"

	"github.com/rwnicholas/WitcherScript/internal/cerr"
	"github.com/rwnicholas/WitcherScript/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a WitcherScript file and print its syntax tree",
	Long: `Parse a WitcherScript program and print the resulting statement list.

Examples:
  witcher parse script.witcher
  witcher parse -e 'contract x = 1 + 2'`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading a file")
}

func parseScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := parser.ParseSource(source)
	if err != nil {
		report := cerr.FromError(err, displayName(filename), source)
		fmt.Fprint(os.Stderr, report.Format())
		return errSilent
	}

	for i, stmt := range prog.Statements {
		fmt.Printf("%3d: %s\n", i, stmt.String())
	}
	return nil
}
