package cmd

import (
	"fmt"
	"os"

	"github.com/rwnicholas/WitcherScript/internal/cerr"
	"github.com/rwnicholas/WitcherScript/internal/lexer"
	"github.com/rwnicholas/WitcherScript/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a WitcherScript file or expression",
	Long: `Tokenize a WitcherScript program and print the resulting tokens.

Examples:
  witcher lex script.witcher
  witcher lex -e 'medallion("Hello, Witcher!")'
  witcher lex --show-type --show-pos script.witcher`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s (%d bytes)\n", filename, len(source))
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		report := cerr.FromError(err, displayName(filename), source)
		fmt.Fprint(os.Stderr, report.Format())
		return errSilent
	}

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type)
	}
	if tok.Type == token.EOF {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}

func readSource(args []string) (source, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
	}
}
