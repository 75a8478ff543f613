package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/cerr"
	"github.com/rwnicholas/WitcherScript/internal/interp"
	"github.com/rwnicholas/WitcherScript/internal/lexer"
	"github.com/rwnicholas/WitcherScript/internal/parser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval loop",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

const (
	promptFirst = "witcher> "
	promptMore  = "       > "
)

// runREPL implements the accumulate-until-parse-succeeds strategy: a
// genuine parse error is indistinguishable from an incomplete multi-line
// input, so the loop keeps reading lines until lexer.Tokenize and
// parser.Parse stop returning an error, exactly as the language's
// error-handling design calls for.
//
// Input is read on its own goroutine so the main loop can select between
// a completed line and an os.Interrupt, matching the original REPL's
// `except (KeyboardInterrupt, EOFError)` handling: both exit cleanly with
// a goodbye line rather than falling through to Go's default signal
// disposition.
func runREPL(_ *cobra.Command, _ []string) error {
	e := interp.New(interp.Config{Stdout: os.Stdout, Stdin: os.Stdin})
	baseDir, _ := os.Getwd()
	e.SetBaseDir(baseDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	var buffer strings.Builder

	prompt := promptFirst
	for {
		fmt.Print(prompt)

		var line string
		select {
		case <-sigCh:
			fmt.Println("\nGoodbye, Witcher!")
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Println("\nGoodbye, Witcher!")
				return nil // EOF or read error: exit cleanly
			}
			line = l
		}

		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			return nil
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")

		source := buffer.String()
		toks, lexErr := lexer.Tokenize(source)
		if lexErr != nil {
			prompt = promptMore
			continue
		}
		prog, parseErr := parser.Parse(toks)
		if parseErr != nil {
			prompt = promptMore
			continue
		}

		if err := e.RunProgram(prog); err != nil {
			report := cerr.FromError(err, "", source)
			fmt.Fprint(os.Stderr, report.Format())
		}
		buffer.Reset()
		prompt = promptFirst
	}
}
