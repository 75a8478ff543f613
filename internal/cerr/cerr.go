// Package cerr formats lex/parse/runtime failures with source context for
// terminal display: a file:line:column header, the offending source
// line, and a caret pointing at the column.
//
// Modeled on CWBudde-go-dws's internal/errors.CompilerError.Format, with
// the color-bool parameter dropped — this interpreter's CLI never emits
// ANSI escapes (see cmd/witcher), so Format always renders plain text.
package cerr

import (
	"fmt"
	"strings"
)

// Report pairs a failure's position with the source it came from so it
// can be rendered with a caret under the offending column.
type Report struct {
	File    string
	Source  string
	Line    int
	Column  int
	Message string
}

// New builds a Report. file may be empty for stdin/REPL input.
func New(file, source string, line, column int, message string) *Report {
	return &Report{File: file, Source: source, Line: line, Column: column, Message: message}
}

// Format renders the report as the CLI prints it to stderr.
func (r *Report) Format() string {
	var sb strings.Builder

	if r.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", r.File, r.Line, r.Column, r.Message)
	} else {
		fmt.Fprintf(&sb, "%d:%d: %s\n", r.Line, r.Column, r.Message)
	}

	if line := r.sourceLine(); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", r.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		if r.Column > 0 {
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+r.Column-1))
			sb.WriteString("^\n")
		}
	}

	return sb.String()
}

func (r *Report) sourceLine() string {
	if r.Source == "" || r.Line < 1 {
		return ""
	}
	lines := strings.Split(r.Source, "\n")
	if r.Line > len(lines) {
		return ""
	}
	return lines[r.Line-1]
}
