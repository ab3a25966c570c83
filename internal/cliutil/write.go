// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apidocswagger/internal/issues"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues prints one issue per line under a heading. Nothing is written
// when the list is empty.
func WriteIssues(w io.Writer, heading string, list []issues.Issue) {
	if len(list) == 0 {
		return
	}
	Writef(w, "%s (%d):\n", heading, len(list))
	for _, issue := range list {
		Writef(w, "  %s\n", issue.String())
	}
	Writef(w, "\n")
}
