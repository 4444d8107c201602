package diagfmt

import (
	"fmt"

	"tweec/internal/diag"
	"tweec/internal/issue"
)

// Compact writes one line per issue: a colored severity label followed by
// the issue's message. No source snippets. Any write error is returned
// immediately and aborts the pass.
func Compact(c *Console, issues []issue.Issue) error {
	for _, is := range issues {
		label := c.warnLabel
		if is.Severity() == diag.SevError {
			label = c.errLabel
		}
		if _, err := label.Fprintf(c.w, "%s: ", is.Severity().Label()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.w, is.Message()); err != nil {
			return err
		}
	}
	return nil
}
