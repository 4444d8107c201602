package diagfmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tweec/internal/diag"
	"tweec/internal/storyfiles"
)

// Pretty renders span-annotated diagnostics. For each record it prints
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	  <source line>
//	  ^~~~~~~
//
// followed by secondary labels and notes. Records without a primary label
// print the header without a position and skip the snippet. Color state is
// set before each severity label and underline and reset right after; the
// Console's Release handles the final reset and flush.
func Pretty(c *Console, diags []diag.Diagnostic, files *storyfiles.Files) error {
	for _, d := range diags {
		if err := prettyOne(c, d, files); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(c *Console, d diag.Diagnostic, files *storyfiles.Files) error {
	sevColor := c.warnLabel
	if d.Severity == diag.SevError {
		sevColor = c.errLabel
	}

	if d.Primary != nil {
		if pos, ok := labelPosition(files, *d.Primary); ok {
			if _, err := c.position.Fprintf(c.w, "%s: ", pos); err != nil {
				return err
			}
		}
	}
	if _, err := sevColor.Fprintf(c.w, "%s %s", d.Severity.String(), d.Code); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.w, ": %s\n", d.Message); err != nil {
		return err
	}

	if d.Primary != nil {
		if err := writeSnippet(c, *d.Primary, sevColor, files); err != nil {
			return err
		}
	}

	for _, label := range d.Secondary {
		pos, ok := labelPosition(files, label)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(c.w, "  note: %s: %s\n", pos, label.Message); err != nil {
			return err
		}
	}
	for _, note := range d.Notes {
		if _, err := fmt.Fprintf(c.w, "  note: %s\n", note); err != nil {
			return err
		}
	}
	return nil
}

// labelPosition formats "<path>:<line>:<col>" for a label's start offset.
func labelPosition(files *storyfiles.Files, label diag.Label) (string, bool) {
	name, ok := files.Name(label.File)
	if !ok {
		return "", false
	}
	lineIdx, ok := files.LineIndex(label.File, label.Range.Start)
	if !ok {
		return name, true
	}
	lineRange, ok := files.LineRange(label.File, lineIdx)
	if !ok {
		return name, true
	}
	col := label.Range.Start - lineRange.Start + 1
	return fmt.Sprintf("%s:%d:%d", name, lineIdx+1, col), true
}

// writeSnippet prints the source line the span starts on, with a ^~~~
// underline sized to the span's on-screen width.
func writeSnippet(c *Console, label diag.Label, sevColor *color.Color, files *storyfiles.Files) error {
	lineIdx, ok := files.LineIndex(label.File, label.Range.Start)
	if !ok {
		return nil
	}
	lineRange, ok := files.LineRange(label.File, lineIdx)
	if !ok {
		return nil
	}
	src, ok := files.Source(label.File)
	if !ok || int(lineRange.End) > len(src) || lineRange.Start > label.Range.Start {
		return nil
	}
	lineText := src[lineRange.Start:lineRange.End]

	if _, err := fmt.Fprintf(c.w, "  %s\n", lineText); err != nil {
		return err
	}

	// Underline from the span start to the span end, clamped to this line.
	spanStart := label.Range.Start
	spanEnd := min(label.Range.End, lineRange.End)
	if spanEnd < spanStart {
		spanEnd = spanStart
	}
	prefix := src[lineRange.Start:spanStart]
	covered := src[spanStart:spanEnd]

	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	width := max(runewidth.StringWidth(covered), 1)
	underline := "^" + strings.Repeat("~", width-1)

	if _, err := fmt.Fprintf(c.w, "  %s", pad); err != nil {
		return err
	}
	if _, err := sevColor.Fprintln(c.w, underline); err != nil {
		return err
	}
	return nil
}
