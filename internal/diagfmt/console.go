// Package diagfmt renders ordered issue lists to a terminal, either one
// line per issue (compact) or as span-annotated diagnostics (pretty).
package diagfmt

import (
	"bufio"
	"io"

	"github.com/fatih/color"
)

// Console owns the output stream and its color state for the duration of
// one render pass. Acquire it once, render the whole batch, and Release it
// on every exit path: Release forces a color reset and a flush so stray
// escape state never leaks past the pipeline.
type Console struct {
	w       *bufio.Writer
	enabled bool

	errLabel  *color.Color
	warnLabel *color.Color
	position  *color.Color
}

// NewConsole wraps w. Color output is emitted only when enabled.
func NewConsole(w io.Writer, enabled bool) *Console {
	c := &Console{
		w:         bufio.NewWriter(w),
		enabled:   enabled,
		errLabel:  color.New(color.FgRed, color.Bold),
		warnLabel: color.New(color.FgYellow, color.Bold),
		position:  color.New(color.Bold),
	}
	for _, cc := range []*color.Color{c.errLabel, c.warnLabel, c.position} {
		if enabled {
			cc.EnableColor()
		} else {
			cc.DisableColor()
		}
	}
	return c
}

// Release resets terminal color state and flushes buffered output.
func (c *Console) Release() error {
	if c.enabled {
		if _, err := c.w.WriteString("\x1b[0m"); err != nil {
			return err
		}
	}
	return c.w.Flush()
}
