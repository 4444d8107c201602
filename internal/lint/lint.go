// Package lint runs the diagnostics pipeline over a front-end's output:
// classify against policy, order by position, render, and decide the run.
package lint

import (
	"errors"

	"tweec/internal/config"
	"tweec/internal/diag"
	"tweec/internal/diagfmt"
	"tweec/internal/issue"
	"tweec/internal/story"
	"tweec/internal/storyfiles"
)

// ErrFailed is returned when any parse error or denied warning exists.
// The message is user-facing and stable.
var ErrFailed = errors.New("Failed due to previous errors")

// Run lints the parse output against cfg and writes the report to the
// console. On success it returns the validated story; on policy or parse
// failure it returns ErrFailed, and any rendering I/O error propagates
// as-is. The console is released — color reset, buffer flushed — on every
// path before returning.
func Run(out story.Output, cfg *config.Config, console *diagfmt.Console) (*story.Story, error) {
	files := storyfiles.New(out.Result)
	issues, failed := issue.FilterAndSort(out.Result, out.Warnings, cfg)

	if err := render(issues, cfg, console, files); err != nil {
		// Render errors trump the release error; the reset still runs.
		_ = console.Release()
		return nil, err
	}
	if err := console.Release(); err != nil {
		return nil, err
	}

	if failed {
		return nil, ErrFailed
	}
	return out.Result.Story, nil
}

func render(issues []issue.Issue, cfg *config.Config, console *diagfmt.Console, files *storyfiles.Files) error {
	if cfg.Compact {
		return diagfmt.Compact(console, issues)
	}

	diags := make([]diag.Diagnostic, 0, len(issues))
	for _, is := range issues {
		diags = append(diags, is.Diagnostic(files))
	}
	return diagfmt.Pretty(console, diags, files)
}
