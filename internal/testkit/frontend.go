// Package testkit provides a scripted story front-end. Tests (and any
// embedder that already has parse results in hand) use it to drive the
// diagnostics pipeline without a real Twee parser.
package testkit

import (
	"context"

	"tweec/internal/source"
	"tweec/internal/story"
)

// Frontend replays a fixed parse outcome. The zero value parses every
// input into an empty, warning-free story.
type Frontend struct {
	// Warnings are returned verbatim on every Parse.
	Warnings []story.Warning
	// Errors, when non-empty, turns the result into a parse failure.
	Errors []story.Error
	// Story overrides the success value; nil means a fresh empty story.
	Story *story.Story
}

// Parse implements story.Frontend. The FileSet the caller loaded becomes
// the code map of whichever side of the result it returns.
func (f *Frontend) Parse(_ context.Context, files *source.FileSet, _ []source.FileID) story.Output {
	if len(f.Errors) > 0 {
		return story.Output{
			Result: story.Result{Errors: &story.ErrorList{
				Errors:  f.Errors,
				CodeMap: files,
			}},
			Warnings: f.Warnings,
		}
	}

	s := f.Story
	if s == nil {
		s = &story.Story{Passages: map[string]*story.Passage{}}
	}
	s.CodeMap = files
	return story.Output{
		Result:   story.Result{Story: s},
		Warnings: f.Warnings,
	}
}
