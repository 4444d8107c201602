// Package issue implements tweec's diagnostics pipeline core: the unified
// issue representation, allow/deny classification, position ordering, and
// the assembly of renderable diagnostics.
package issue

import (
	"tweec/internal/diag"
	"tweec/internal/story"
)

// Issue is a closed sum: either a fatal parse error or a classified
// warning whose denied flag was fixed at classification time. Issues are
// immutable once constructed.
type Issue struct {
	err     *story.Error
	warning *story.Warning
	denied  bool
}

// FromError wraps a parse error.
func FromError(e story.Error) Issue {
	return Issue{err: &e}
}

// FromWarning wraps a warning together with its policy verdict.
func FromWarning(w story.Warning, denied bool) Issue {
	return Issue{warning: &w, denied: denied}
}

// IsError reports whether the issue is a parse error (not a denied warning).
func (i Issue) IsError() bool {
	return i.err != nil
}

// Denied reports whether policy promoted this warning to an error.
func (i Issue) Denied() bool {
	return i.warning != nil && i.denied
}

// Warning returns the wrapped warning, or nil for an error issue.
func (i Issue) Warning() *story.Warning {
	return i.warning
}

// Severity folds the severity rule used everywhere downstream: parse errors
// and denied warnings render as errors, everything else as warnings.
func (i Issue) Severity() diag.Severity {
	if i.err != nil || i.denied {
		return diag.SevError
	}
	return diag.SevWarning
}

// Name returns the issue's stable identifier, used as the diagnostic code.
func (i Issue) Name() string {
	if i.err != nil {
		return i.err.Name()
	}
	return i.warning.Name()
}

// Message returns the issue's formatted description.
func (i Issue) Message() string {
	if i.err != nil {
		return i.err.Message()
	}
	return i.warning.Message()
}

// Context returns the issue's primary source context, which may be nil.
func (i Issue) Context() *story.Context {
	if i.err != nil {
		return i.err.Context
	}
	return i.warning.Context
}

// Referent returns the secondary context of duplicate-style warnings.
// Errors never carry one.
func (i Issue) Referent() *story.Context {
	if i.err != nil {
		return nil
	}
	return i.warning.Referent()
}
