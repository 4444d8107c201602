// Package diag defines the span-annotated diagnostic record the rich
// renderer consumes. Records are built from classified issues; the package
// itself knows nothing about warnings, policy, or rendering.
package diag

import "tweec/internal/source"

// Label points a diagnostic at a span of a resolved source file.
type Label struct {
	File  source.FileID
	Range source.ByteRange
	// Message annotates secondary labels; primary labels leave it empty.
	Message string
}

// Diagnostic is one renderable record. Primary is nil when the issue's
// context did not resolve to a known file, in which case the record renders
// with message and code only.
type Diagnostic struct {
	Severity  Severity
	Code      string
	Message   string
	Primary   *Label
	Secondary []Label
	Notes     []string
}

// New constructs a label-less diagnostic.
func New(sev Severity, code, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg}
}

// WithPrimary attaches the primary span.
func (d Diagnostic) WithPrimary(file source.FileID, r source.ByteRange) Diagnostic {
	d.Primary = &Label{File: file, Range: r}
	return d
}

// WithSecondary appends an annotated secondary span.
func (d Diagnostic) WithSecondary(file source.FileID, r source.ByteRange, msg string) Diagnostic {
	d.Secondary = append(d.Secondary, Label{File: file, Range: r, Message: msg})
	return d
}

// WithNote appends a free-form note.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, msg)
	return d
}
