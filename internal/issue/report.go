package issue

import (
	"fmt"

	"tweec/internal/diag"
	"tweec/internal/story"
	"tweec/internal/storyfiles"
	"tweec/internal/suggest"
)

// referentNote annotates the prior definition a duplicate warning points at.
const referentNote = "Previously defined here. Duplicate discarded."

// Diagnostic assembles the rich rendering record for the issue: severity,
// message, stable code, a primary label when the context resolves through
// the code map, a secondary label for the referent, and any note the
// suggestion engine produces. An unresolvable context is not an error; the
// diagnostic simply renders without labels.
func (i Issue) Diagnostic(files *storyfiles.Files) diag.Diagnostic {
	d := diag.New(i.Severity(), i.Name(), i.Message())

	fileID, byteRange, ok := files.Resolve(i.Context())
	if !ok {
		return d
	}
	d = d.WithPrimary(fileID, byteRange)

	if refID, refRange, ok := files.Resolve(i.Referent()); ok {
		d = d.WithSecondary(refID, refRange, referentNote)
	}

	if note, ok := i.suggestion(files); ok {
		d = d.WithNote(note)
	}
	return d
}

// suggestion runs the heuristics for the two auto-correctable warning kinds.
func (i Issue) suggestion(files *storyfiles.Files) (string, bool) {
	w := i.Warning()
	if w == nil {
		return "", false
	}

	switch w.Kind {
	case story.WarnDeadLink:
		// No suggestions without reliable passage identity.
		if files.PassageNames == nil {
			return "", false
		}
		candidate, ok := suggest.BestMatch(w.Target, files.PassageNames)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Found passage with similar name: %q", candidate), true

	case story.WarnWhitespaceInLink:
		if w.Context == nil {
			return "", false
		}
		repaired, ok := suggest.RepairLink(w.Context.Contents)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Try replacing %s with %s", w.Context.Contents, repaired), true
	}
	return "", false
}
