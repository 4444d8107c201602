package story

import "fmt"

// WarningKind enumerates the non-fatal defects a front-end reports.
type WarningKind uint8

const (
	WarnUnclosedLink WarningKind = iota
	WarnWhitespaceInLink
	WarnDeadLink
	WarnDuplicateStoryTitle
	WarnDuplicateStoryData
	WarnMissingStoryTitle
	WarnMissingStoryData
	WarnMissingStartPassage
	WarnDeadStartPassage
	WarnUnclosedComment
	WarnEscapedOpenSquare
	WarnEscapedCloseSquare
	WarnEscapedOpenCurly
	WarnEscapedCloseCurly
	WarnJSONError
)

// Name returns the stable identifier used by allow/deny policy and as the
// diagnostic code. These strings are a compatibility surface: changing one
// silently breaks users' --allow/--deny arguments.
func (k WarningKind) Name() string {
	switch k {
	case WarnUnclosedLink:
		return "UnclosedLink"
	case WarnWhitespaceInLink:
		return "WhitespaceInLink"
	case WarnDeadLink:
		return "DeadLink"
	case WarnDuplicateStoryTitle:
		return "DuplicateStoryTitle"
	case WarnDuplicateStoryData:
		return "DuplicateStoryData"
	case WarnMissingStoryTitle:
		return "MissingStoryTitle"
	case WarnMissingStoryData:
		return "MissingStoryData"
	case WarnMissingStartPassage:
		return "MissingStartPassage"
	case WarnDeadStartPassage:
		return "DeadStartPassage"
	case WarnUnclosedComment:
		return "UnclosedComment"
	case WarnEscapedOpenSquare:
		return "EscapedOpenSquare"
	case WarnEscapedCloseSquare:
		return "EscapedCloseSquare"
	case WarnEscapedOpenCurly:
		return "EscapedOpenCurly"
	case WarnEscapedCloseCurly:
		return "EscapedCloseCurly"
	case WarnJSONError:
		return "JsonError"
	}
	return "Unknown"
}

// Warning is a non-fatal defect tied to at most one primary source context
// and, for duplicate-style warnings, the context of the prior definition.
type Warning struct {
	Kind WarningKind
	// Target carries the passage name payload of DeadLink/DeadStartPassage.
	Target string
	// Detail carries free-form payloads such as JSON parse error text.
	Detail string
	// Context is the primary source position, nil for story-level warnings.
	Context *Context
	// referent is the position of a conflicting earlier definition.
	referent *Context
}

// NewWarning constructs a warning with a primary context.
func NewWarning(kind WarningKind, ctx *Context) Warning {
	return Warning{Kind: kind, Context: ctx}
}

// WithReferent records the position of the earlier definition a
// duplicate-style warning conflicts with.
func (w Warning) WithReferent(ref *Context) Warning {
	w.referent = ref
	return w
}

// Name returns the warning's stable policy identifier.
func (w *Warning) Name() string {
	return w.Kind.Name()
}

// Referent returns the conflicting prior definition's context. A referent
// without a primary context cannot be rendered and reads as absent.
func (w *Warning) Referent() *Context {
	if w.Context == nil {
		return nil
	}
	return w.referent
}

// Message renders the human-readable description of the warning.
func (w *Warning) Message() string {
	switch w.Kind {
	case WarnUnclosedLink:
		return "Unclosed passage link"
	case WarnWhitespaceInLink:
		return "Whitespace in passage link"
	case WarnDeadLink:
		return fmt.Sprintf("Dead link to nonexistent passage %q", w.Target)
	case WarnDuplicateStoryTitle:
		return "Multiple StoryTitle passages found"
	case WarnDuplicateStoryData:
		return "Multiple StoryData passages found"
	case WarnMissingStoryTitle:
		return "No StoryTitle passage found"
	case WarnMissingStoryData:
		return "No StoryData passage found"
	case WarnMissingStartPassage:
		return "No Start passage found and no start passage set in StoryData"
	case WarnDeadStartPassage:
		return fmt.Sprintf("Start passage set to %q, but no such passage found", w.Target)
	case WarnUnclosedComment:
		return "Unclosed comment"
	case WarnEscapedOpenSquare:
		return "Unescaped [ character in passage text"
	case WarnEscapedCloseSquare:
		return "Unescaped ] character in passage text"
	case WarnEscapedOpenCurly:
		return "Unescaped { character in passage text"
	case WarnEscapedCloseCurly:
		return "Unescaped } character in passage text"
	case WarnJSONError:
		return fmt.Sprintf("Error encountered while parsing JSON: %s", w.Detail)
	}
	return "Unknown warning"
}

func (w Warning) String() string {
	return w.Message()
}
