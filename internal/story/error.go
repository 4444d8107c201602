package story

import "fmt"

// ErrorKind enumerates the fatal parse errors a front-end reports.
type ErrorKind uint8

const (
	ErrBadInputPath ErrorKind = iota
	ErrEmptyName
	ErrMissingSigil
	ErrMetadataMalformed
)

// Name returns the stable identifier used as the diagnostic code.
func (k ErrorKind) Name() string {
	switch k {
	case ErrBadInputPath:
		return "BadInputPath"
	case ErrEmptyName:
		return "EmptyName"
	case ErrMissingSigil:
		return "MissingSigil"
	case ErrMetadataMalformed:
		return "MetadataMalformed"
	}
	return "Unknown"
}

// Error is a fatal parse defect. Unlike warnings, errors are never subject
// to allow/deny policy.
type Error struct {
	Kind ErrorKind
	// Detail carries the kind-specific payload (a path, a parser message).
	Detail string
	// Context is the primary source position, nil for story-level errors.
	Context *Context
}

// Name returns the error's stable identifier.
func (e *Error) Name() string {
	return e.Kind.Name()
}

// Message renders the human-readable description of the error.
func (e *Error) Message() string {
	switch e.Kind {
	case ErrBadInputPath:
		return fmt.Sprintf("Failed to read input path: %s", e.Detail)
	case ErrEmptyName:
		return "Passage header has an empty passage name"
	case ErrMissingSigil:
		return "Passage header does not start with ::"
	case ErrMetadataMalformed:
		return fmt.Sprintf("Malformed passage metadata: %s", e.Detail)
	}
	return "Unknown error"
}

func (e Error) String() string {
	return e.Message()
}

// ErrorList is the failure side of a parse: the errors encountered plus the
// code map for whatever sources were read before parsing gave up.
type ErrorList struct {
	Errors  []Error
	CodeMap CodeMap
}
