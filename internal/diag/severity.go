package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning marks a policy-neutral warning.
	SevWarning Severity = iota
	// SevError marks a parse error or a warning denied by policy.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Label returns the capitalized form used by compact output.
func (s Severity) Label() string {
	switch s {
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	}
	return "Unknown"
}
