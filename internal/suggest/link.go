package suggest

import "strings"

// RepairLink takes the raw source text of a [[...]] link flagged for stray
// whitespace and returns the link with its target trimmed. The second
// result is false only when the text is too short to carry the two-character
// delimiters. The repaired link can equal the input when the stray
// whitespace sits outside the target (in the label of a piped link).
//
// The target inside the delimiters is found by precedence: after the first
// "|" if present, else before "<-", else after "->", else the whole
// contents. Only the first occurrence of the untrimmed target is replaced.
func RepairLink(link string) (string, bool) {
	if len(link) < 4 {
		return "", false
	}
	contents := link[2 : len(link)-2]

	var target string
	switch {
	case strings.Contains(contents, "|"):
		_, target, _ = strings.Cut(contents, "|")
	case strings.Contains(contents, "<-"):
		target, _, _ = strings.Cut(contents, "<-")
	case strings.Contains(contents, "->"):
		_, target, _ = strings.Cut(contents, "->")
	default:
		target = contents
	}

	trimmed := strings.TrimSpace(target)
	return strings.Replace(link, target, trimmed, 1), true
}
