package issue

import "sort"

// Compare orders two issues by the source position of their primary
// contexts: context-less issues first, then file-less contexts, then
// ascending (line, column).
//
// The comparator is deliberately not antisymmetric: when both sides lack a
// context, or both lack a file name, it answers -1 regardless of argument
// order. That matches the behavior this tool has always had; a stable sort
// consults only Compare(a, b) < 0, so ties keep their arrival order. Do not
// "fix" this without changing the ordering contract.
func Compare(left, right Issue) int {
	lctx, rctx := left.Context(), right.Context()
	switch {
	case lctx == nil:
		return -1
	case rctx == nil:
		return 1
	case !lctx.HasFileName():
		return -1
	case !rctx.HasFileName():
		return 1
	}

	if lctx.Start.Line != rctx.Start.Line {
		if lctx.Start.Line < rctx.Start.Line {
			return -1
		}
		return 1
	}
	switch {
	case lctx.Start.Col < rctx.Start.Col:
		return -1
	case lctx.Start.Col > rctx.Start.Col:
		return 1
	}
	return 0
}

// Sort orders issues in place, keeping the original relative order of
// entries the comparator cannot distinguish.
func Sort(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return Compare(issues[i], issues[j]) < 0
	})
}
