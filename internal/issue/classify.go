package issue

import (
	"tweec/internal/config"
	"tweec/internal/story"
)

// FilterAndSort applies allow/deny policy to the warnings, surfaces every
// parse error, and returns the unified issue list in source-position order
// plus the overall failure flag.
//
// Allowed warnings vanish entirely: they contribute neither output nor
// failure, and allow always beats deny. Denied warnings and parse errors
// both force failure; parse errors can never be filtered. The returned list
// is final — nothing downstream re-filters it.
func FilterAndSort(res story.Result, warnings []story.Warning, cfg *config.Config) ([]Issue, bool) {
	issues := make([]Issue, 0, len(warnings))
	failed := false

	for _, w := range warnings {
		name := w.Name()
		if cfg.Allows(name) {
			continue
		}
		denied := cfg.Denies(name)
		if denied {
			failed = true
		}
		issues = append(issues, FromWarning(w, denied))
	}

	if !res.Ok() {
		failed = true
		for _, e := range res.Errors.Errors {
			issues = append(issues, FromError(e))
		}
	}

	Sort(issues)
	return issues, failed
}
