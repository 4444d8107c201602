// Package suggest holds the heuristics behind tweec's auto-correctable
// warnings: near-miss passage names for dead links and whitespace repair
// for sloppy link markup.
package suggest

import (
	"sort"

	"github.com/xrash/smetrics"
	"golang.org/x/text/unicode/norm"
)

// similarityThreshold is the minimum Jaro-Winkler score a candidate needs
// to count as a near miss.
const similarityThreshold = 0.8

// DidYouMean returns the known passage names whose Jaro-Winkler similarity
// to target exceeds 0.8, ordered ascending by score so the best candidate
// is last. Names are NFC-normalized before comparison; the returned strings
// are the original candidates.
func DidYouMean(target string, candidates []string) []string {
	type scored struct {
		score float64
		name  string
	}

	normalTarget := norm.NFC.String(target)
	survivors := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := smetrics.JaroWinkler(normalTarget, norm.NFC.String(candidate), 0.7, 4)
		if score > similarityThreshold {
			survivors = append(survivors, scored{score: score, name: candidate})
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score < survivors[j].score
	})

	out := make([]string, len(survivors))
	for i, s := range survivors {
		out[i] = s.name
	}
	return out
}

// BestMatch returns the single highest-scoring near miss, if any.
func BestMatch(target string, candidates []string) (string, bool) {
	matches := DidYouMean(target, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1], true
}
