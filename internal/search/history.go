package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxSuggestions bounds the number of recalled queries
const MaxSuggestions = 5

// SuggestQueries returns previously submitted queries that fuzzily contain input.
// history is most recent first; ties on distance keep that order.
// A blank input returns the most recent entries.
func SuggestQueries(input string, history []string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return head(history, MaxSuggestions)
	}

	ranks := fuzzy.RankFindNormalizedFold(input, history)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		// Exact repeats of the input are not useful suggestions
		if strings.EqualFold(r.Target, input) {
			continue
		}
		out = append(out, r.Target)
	}
	return head(out, MaxSuggestions)
}

func head(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
