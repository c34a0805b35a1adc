package errors

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance is the largest edit distance still considered a
// plausible typo. Anything further apart is noise, not a suggestion.
const maxSuggestionDistance = 3

// maxSuggestions caps how many candidates a message carries.
const maxSuggestions = 3

// Suggest returns up to three candidates from valid that are within edit
// distance 3 of input, nearest first. Ties are broken alphabetically so
// error messages stay deterministic. Returns nil when nothing is close.
func Suggest(input string, valid []string) []string {
	type scored struct {
		name string
		dist int
	}
	var close []scored
	for _, v := range valid {
		if d := levenshtein.ComputeDistance(input, v); d <= maxSuggestionDistance {
			close = append(close, scored{name: v, dist: d})
		}
	}
	sort.Slice(close, func(i, j int) bool {
		if close[i].dist != close[j].dist {
			return close[i].dist < close[j].dist
		}
		return close[i].name < close[j].name
	})
	if len(close) > maxSuggestions {
		close = close[:maxSuggestions]
	}
	out := make([]string, len(close))
	for i, s := range close {
		out[i] = s.name
	}
	return out
}
