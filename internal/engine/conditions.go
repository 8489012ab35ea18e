package engine

import (
	"sort"
	"strings"

	"homeo-advisor/internal/catalog"
)

// Probability ranges for matched and fallback conditions, in percent.
// Fallback draws sit low on purpose: they communicate uncertainty rather
// than omitting output entirely.
const (
	matchedProbLow   = 60
	matchedProbHigh  = 90
	fallbackProbLow  = 20
	fallbackProbHigh = 50
)

// ConditionMatch pairs a condition name with its assigned probability.
type ConditionMatch struct {
	Condition   string
	Probability int
}

// SelectConditions matches one category's conditions against the signal
// text. Conditions with at least one keyword hit get a high-confidence
// probability; when nothing matches, every condition in the category is
// returned with a low-confidence probability instead. The result is sorted
// by probability, highest first.
func SelectConditions(cat *catalog.Catalog, category catalog.Category, sig SignalSet, rng RandomSource) []ConditionMatch {
	conditions := cat.Conditions(category)

	matched := make([]catalog.Condition, 0, len(conditions))
	for _, cond := range conditions {
		for _, keyword := range cond.Keywords {
			if strings.Contains(sig.Text, keyword) {
				matched = append(matched, cond)
				break
			}
		}
	}

	lo, hi := matchedProbLow, matchedProbHigh
	if len(matched) == 0 {
		matched = conditions
		lo, hi = fallbackProbLow, fallbackProbHigh
	}

	results := make([]ConditionMatch, 0, len(matched))
	for _, cond := range matched {
		results = append(results, ConditionMatch{
			Condition:   cond.Name,
			Probability: intBetween(rng, lo, hi),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})
	return results
}
