package engine

import (
	"sort"
	"strings"

	"homeo-advisor/internal/catalog"
)

// keywordWeight is added per trigger keyword found in the signal text.
const keywordWeight = 3

// maxCategories caps how many categories selection returns.
const maxCategories = 3

// sleepTroubleMarkers flag sleep disruption in duration or sleep-pattern
// text.
var sleepTroubleMarkers = []string{
	"trouble", "difficult", "poor", "insomnia", "wake up", "can't sleep",
}

// ScoreCategories runs the weighted keyword pass over every category, then
// applies the cross-signal modifiers. The result covers all known
// categories; unmatched ones score 0.
func ScoreCategories(cat *catalog.Catalog, sig SignalSet) map[catalog.Category]int {
	scores := make(map[catalog.Category]int, len(catalog.Categories))
	for _, c := range catalog.Categories {
		scores[c] = 0
		for _, keyword := range cat.Triggers(c) {
			if strings.Contains(sig.Text, keyword) {
				scores[c] += keywordWeight
			}
		}
	}

	// High intensity amplifies existing matches only; it never creates one.
	if sig.Intensity > 7 {
		for _, c := range catalog.Categories {
			if scores[c] > 0 {
				scores[c] += 2
			}
		}
	}

	// High stress aggravates sleep and headaches as secondary effects.
	if sig.Stress > 6 {
		scores[catalog.CategoryStress] += 3
		scores[catalog.CategorySleep]++
		scores[catalog.CategoryHeadache]++
	}

	// Disrupted sleep feeds back into stress.
	sleepEvidence := sig.Duration + " " + sig.SleepText
	for _, marker := range sleepTroubleMarkers {
		if strings.Contains(sleepEvidence, marker) {
			scores[catalog.CategorySleep] += 3
			scores[catalog.CategoryStress]++
			break
		}
	}

	return scores
}

// SelectCategories ranks categories by score, highest first, keeping only
// strictly positive scores and at most maxCategories entries. Ties keep
// category definition order.
func SelectCategories(scores map[catalog.Category]int) []catalog.Category {
	ranked := make([]catalog.Category, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if scores[c] > 0 {
			ranked = append(ranked, c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) > maxCategories {
		ranked = ranked[:maxCategories]
	}
	return ranked
}
