package engine

import "homeo-advisor/internal/catalog"

const (
	// maxDrawnRemedies bounds the analyzer's random sample.
	maxDrawnRemedies = 3
	// remediesPerCategory is how many remedies each selected category
	// contributes in consultation mode.
	remediesPerCategory = 2
	// maxTotalRemedies hard-caps the consultation remedy list.
	maxTotalRemedies = 4
)

// DrawRemedies samples 2-3 remedies from one category by repeated uniform
// draw, suppressing duplicate names. A category with no remedies configured
// contributes nothing.
func DrawRemedies(cat *catalog.Catalog, category catalog.Category, rng RandomSource) []catalog.Remedy {
	pool := cat.Remedies(category)
	if len(pool) == 0 {
		return nil
	}

	count := 2
	if rng.Float64() < 0.5 {
		count = maxDrawnRemedies
	}
	if count > len(pool) {
		count = len(pool)
	}

	picked := make([]catalog.Remedy, 0, count)
	seen := make(map[string]bool, count)
	// Bounded attempts: duplicate draws are re-rolled, not counted.
	for attempts := 0; len(picked) < count && attempts < len(pool)*4; attempts++ {
		r := pool[int(rng.Float64()*float64(len(pool)))]
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		picked = append(picked, r)
	}
	return picked
}

// FrontRemedies takes up to two remedies from the front of each selected
// category's list, in category rank order, deduplicated by name and capped
// at four entries total. Trailing entries beyond the cap are dropped without
// re-ranking.
func FrontRemedies(cat *catalog.Catalog, categories []catalog.Category) []catalog.Remedy {
	picked := make([]catalog.Remedy, 0, maxTotalRemedies)
	seen := map[string]bool{}

	for _, c := range categories {
		pool := cat.Remedies(c)
		taken := 0
		for _, r := range pool {
			if taken == remediesPerCategory {
				break
			}
			if seen[r.Name] {
				continue
			}
			seen[r.Name] = true
			picked = append(picked, r)
			taken++
		}
	}

	if len(picked) > maxTotalRemedies {
		picked = picked[:maxTotalRemedies]
	}
	return picked
}
