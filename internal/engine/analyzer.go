package engine

import "homeo-advisor/internal/catalog"

// defaultAnalyzerCategory is used when no category scores positively. The
// analyzer always resolves to a single category; unlike the consultation
// engine it never reports "not enough information".
const defaultAnalyzerCategory = catalog.CategoryHeadache

// AnalysisResult is the analyzer engine's output aggregate. Built once per
// request and returned as-is.
type AnalysisResult struct {
	Category            catalog.Category
	PotentialConditions []ConditionMatch
	RecommendedRemedies []catalog.Remedy
	Lifestyle           []string
	Dietary             []string
	FollowUp            string
}

// Analyzer is the single-category strategy behind the analyzer endpoint. It
// resolves input to one dominant category and recommends from that
// category's tables only.
type Analyzer struct {
	catalog *catalog.Catalog
	rng     RandomSource
}

func NewAnalyzer(c *catalog.Catalog, rng RandomSource) *Analyzer {
	return &Analyzer{catalog: c, rng: rng}
}

// Analyze runs the full pipeline: extract, score, select, recommend.
func (a *Analyzer) Analyze(in AnalyzerInput) (*AnalysisResult, error) {
	sig, err := ExtractAnalyzerSignals(in)
	if err != nil {
		return nil, err
	}

	scores := ScoreCategories(a.catalog, sig)
	selected := SelectCategories(scores)

	primary := defaultAnalyzerCategory
	if len(selected) > 0 {
		primary = selected[0]
	}

	return &AnalysisResult{
		Category:            primary,
		PotentialConditions: SelectConditions(a.catalog, primary, sig, a.rng),
		RecommendedRemedies: DrawRemedies(a.catalog, primary, a.rng),
		Lifestyle:           a.catalog.Lifestyle(primary),
		Dietary:             a.catalog.Dietary(primary),
		FollowUp:            PlanAnalyzerFollowUp(sig.RawSeverity, sig.Duration),
	}, nil
}
