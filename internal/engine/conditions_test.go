package engine

import (
	"testing"

	"homeo-advisor/internal/catalog"
)

// stubRandom cycles through a fixed sequence of draws.
type stubRandom struct {
	values []float64
	i      int
}

func (s *stubRandom) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func TestSelectConditionsMatchedRange(t *testing.T) {
	c := testCatalog(t)
	sig := SignalSet{Text: "throbbing pain with light sensitivity and nausea"}
	rng := &stubRandom{values: []float64{0.0, 0.999}}

	got := SelectConditions(c, catalog.CategoryHeadache, sig, rng)
	if len(got) == 0 {
		t.Fatal("expected matched conditions")
	}
	if len(got) == len(c.Conditions(catalog.CategoryHeadache)) {
		t.Fatalf("expected a filtered subset, got all %d conditions", len(got))
	}
	for _, m := range got {
		if m.Probability < 60 || m.Probability >= 90 {
			t.Fatalf("matched probability %d outside [60,90)", m.Probability)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Probability > got[i-1].Probability {
			t.Fatalf("conditions not sorted descending: %v", got)
		}
	}
}

func TestSelectConditionsFallbackReturnsAllLowConfidence(t *testing.T) {
	c := testCatalog(t)
	sig := SignalSet{Text: "nothing that matches any keyword here"}
	rng := &stubRandom{values: []float64{0.5}}

	got := SelectConditions(c, catalog.CategoryDigestive, sig, rng)
	if len(got) != len(c.Conditions(catalog.CategoryDigestive)) {
		t.Fatalf("fallback must return every condition, got %d of %d",
			len(got), len(c.Conditions(catalog.CategoryDigestive)))
	}
	for _, m := range got {
		if m.Probability < 20 || m.Probability >= 50 {
			t.Fatalf("fallback probability %d outside [20,50)", m.Probability)
		}
	}
}

func TestSelectConditionsProbabilityBoundaries(t *testing.T) {
	c := testCatalog(t)
	sig := SignalSet{Text: "light sensitivity"}

	low := SelectConditions(c, catalog.CategoryHeadache, sig, &stubRandom{values: []float64{0.0}})
	if low[0].Probability != 60 {
		t.Fatalf("expected lower bound 60, got %d", low[0].Probability)
	}
	high := SelectConditions(c, catalog.CategoryHeadache, sig, &stubRandom{values: []float64{0.9999}})
	if high[0].Probability != 89 {
		t.Fatalf("expected upper bound 89, got %d", high[0].Probability)
	}
}
