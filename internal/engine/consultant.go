package engine

import "homeo-advisor/internal/catalog"

// GeneralCategory labels the fixed default result returned when a
// consultation arrives with no usable input. It is not a scored category.
const GeneralCategory = "general"

// lifestylePerCategory is how many tips each selected category contributes.
const lifestylePerCategory = 2

// generalDiagnosis and the placeholder recommendation make up the fixed
// default result for empty consultations.
const generalDiagnosis = "Thank you for your consultation. Based on the limited information provided, I recommend a general wellness approach. Please share more details about your symptoms for a more specific assessment."

var placeholderRecommendation = Recommendation{
	Remedy:      "Consultation",
	Dosage:      "N/A",
	Duration:    "N/A",
	Description: "Please provide more details about your symptoms, or book a session with a practitioner for a personalized assessment.",
}

var generalLifestyle = []string{
	"Maintain a balanced diet with plenty of fresh vegetables",
	"Aim for 7-8 hours of sleep on a regular schedule",
	"Take a daily walk of at least 30 minutes",
	"Practice a short daily relaxation or breathing exercise",
}

// Recommendation is one suggested remedy in a consultation result.
type Recommendation struct {
	Remedy      string `json:"remedy"`
	Dosage      string `json:"dosage"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ConsultationResult is the consultation engine's output aggregate.
type ConsultationResult struct {
	Diagnosis       string           `json:"diagnosis"`
	Recommendations []Recommendation `json:"recommendations"`
	Lifestyle       []string         `json:"lifestyle"`
	FollowUp        string           `json:"followUp"`
	Categories      []string         `json:"categories"`
}

// Consultant is the multi-category strategy behind the consultation
// endpoint. It can select up to three categories and, unlike the analyzer,
// may legitimately select none.
type Consultant struct {
	catalog *catalog.Catalog
	rng     RandomSource
}

func NewConsultant(c *catalog.Catalog, rng RandomSource) *Consultant {
	return &Consultant{catalog: c, rng: rng}
}

// Consult scores the responses and assembles the consultation result. A nil
// responses map is a validation failure; an all-empty one short-circuits to
// the fixed default result without running the scorer.
func (c *Consultant) Consult(responses map[string]string) (*ConsultationResult, error) {
	if responses == nil {
		return nil, ErrMissingInput
	}
	if AllEmpty(responses) {
		return defaultResult(), nil
	}

	sig, err := ExtractConsultationSignals(responses)
	if err != nil {
		return nil, err
	}

	scores := ScoreCategories(c.catalog, sig)
	selected := SelectCategories(scores)

	if len(selected) == 0 {
		return &ConsultationResult{
			Diagnosis:       NarrativeInsufficient,
			Recommendations: []Recommendation{placeholderRecommendation},
			Lifestyle:       generalLifestyle,
			FollowUp:        FollowUpDefault,
			Categories:      []string{},
		}, nil
	}

	remedies := FrontRemedies(c.catalog, selected)
	recommendations := make([]Recommendation, 0, len(remedies))
	for _, r := range remedies {
		recommendations = append(recommendations, Recommendation{
			Remedy:      r.Name,
			Dosage:      r.Dosage,
			Duration:    r.Duration,
			Description: r.Description,
		})
	}

	categories := make([]string, 0, len(selected))
	for _, cat := range selected {
		categories = append(categories, string(cat))
	}

	return &ConsultationResult{
		Diagnosis:       ComposeNarrative(c.catalog, selected, sig),
		Recommendations: recommendations,
		Lifestyle:       c.lifestyleTips(selected),
		FollowUp:        PlanConsultationFollowUp(selected),
		Categories:      categories,
	}, nil
}

// lifestyleTips takes the first tips of each selected category,
// deduplicated, in category rank order.
func (c *Consultant) lifestyleTips(selected []catalog.Category) []string {
	tips := []string{}
	seen := map[string]bool{}
	for _, cat := range selected {
		taken := 0
		for _, tip := range c.catalog.Lifestyle(cat) {
			if taken == lifestylePerCategory {
				break
			}
			if seen[tip] {
				continue
			}
			seen[tip] = true
			tips = append(tips, tip)
			taken++
		}
	}
	return tips
}

func defaultResult() *ConsultationResult {
	return &ConsultationResult{
		Diagnosis:       generalDiagnosis,
		Recommendations: []Recommendation{placeholderRecommendation},
		Lifestyle:       generalLifestyle,
		FollowUp:        FollowUpDefault,
		Categories:      []string{GeneralCategory},
	}
}
