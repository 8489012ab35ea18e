package analyzer

// Request is the analyzer endpoint body. Only the primary symptom and body
// area are required.
type Request struct {
	PrimarySymptom     string   `json:"primarySymptom"`
	BodyArea           string   `json:"bodyArea"`
	AdditionalSymptoms []string `json:"additionalSymptoms"`
	Duration           string   `json:"duration"`
	Severity           string   `json:"severity"`
	Factors            []string `json:"factors"`
}

type ConditionEntry struct {
	Condition   string `json:"condition"`
	Probability int    `json:"probability"`
}

type RemedyEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Response struct {
	PotentialConditions      []ConditionEntry `json:"potentialConditions"`
	RecommendedRemedies      []RemedyEntry    `json:"recommendedRemedies"`
	LifestyleRecommendations []string         `json:"lifestyleRecommendations"`
	DietarySuggestions       []string         `json:"dietarySuggestions"`
	FollowUpRecommendation   string           `json:"followUpRecommendation"`
}
