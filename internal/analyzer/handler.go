package analyzer

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"homeo-advisor/internal/engine"
)

const missingFieldsMessage = "Primary symptom and body area are required"

type Handler struct {
	engine *engine.Analyzer
}

func NewHandler(e *engine.Analyzer) *Handler {
	return &Handler{engine: e}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.engine.Analyze(engine.AnalyzerInput{
		PrimarySymptom:     req.PrimarySymptom,
		BodyArea:           req.BodyArea,
		AdditionalSymptoms: req.AdditionalSymptoms,
		Duration:           req.Duration,
		Severity:           req.Severity,
		Factors:            req.Factors,
	})
	if err != nil {
		if errors.Is(err, engine.ErrMissingInput) {
			respondError(w, http.StatusBadRequest, missingFieldsMessage)
			return
		}
		log.Printf("analyzer: analysis failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := Response{
		PotentialConditions:      make([]ConditionEntry, 0, len(result.PotentialConditions)),
		RecommendedRemedies:      make([]RemedyEntry, 0, len(result.RecommendedRemedies)),
		LifestyleRecommendations: result.Lifestyle,
		DietarySuggestions:       result.Dietary,
		FollowUpRecommendation:   result.FollowUp,
	}
	for _, c := range result.PotentialConditions {
		resp.PotentialConditions = append(resp.PotentialConditions, ConditionEntry{
			Condition:   c.Condition,
			Probability: c.Probability,
		})
	}
	for _, rem := range result.RecommendedRemedies {
		resp.RecommendedRemedies = append(resp.RecommendedRemedies, RemedyEntry{
			Name:        rem.Name,
			Description: rem.Description,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyzer", h.Analyze)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("analyzer: failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
