package consultation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"homeo-advisor/internal/engine"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// AIDoctor runs the consultation engine over the submitted responses.
func (h *Handler) AIDoctor(w http.ResponseWriter, r *http.Request) {
	var req AIDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Responses == nil {
		respondError(w, http.StatusBadRequest, "Responses are required")
		return
	}

	result, err := h.svc.RunConsultation(r.Context(), normalizeResponses(req.Responses))
	if err != nil {
		if errors.Is(err, engine.ErrMissingInput) {
			respondError(w, http.StatusBadRequest, "Responses are required")
			return
		}
		log.Printf("consultation: engine failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := AIDoctorResponse{
		Diagnosis:       result.Diagnosis,
		Recommendations: make([]RecommendationEntry, 0, len(result.Recommendations)),
		Lifestyle:       result.Lifestyle,
		FollowUp:        result.FollowUp,
		Categories:      result.Categories,
	}
	for _, rec := range result.Recommendations {
		resp.Recommendations = append(resp.Recommendations, RecommendationEntry{
			Remedy:      rec.Remedy,
			Dosage:      rec.Dosage,
			Duration:    rec.Duration,
			Description: rec.Description,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetConsultation returns a saved consultation record.
func (h *Handler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid consultation ID")
		return
	}

	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respondError(w, http.StatusNotFound, "Consultation not found")
		case errors.Is(err, ErrStorageUnavailable):
			respondError(w, http.StatusServiceUnavailable, "Storage unavailable")
		default:
			log.Printf("consultation: failed to load record %s: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func RegisterRoutes(r chi.Router, h *Handler, sessions SessionValidator) {
	r.Route("/consultation", func(r chi.Router) {
		r.Use(RequireSession(sessions))
		r.Post("/aiDoctor", h.AIDoctor)
		r.Get("/{id}", h.GetConsultation)
	})
}

// normalizeResponses flattens the string-or-number response values into
// strings for the extractor.
func normalizeResponses(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(v)
		}
	}
	return out
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("consultation: failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
