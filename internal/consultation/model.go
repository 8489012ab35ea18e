package consultation

import (
	"time"

	"github.com/google/uuid"

	"homeo-advisor/internal/engine"
)

// Record is the persisted consultation aggregate: the submitted responses
// and the result computed for them. Saved best-effort after the response has
// already been assembled; a failed save never changes what the caller sees.
type Record struct {
	ID        uuid.UUID                 `json:"id" db:"id"`
	Responses map[string]string         `json:"responses" db:"responses"`
	Result    engine.ConsultationResult `json:"result" db:"result"`
	CreatedAt time.Time                 `json:"created_at" db:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at" db:"updated_at"`
}

// AIDoctorRequest is the consultation endpoint body. Values may arrive as
// strings or numbers; the handler normalizes both.
type AIDoctorRequest struct {
	Responses map[string]any `json:"responses"`
}

type RecommendationEntry struct {
	Remedy      string `json:"remedy"`
	Dosage      string `json:"dosage"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type AIDoctorResponse struct {
	Diagnosis       string                `json:"diagnosis"`
	Recommendations []RecommendationEntry `json:"recommendations"`
	Lifestyle       []string              `json:"lifestyle"`
	FollowUp        string                `json:"followUp"`
	Categories      []string              `json:"categories"`
}
