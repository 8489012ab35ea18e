package consultation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"homeo-advisor/internal/catalog"
	"homeo-advisor/internal/engine"
)

const testToken = "test-session-token"

// memRepo is an in-memory Repository for handler tests.
type memRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]Record
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[uuid.UUID]Record{}}
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *memRepo) Save(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = *rec
	return nil
}

func newTestRouter(t *testing.T, repo Repository) chi.Router {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	svc := NewService(repo, engine.NewConsultant(cat, engine.NewRandomSource()), nil)
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc), StaticTokenValidator{Token: testToken})
	return r
}

func postAIDoctor(t *testing.T, router chi.Router, body string, token string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consultation/aiDoctor", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAIDoctorRequiresSession(t *testing.T) {
	router := newTestRouter(t, newMemRepo())

	w := postAIDoctor(t, router, `{"responses":{"mainSymptoms":"cough"}}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	w = postAIDoctor(t, router, `{"responses":{"mainSymptoms":"cough"}}`, "wrong-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestAIDoctorMissingResponses(t *testing.T) {
	router := newTestRouter(t, newMemRepo())

	w := postAIDoctor(t, router, `{}`, testToken)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body["error"] != "Responses are required" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestAIDoctorAllEmptyReturnsDefault(t *testing.T) {
	router := newTestRouter(t, newMemRepo())

	w := postAIDoctor(t, router, `{"responses":{"mainSymptoms":"","symptomDuration":"","stressLevel":""}}`, testToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AIDoctorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Categories) != 1 || resp.Categories[0] != engine.GeneralCategory {
		t.Fatalf("expected categories [general], got %v", resp.Categories)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].Remedy != "Consultation" {
		t.Fatalf("expected single Consultation entry, got %v", resp.Recommendations)
	}
}

func TestAIDoctorNumericValuesAccepted(t *testing.T) {
	router := newTestRouter(t, newMemRepo())

	w := postAIDoctor(t, router, `{"responses":{"mainSymptoms":"trouble sleeping","stressLevel":9}}`, testToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AIDoctorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	var hasSleep, hasStress bool
	for _, c := range resp.Categories {
		if c == "sleep" {
			hasSleep = true
		}
		if c == "stress" {
			hasStress = true
		}
	}
	if !hasSleep || !hasStress {
		t.Fatalf("expected sleep and stress categories, got %v", resp.Categories)
	}
	if len(resp.Recommendations) > 4 {
		t.Fatalf("expected at most 4 recommendations, got %d", len(resp.Recommendations))
	}
}

func TestAIDoctorPersistsRecord(t *testing.T) {
	repo := newMemRepo()
	router := newTestRouter(t, repo)

	w := postAIDoctor(t, router, `{"responses":{"mainSymptoms":"itchy rash on my arm"}}`, testToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// The save runs in the background after the response is written.
	deadline := time.Now().Add(2 * time.Second)
	for {
		repo.mu.Lock()
		n := len(repo.records)
		repo.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("record was not persisted")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestGetConsultation(t *testing.T) {
	repo := newMemRepo()
	router := newTestRouter(t, repo)

	id := uuid.New()
	repo.records[id] = Record{
		ID:        id,
		Responses: map[string]string{"mainSymptoms": "cough"},
		Result:    engine.ConsultationResult{Diagnosis: "test", Categories: []string{"respiratory"}},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/consultation/"+id.String(), nil)
	req.Header.Set(SessionHeader, testToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var rec Record
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid record body: %v", err)
	}
	if rec.ID != id || rec.Result.Diagnosis != "test" {
		t.Fatalf("unexpected record %+v", rec)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/consultation/"+uuid.NewString(), nil)
	req.Header.Set(SessionHeader, testToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}
