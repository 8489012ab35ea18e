package report

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"homeo-advisor/internal/consultation"
	"homeo-advisor/internal/engine"
)

type fakeTelegram struct {
	messages  []string
	documents []string
}

func (f *fakeTelegram) SendMessage(_ int64, text string) error {
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeTelegram) SendDocument(_ int64, _ []byte, fileName string) error {
	f.documents = append(f.documents, fileName)
	return nil
}

func fontAvailable() bool {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func testRecord() consultation.Record {
	return consultation.Record{
		ID:        uuid.New(),
		Responses: map[string]string{"mainSymptoms": "trouble sleeping"},
		Result: engine.ConsultationResult{
			Diagnosis: "Based on your responses, you appear to be experiencing moderate symptoms related to sleep difficulties.",
			Recommendations: []engine.Recommendation{
				{Remedy: "Coffea Cruda 30C", Dosage: "3 pellets", Duration: "2 weeks", Description: "For an overactive mind."},
			},
			Lifestyle:  []string{"Keep a consistent sleep schedule"},
			FollowUp:   engine.FollowUpDefault,
			Categories: []string{"sleep"},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestSendPractitionerReport(t *testing.T) {
	if !fontAvailable() {
		t.Skip("no DejaVu font installed")
	}

	tg := &fakeTelegram{}
	svc := NewService(tg, 42)

	if err := svc.SendPractitionerReport(context.Background(), testRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tg.documents) != 1 {
		t.Fatalf("expected one document sent, got %d", len(tg.documents))
	}
}

func TestSendPractitionerReportRequiresChat(t *testing.T) {
	svc := NewService(&fakeTelegram{}, 0)
	if err := svc.SendPractitionerReport(context.Background(), testRecord()); err == nil {
		t.Fatal("expected error when practitioner chat is not configured")
	}
}
