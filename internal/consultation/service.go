package consultation

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"homeo-advisor/internal/engine"
)

// ReportService sends a consultation summary to a practitioner. Defined
// here to decouple from the report implementation.
type ReportService interface {
	SendPractitionerReport(ctx context.Context, rec Record) error
}

type Service interface {
	RunConsultation(ctx context.Context, responses map[string]string) (*engine.ConsultationResult, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
}

type service struct {
	repo       Repository
	consultant *engine.Consultant
	reportSvc  ReportService
}

// NewService wires the consultation engine to its collaborators. reportSvc
// may be nil when no practitioner notification is configured.
func NewService(repo Repository, consultant *engine.Consultant, reportSvc ReportService) Service {
	return &service{
		repo:       repo,
		consultant: consultant,
		reportSvc:  reportSvc,
	}
}

// RunConsultation computes the result synchronously, then persists the
// record and notifies the practitioner in the background. Both follow-ups
// are best-effort: failures are logged and the computed result is returned
// regardless.
func (s *service) RunConsultation(ctx context.Context, responses map[string]string) (*engine.ConsultationResult, error) {
	result, err := s.consultant.Consult(responses)
	if err != nil {
		return nil, err
	}

	rec := Record{
		ID:        uuid.New(),
		Responses: responses,
		Result:    *result,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	go func(rec Record) {
		bgCtx := context.Background()

		if err := s.repo.Save(bgCtx, &rec); err != nil {
			if !errors.Is(err, ErrStorageUnavailable) {
				log.Printf("consultation: failed to save record %s: %v", rec.ID, err)
			}
		}

		if s.reportSvc != nil {
			if err := s.reportSvc.SendPractitionerReport(bgCtx, rec); err != nil {
				log.Printf("consultation: failed to send practitioner report for %s: %v", rec.ID, err)
			}
		}
	}(rec)

	return result, nil
}

func (s *service) GetRecord(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}
